package interpreter

import (
	"errors"
	"fmt"
	"strings"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.Nil, nil
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, undefinedVariable(err, n.Name, n.Line())
		}
		return val, nil
	case *ast.Grouping:
		return i.evaluateExpression(n.Expression, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.LogicalExpression:
		return i.evaluateLogicalExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	case *ast.CallExpression:
		return i.evaluateCallExpression(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", node.NodeType())
	}
}

func undefinedVariable(err error, name string, line int) error {
	var undef *runtime.UndefinedError
	if errors.As(err, &undef) {
		return &RuntimeError{Kind: ErrUndefinedVariable, Name: name, Line: line}
	}
	return err
}

func (i *Interpreter) evaluateAssignment(assign *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(assign.Name, val); err != nil {
		return nil, undefinedVariable(err, assign.Name, assign.Line())
	}
	return val, nil
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.UnaryNegate:
		if n, ok := operand.(runtime.NumberValue); ok {
			return runtime.NumberValue{Val: -n.Val}, nil
		}
		return nil, &RuntimeError{Kind: ErrOperandType, Operator: string(expr.Operator), Left: operand.Kind(), Line: expr.Line()}
	case ast.UnaryNot:
		return runtime.BoolValue{Val: !isTruthy(operand)}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	var (
		result runtime.Value
		ok     bool
	)
	switch expr.Operator {
	case ast.BinaryAdd, ast.BinarySubtract, ast.BinaryMultiply, ast.BinaryDivide:
		result, ok = evaluateArithmetic(expr.Operator, left, right)
	case ast.BinaryLess, ast.BinaryLessEqual, ast.BinaryGreater, ast.BinaryGreaterEqual:
		result, ok = evaluateComparison(expr.Operator, left, right)
	case ast.BinaryEqual, ast.BinaryNotEqual:
		var eq bool
		if eq, ok = valuesEqual(left, right); ok {
			if expr.Operator == ast.BinaryNotEqual {
				eq = !eq
			}
			result = runtime.BoolValue{Val: eq}
		}
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", expr.Operator)
	}
	if !ok {
		return nil, operandPairError(string(expr.Operator), left, right, expr.Line())
	}
	return result, nil
}

func operandPairError(op string, left, right runtime.Value, line int) error {
	return &RuntimeError{Kind: ErrOperandPair, Operator: op, Left: left.Kind(), Right: right.Kind(), Line: line}
}

// evaluateLogicalExpression evaluates both sides before combining them; there
// is no short-circuit.
func (i *Interpreter) evaluateLogicalExpression(expr *ast.LogicalExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	lb, lok := left.(runtime.BoolValue)
	rb, rok := right.(runtime.BoolValue)
	if !lok || !rok {
		return nil, operandPairError(string(expr.Operator), left, right, expr.Line())
	}
	if expr.Operator == ast.LogicalAnd {
		return runtime.BoolValue{Val: lb.Val && rb.Val}, nil
	}
	return runtime.BoolValue{Val: lb.Val || rb.Val}, nil
}

func evaluateArithmetic(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, bool) {
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, false
		}
		switch op {
		case ast.BinaryAdd:
			return runtime.NumberValue{Val: lv.Val + rv.Val}, true
		case ast.BinarySubtract:
			return runtime.NumberValue{Val: lv.Val - rv.Val}, true
		case ast.BinaryMultiply:
			return runtime.NumberValue{Val: lv.Val * rv.Val}, true
		case ast.BinaryDivide:
			return runtime.NumberValue{Val: lv.Val / rv.Val}, true
		}
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		if ok && op == ast.BinaryAdd {
			return runtime.StringValue{Val: lv.Val + rv.Val}, true
		}
	}
	return nil, false
}

func evaluateComparison(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, bool) {
	var cmp int
	switch lv := left.(type) {
	case runtime.NumberValue:
		rv, ok := right.(runtime.NumberValue)
		if !ok {
			return nil, false
		}
		switch {
		case lv.Val < rv.Val:
			cmp = -1
		case lv.Val > rv.Val:
			cmp = 1
		case lv.Val != rv.Val:
			// NaN is unordered: every comparison is false.
			return runtime.BoolValue{Val: false}, true
		}
	case runtime.StringValue:
		rv, ok := right.(runtime.StringValue)
		if !ok {
			return nil, false
		}
		cmp = strings.Compare(lv.Val, rv.Val)
	case runtime.BoolValue:
		rv, ok := right.(runtime.BoolValue)
		if !ok {
			return nil, false
		}
		cmp = boolRank(lv.Val) - boolRank(rv.Val)
	default:
		return nil, false
	}
	return runtime.BoolValue{Val: comparisonOp(op, cmp)}, true
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

func comparisonOp(op ast.BinaryOperator, cmp int) bool {
	switch op {
	case ast.BinaryLess:
		return cmp < 0
	case ast.BinaryLessEqual:
		return cmp <= 0
	case ast.BinaryGreater:
		return cmp > 0
	case ast.BinaryGreaterEqual:
		return cmp >= 0
	default:
		return false
	}
}

// valuesEqual compares two values of the same kind structurally. The second
// result is false when the kinds differ.
func valuesEqual(left, right runtime.Value) (bool, bool) {
	if left.Kind() != right.Kind() {
		return false, false
	}
	switch lv := left.(type) {
	case runtime.NumberValue:
		return lv.Val == right.(runtime.NumberValue).Val, true
	case runtime.StringValue:
		return lv.Val == right.(runtime.StringValue).Val, true
	case runtime.BoolValue:
		return lv.Val == right.(runtime.BoolValue).Val, true
	case runtime.NilValue:
		return true, true
	case *runtime.FunctionValue:
		return lv == right.(*runtime.FunctionValue), true
	case runtime.NativeFunctionValue:
		return lv.Name == right.(runtime.NativeFunctionValue).Name, true
	}
	return false, false
}

// evaluateCallExpression resolves the callee by name, evaluates arguments
// left to right, then checks arity.
func (i *Interpreter) evaluateCallExpression(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := env.Get(call.Callee)
	if err != nil {
		var undef *runtime.UndefinedError
		if errors.As(err, &undef) {
			return nil, &RuntimeError{Kind: ErrUndefinedCallee, Name: call.Callee, Line: call.Line()}
		}
		return nil, err
	}
	fn, ok := callee.(runtime.Callable)
	if !ok {
		return nil, &RuntimeError{Kind: ErrNotCallable, Name: call.Callee, Left: callee.Kind(), Line: call.Line()}
	}

	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	if len(args) != fn.Arity() {
		return nil, &RuntimeError{Kind: ErrArity, Name: call.Callee, Expected: fn.Arity(), Got: len(args), Line: call.Line()}
	}

	switch f := fn.(type) {
	case *runtime.FunctionValue:
		return i.invokeFunction(f, args, env)
	case runtime.NativeFunctionValue:
		if err := f.Impl(&runtime.NativeCallContext{Stdout: i.stdout}); err != nil {
			return nil, fmt.Errorf("native %s: %w", f.Name, err)
		}
		return runtime.Nil, nil
	default:
		return nil, &RuntimeError{Kind: ErrNotCallable, Name: call.Callee, Left: callee.Kind(), Line: call.Line()}
	}
}

// invokeFunction binds args in a child of the caller's scope and runs the
// body there. A returnSignal is unwrapped here and never reaches the caller.
func (i *Interpreter) invokeFunction(fn *runtime.FunctionValue, args []runtime.Value, caller *runtime.Environment) (runtime.Value, error) {
	scope := caller.Extend()
	for idx, param := range fn.Params {
		scope.Define(param, args[idx])
	}
	if fn.Body == nil {
		return runtime.Nil, nil
	}
	for _, stmt := range fn.Body.Body {
		if _, err := i.evaluateStatement(stmt, scope); err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, err
		}
	}
	return runtime.Nil, nil
}
