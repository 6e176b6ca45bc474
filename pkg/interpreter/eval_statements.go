package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, env)
	case *ast.PrintStatement:
		return i.evaluatePrintStatement(n, env)
	case *ast.VarDeclaration:
		return i.evaluateVarDeclaration(n, env)
	case *ast.FunctionDeclaration:
		env.Define(n.Name, &runtime.FunctionValue{Name: n.Name, Params: n.Params, Body: n.Body})
		return runtime.Nil, nil
	case *ast.Block:
		return i.evaluateBlock(n, env)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.WhileStatement:
		return i.evaluateWhileStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", node.NodeType())
	}
}

func (i *Interpreter) evaluatePrintStatement(stmt *ast.PrintStatement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(stmt.Expression, env)
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(i.stdout, valueToString(val)); err != nil {
		return nil, fmt.Errorf("print: %w", err)
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateVarDeclaration(decl *ast.VarDeclaration, env *runtime.Environment) (runtime.Value, error) {
	val := runtime.Nil
	if decl.Initializer != nil {
		var err error
		if val, err = i.evaluateExpression(decl.Initializer, env); err != nil {
			return nil, err
		}
	}
	env.Define(decl.Name, val)
	return runtime.Nil, nil
}

// evaluateBlock runs body in a fresh child scope that is dropped on exit.
// A returnSignal stops the block immediately and propagates unchanged.
func (i *Interpreter) evaluateBlock(block *ast.Block, env *runtime.Environment) (runtime.Value, error) {
	scope := env.Extend()
	for _, stmt := range block.Body {
		if _, err := i.evaluateStatement(stmt, scope); err != nil {
			return nil, err
		}
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateCondition("if", stmt.Condition, env)
	if err != nil {
		return nil, err
	}
	if cond {
		return i.evaluateStatement(stmt.ThenBranch, env)
	}
	if stmt.ElseBranch != nil {
		return i.evaluateStatement(stmt.ElseBranch, env)
	}
	return runtime.Nil, nil
}

func (i *Interpreter) evaluateWhileStatement(loop *ast.WhileStatement, env *runtime.Environment) (runtime.Value, error) {
	for {
		cond, err := i.evaluateCondition("while", loop.Condition, env)
		if err != nil {
			return nil, err
		}
		if !cond {
			return runtime.Nil, nil
		}
		if _, err := i.evaluateStatement(loop.Body, env); err != nil {
			return nil, err
		}
	}
}

// evaluateCondition requires a bool; keyword names the statement in errors.
func (i *Interpreter) evaluateCondition(keyword string, expr ast.Expression, env *runtime.Environment) (bool, error) {
	val, err := i.evaluateExpression(expr, env)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return false, &RuntimeError{Kind: ErrOperandType, Operator: keyword, Left: val.Kind(), Line: expr.Line()}
	}
	return b.Val, nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	result := runtime.Nil
	if stmt.Argument != nil {
		val, err := i.evaluateExpression(stmt.Argument, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return nil, returnSignal{value: result}
}
