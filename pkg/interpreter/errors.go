package interpreter

import (
	"fmt"

	"lox/interpreter-go/pkg/runtime"
)

// ErrorKind classifies runtime failures.
type ErrorKind int

const (
	// ErrOperandType: a unary operator or condition got a value of the wrong kind.
	ErrOperandType ErrorKind = iota
	// ErrOperandPair: a binary operator got an unsupported pair of kinds.
	ErrOperandPair
	ErrUndefinedVariable
	ErrUndefinedCallee
	ErrArity
	// ErrNotCallable: the callee name is bound to a value that cannot be called.
	ErrNotCallable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrOperandType:
		return "operand type mismatch"
	case ErrOperandPair:
		return "operand pair mismatch"
	case ErrUndefinedVariable:
		return "undefined variable"
	case ErrUndefinedCallee:
		return "undefined function"
	case ErrArity:
		return "arity mismatch"
	case ErrNotCallable:
		return "not callable"
	default:
		return fmt.Sprintf("unknown_runtime_error_%d", int(k))
	}
}

// RuntimeError reports a failed evaluation. Only the fields relevant to Kind
// are populated.
type RuntimeError struct {
	Kind ErrorKind
	Line int
	// Operator is the operator or statement keyword that rejected its operands.
	Operator string
	// Left and Right name the offending operand kinds; a unary failure only
	// sets Left.
	Left, Right runtime.Kind
	Name        string
	Expected    int
	Got         int
}

func (e *RuntimeError) Error() string {
	var msg string
	switch e.Kind {
	case ErrOperandType:
		msg = fmt.Sprintf("operand of '%s' must be %s, got %s", e.Operator, expectedOperand(e.Operator), e.Left)
	case ErrOperandPair:
		msg = fmt.Sprintf("unsupported operands for '%s': %s and %s", e.Operator, e.Left, e.Right)
	case ErrUndefinedVariable:
		msg = fmt.Sprintf("Undefined variable '%s'", e.Name)
	case ErrUndefinedCallee:
		msg = fmt.Sprintf("Undefined function '%s'", e.Name)
	case ErrArity:
		msg = fmt.Sprintf("Function '%s' expects %d arguments, got %d", e.Name, e.Expected, e.Got)
	case ErrNotCallable:
		msg = fmt.Sprintf("'%s' is not callable", e.Name)
	default:
		msg = e.Kind.String()
	}
	if e.Line > 0 {
		return fmt.Sprintf("[line %d] runtime error: %s", e.Line, msg)
	}
	return "runtime error: " + msg
}

// Is lets errors.Is match on kind alone: errors.Is(err, &RuntimeError{Kind: ErrArity}).
func (e *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func expectedOperand(op string) string {
	if op == "-" {
		return "a number"
	}
	return "a bool"
}
