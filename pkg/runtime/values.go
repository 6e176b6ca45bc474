package runtime

import (
	"fmt"
	"io"

	"lox/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNil:
		return "nil"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// FunctionValue is a user-declared function. It holds no captured scope:
// calls resolve free names against the caller's environment.
type FunctionValue struct {
	Name   string
	Params []string
	Body   *ast.Block
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Arity is the number of declared parameters.
func (v *FunctionValue) Arity() int { return len(v.Params) }

// NativeCallContext provides hooks for native functions.
type NativeCallContext struct {
	Stdout io.Writer
}

type NativeFunc func(*NativeCallContext) error

// NativeFunctionValue is a zero-argument callable implemented by the host.
type NativeFunctionValue struct {
	Name string
	Impl NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// Arity of a native is always zero.
func (v NativeFunctionValue) Arity() int { return 0 }

// Callable is satisfied by both user and native functions.
type Callable interface {
	Value
	Arity() int
}

var (
	_ Callable = (*FunctionValue)(nil)
	_ Callable = NativeFunctionValue{}
)

// Nil is the shared nil value.
var Nil Value = NilValue{}
