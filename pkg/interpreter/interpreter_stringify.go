package interpreter

import (
	"fmt"
	"strconv"

	"lox/interpreter-go/pkg/runtime"
)

// valueToString renders a value the way `print` writes it.
func valueToString(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.NumberValue:
		return strconv.FormatFloat(v.Val, 'f', -1, 64)
	case runtime.StringValue:
		return v.Val
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NilValue, nil:
		return "nil"
	case *runtime.FunctionValue:
		return fmt.Sprintf("<fn %s>", v.Name)
	case runtime.NativeFunctionValue:
		return fmt.Sprintf("<native fn %s>", v.Name)
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// Stringify exposes the print rendering to hosts such as the REPL.
func Stringify(val runtime.Value) string {
	return valueToString(val)
}

// isTruthy treats nil and false as falsy and everything else as truthy.
func isTruthy(val runtime.Value) bool {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val
	case runtime.NilValue:
		return false
	default:
		return true
	}
}
