package interpreter

import "lox/interpreter-go/pkg/runtime"

// returnSignal unwinds blocks and loops up to the nearest call boundary.
type returnSignal struct {
	value runtime.Value
}

func (r returnSignal) Error() string {
	return "return"
}
