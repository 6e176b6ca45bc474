package interpreter

import (
	"fmt"
	"sort"

	"lox/interpreter-go/pkg/runtime"
)

var builtinNatives = map[string]runtime.NativeFunc{
	"clock": func(ctx *runtime.NativeCallContext) error {
		_, err := fmt.Fprintln(ctx.Stdout, "called clock")
		return err
	},
}

// NativeNames lists the built-in natives in sorted order.
func NativeNames() []string {
	names := make([]string, 0, len(builtinNatives))
	for name := range builtinNatives {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsNative reports whether name is a built-in native.
func IsNative(name string) bool {
	_, ok := builtinNatives[name]
	return ok
}

// DefineNative binds a zero-argument host function in the global scope,
// replacing any existing binding of the same name.
func (i *Interpreter) DefineNative(name string, impl func() error) {
	i.defineNative(name, func(*runtime.NativeCallContext) error { return impl() })
}

func (i *Interpreter) defineNative(name string, impl runtime.NativeFunc) {
	i.global.Define(name, runtime.NativeFunctionValue{Name: name, Impl: impl})
}

// registerBuiltins binds the named built-ins; unknown names are skipped.
func (i *Interpreter) registerBuiltins(names []string) {
	for _, name := range names {
		if impl, ok := builtinNatives[name]; ok {
			i.defineNative(name, impl)
		}
	}
}
