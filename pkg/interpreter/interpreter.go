package interpreter

import (
	"fmt"
	"io"
	"os"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/runtime"
)

// Interpreter evaluates lox programs against a persistent global scope.
type Interpreter struct {
	global  *runtime.Environment
	stdout  io.Writer
	stderr  io.Writer
	report  func(error)
	observe func(StatementResult)
	natives []string
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStdout sets the sink that `print` and natives write to.
func WithStdout(w io.Writer) Option {
	return func(i *Interpreter) { i.stdout = w }
}

// WithStderr sets the sink that Run reports statement failures to.
func WithStderr(w io.Writer) Option {
	return func(i *Interpreter) { i.stderr = w }
}

// WithErrorHandler replaces the default failure report (a line on stderr).
func WithErrorHandler(fn func(error)) Option {
	return func(i *Interpreter) { i.report = fn }
}

// WithResultHandler registers a callback invoked by Run after each
// top-level statement, before the next one starts.
func WithResultHandler(fn func(StatementResult)) Option {
	return func(i *Interpreter) { i.observe = fn }
}

// WithNatives restricts the built-in natives registered at construction.
func WithNatives(names ...string) Option {
	return func(i *Interpreter) { i.natives = append([]string{}, names...) }
}

// StatementResult is the outcome of one top-level statement.
type StatementResult struct {
	Statement ast.Statement
	Value     runtime.Value
	Err       error
}

// New returns an interpreter whose global scope holds the built-in natives.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:  runtime.NewEnvironment(nil),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		natives: NativeNames(),
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.report == nil {
		i.report = func(err error) { fmt.Fprintln(i.stderr, err) }
	}
	i.registerBuiltins(i.natives)
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Run evaluates each top-level statement in order. A failing statement is
// reported and skipped; later statements still run against whatever state
// earlier ones left behind.
func (i *Interpreter) Run(program *ast.Program) []StatementResult {
	if program == nil {
		return nil
	}
	results := make([]StatementResult, 0, len(program.Body))
	for _, stmt := range program.Body {
		val, err := i.Execute(stmt)
		if err != nil {
			i.report(err)
		}
		res := StatementResult{Statement: stmt, Value: val, Err: err}
		if i.observe != nil {
			i.observe(res)
		}
		results = append(results, res)
	}
	return results
}

// Execute evaluates a single top-level statement in the global scope. A
// `return` outside any function ends the statement and yields its value.
func (i *Interpreter) Execute(stmt ast.Statement) (runtime.Value, error) {
	val, err := i.evaluateStatement(stmt, i.global)
	if err != nil {
		if ret, ok := err.(returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return val, nil
}

// Failed reports whether any statement result carries an error.
func Failed(results []StatementResult) bool {
	for _, res := range results {
		if res.Err != nil {
			return true
		}
	}
	return false
}
