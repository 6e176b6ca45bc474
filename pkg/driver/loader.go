package driver

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/scanner"
)

// SourceError collects every scan and parse diagnostic for one source text.
type SourceError struct {
	Path        string
	ScanErrors  []*scanner.Error
	ParseErrors []*parser.Error
}

func (e *SourceError) Error() string {
	var b strings.Builder
	for _, err := range e.Diagnostics() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if e.Path != "" {
			b.WriteString(e.Path)
			b.WriteString(": ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Diagnostics returns scan errors followed by parse errors.
func (e *SourceError) Diagnostics() []error {
	out := make([]error, 0, len(e.ScanErrors)+len(e.ParseErrors))
	for _, err := range e.ScanErrors {
		out = append(out, err)
	}
	for _, err := range e.ParseErrors {
		out = append(out, err)
	}
	return out
}

// Program is a parsed source together with any diagnostics. Program is
// always usable: statements that failed to scan or parse are omitted.
type Program struct {
	Path string
	AST  *ast.Program
	Err  *SourceError
}

// ParseSource scans and parses src. The returned program holds every
// statement that parsed; diagnostics are reported through Program.Err.
func ParseSource(path, src string) *Program {
	tokens, scanErrs := scanner.New(src).Scan()
	program, parseErrs := parser.Parse(tokens)
	out := &Program{Path: path, AST: program}
	if len(scanErrs) > 0 || len(parseErrs) > 0 {
		out.Err = &SourceError{Path: path, ScanErrors: scanErrs, ParseErrors: parseErrs}
	}
	return out
}

// LoadFile reads and parses a script from disk.
func LoadFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", path, err)
	}
	return ParseSource(path, string(data)), nil
}

// LoadReader reads r to the end and parses it; name labels diagnostics.
func LoadReader(name string, r io.Reader) (*Program, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", name, err)
	}
	return ParseSource(name, string(data)), nil
}
