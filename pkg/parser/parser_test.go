package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/parser"
	"lox/interpreter-go/pkg/scanner"
	"lox/interpreter-go/pkg/token"
)

func parseSource(t *testing.T, src string) (*ast.Program, []*parser.Error) {
	t.Helper()
	toks, errs := scanner.New(src).Scan()
	if len(errs) > 0 {
		t.Fatalf("scan %q: %v", src, errs[0])
	}
	return parser.Parse(toks)
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, errs := parseSource(t, src)
	if len(errs) > 0 {
		t.Fatalf("parse %q: unexpected errors %v", src, errs)
	}
	return prog
}

func TestParseExpressionShapes(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"1;", "(program (expr 1))"},
		{`"text";`, `(program (expr "text"))`},
		{"true; false; nil;", "(program (expr true) (expr false) (expr nil))"},
		{"(1);", "(program (expr (group 1)))"},
		{"!1;", "(program (expr (! 1)))"},
		{"-1;", "(program (expr (- 1)))"},
		{"!!true;", "(program (expr (! (! true))))"},
		{"2 / 1;", "(program (expr (/ 2 1)))"},
		{"2 * 3 / 1;", "(program (expr (/ (* 2 3) 1)))"},
		{"2 + 3 - 1;", "(program (expr (- (+ 2 3) 1)))"},
		{"10 - 3 - 1;", "(program (expr (- (- 10 3) 1)))"},
		{"2 + 3 * 1;", "(program (expr (+ 2 (* 3 1))))"},
		{"2 / 3 - 1;", "(program (expr (- (/ 2 3) 1)))"},
		{"2 + 1 > 3 * 4;", "(program (expr (> (+ 2 1) (* 3 4))))"},
		{"1 >= 2; 1 < 2; 1 <= 2;", "(program (expr (>= 1 2)) (expr (< 1 2)) (expr (<= 1 2)))"},
		{"2 + 1 == 3 * 4;", "(program (expr (== (+ 2 1) (* 3 4))))"},
		{"1 != 2;", "(program (expr (!= 1 2)))"},
		{"a or b and c;", "(program (expr (or a (and b c))))"},
		{"a and b and c;", "(program (expr (and (and a b) c)))"},
		{"a == b or c;", "(program (expr (or (== a b) c)))"},
		{"a = b = 3;", "(program (expr (= a (= b 3))))"},
		{"f(1, x + 2);", "(program (expr (call f 1 (+ x 2))))"},
		{"f();", "(program (expr (call f)))"},
		{"-f(2) * 3;", "(program (expr (* (- (call f 2)) 3)))"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got := ast.Format(mustParse(t, tc.src))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseStatements(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"print 1;", "(program (print 1))"},
		{"var a;", "(program (var a))"},
		{"var a = 1 + 2;", "(program (var a (+ 1 2)))"},
		{"{ var a = 1; print a; }", "(program (block (var a 1) (print a)))"},
		{"if (a) print 1;", "(program (if a (print 1)))"},
		{"if (a) print 1; else print 2;", "(program (if a (print 1) (print 2)))"},
		{"while (a) a = a - 1;", "(program (while a (expr (= a (- a 1)))))"},
		{"fun add(a, b) { return a + b; }", "(program (fun add(a b) (block (return (+ a b)))))"},
		{"fun f() { return; }", "(program (fun f() (block (return))))"},
	}
	for _, tc := range cases {
		t.Run(tc.src, func(t *testing.T) {
			got := ast.Format(mustParse(t, tc.src))
			if got != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{
			"for (var i = 0; i < 3; i = i + 1) print i;",
			"(program (block (var i 0) (while (< i 3) (block (print i) (expr (= i (+ i 1)))))))",
		},
		{
			"for (;;) print 1;",
			"(program (block (while true (print 1))))",
		},
		{
			"for (i = 0; i < 1;) { print i; }",
			"(program (block (expr (= i 0)) (while (< i 1) (block (print i)))))",
		},
	}
	for _, tc := range cases {
		got := ast.Format(mustParse(t, tc.src))
		if got != tc.want {
			t.Fatalf("%s: expected %s, got %s", tc.src, tc.want, got)
		}
	}
}

func TestParseRecordsLines(t *testing.T) {
	prog := mustParse(t, "var a = 1;\n\nprint a;")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
	if prog.Body[1].Line() != 3 {
		t.Fatalf("expected print on line 3, got %d", prog.Body[1].Line())
	}
}

func TestSynchronizeSkipsMalformedStatement(t *testing.T) {
	tokens := []token.Token{
		token.New(token.LeftParen, "(", 0, 1),
		token.NewLiteral(token.Number, "1", 1.0, 1, 1),
		token.New(token.Semicolon, ";", 2, 1),
		token.NewLiteral(token.Number, "8", 8.0, 4, 1),
		token.New(token.Semicolon, ";", 5, 1),
		token.New(token.EOF, "", 6, 1),
	}
	prog, errs := parser.Parse(tokens)
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %v", errs)
	}
	if errs[0].Kind != parser.ErrMissingToken || errs[0].Expected != token.RightParen {
		t.Fatalf("expected missing ')' error, got %#v", errs[0])
	}
	if got := ast.Format(prog); got != "(program (expr 8))" {
		t.Fatalf("expected only the second statement, got %s", got)
	}
}

func TestSynchronizeStopsBeforeStatementKeyword(t *testing.T) {
	prog, errs := parseSource(t, "1 + ; var x = 2; print x;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %v", errs)
	}
	if errs[0].Kind != parser.ErrUnexpectedToken {
		t.Fatalf("expected unexpected-token error, got %s", errs[0].Kind)
	}
	if got := ast.Format(prog); got != "(program (var x 2) (print x))" {
		t.Fatalf("unexpected program %s", got)
	}

	prog, errs = parseSource(t, "print (1 var y = 3;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %v", errs)
	}
	if got := ast.Format(prog); got != "(program (var y 3))" {
		t.Fatalf("expected var statement to survive recovery, got %s", got)
	}
}

func TestUnparsableKeywordDoesNotLoop(t *testing.T) {
	prog, errs := parseSource(t, "class; print 1;")
	if len(errs) == 0 {
		t.Fatalf("expected a parse error for 'class'")
	}
	if got := ast.Format(prog); got != "(program (print 1))" {
		t.Fatalf("unexpected program %s", got)
	}
}

func TestIncompleteTrailingStatement(t *testing.T) {
	prog, errs := parseSource(t, "print 1; print 2")
	if len(errs) != 1 {
		t.Fatalf("expected 1 parse error, got %v", errs)
	}
	if errs[0].Kind != parser.ErrUnexpectedEOF {
		t.Fatalf("expected unexpected EOF, got %s", errs[0].Kind)
	}
	if !errs[0].HasExpected || errs[0].Expected != token.Semicolon {
		t.Fatalf("expected ';' to be named, got %#v", errs[0])
	}
	if got := ast.Format(prog); got != "(program (print 1))" {
		t.Fatalf("unexpected program %s", got)
	}
}

func TestInvalidAssignmentTarget(t *testing.T) {
	prog, errs := parseSource(t, "1 + 2 = 3; (a) = 4; print 5;")
	if len(errs) != 2 {
		t.Fatalf("expected 2 parse errors, got %v", errs)
	}
	for _, err := range errs {
		if !errors.Is(err, &parser.Error{Kind: parser.ErrInvalidShape}) {
			t.Fatalf("expected invalid shape, got %v", err)
		}
	}
	if got := ast.Format(prog); got != "(program (print 5))" {
		t.Fatalf("unexpected program %s", got)
	}
}

func TestCallOnNonNameIsRejected(t *testing.T) {
	_, errs := parseSource(t, `"a"(1);`)
	if len(errs) != 1 || errs[0].Kind != parser.ErrInvalidShape {
		t.Fatalf("expected invalid shape error, got %v", errs)
	}
}

func TestArgumentListCapDropsSilently(t *testing.T) {
	args := make([]string, 300)
	for i := range args {
		args[i] = fmt.Sprintf("%d", i)
	}
	prog, errs := parseSource(t, "f("+strings.Join(args, ", ")+");")
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics for long argument list, got %v", errs)
	}
	call := prog.Body[0].(*ast.ExpressionStatement).Expression.(*ast.CallExpression)
	if len(call.Arguments) != parser.MaxArguments {
		t.Fatalf("expected %d arguments, got %d", parser.MaxArguments, len(call.Arguments))
	}
	last := call.Arguments[len(call.Arguments)-1].(*ast.NumberLiteral)
	if last.Value != 254 {
		t.Fatalf("expected first 255 arguments kept, last=%v", last.Value)
	}
}

func TestParameterListCapDropsSilently(t *testing.T) {
	params := make([]string, 260)
	for i := range params {
		params[i] = fmt.Sprintf("p%d", i)
	}
	prog, errs := parseSource(t, "fun f("+strings.Join(params, ", ")+") {}")
	if len(errs) != 0 {
		t.Fatalf("expected no diagnostics for long parameter list, got %v", errs)
	}
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	if len(fn.Params) != parser.MaxArguments {
		t.Fatalf("expected %d params, got %d", parser.MaxArguments, len(fn.Params))
	}
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Print, "print", 0, 1),
		token.NewLiteral(token.Number, "1", 1.0, 6, 1),
		token.New(token.Semicolon, ";", 7, 1),
	}
	prog, errs := parser.New(tokens).Parse()
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if got := ast.Format(prog); got != "(program (print 1))" {
		t.Fatalf("unexpected program %s", got)
	}
}

func TestEmptyProgram(t *testing.T) {
	prog, errs := parser.Parse([]token.Token{token.New(token.EOF, "", 0, 1)})
	if len(errs) != 0 || len(prog.Body) != 0 {
		t.Fatalf("expected empty program, got %s %v", ast.Format(prog), errs)
	}
}

func TestErrorMessageNamesLocation(t *testing.T) {
	_, errs := parseSource(t, "var = 1;")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	msg := errs[0].Error()
	if !strings.Contains(msg, "[line 1]") || !strings.Contains(msg, "at '='") {
		t.Fatalf("unexpected message %q", msg)
	}
}

func TestParseCollectsTypedDiagnostics(t *testing.T) {
	prog, errs := parseSource(t, "var = 1;\nprint (2;\nprint 3;")
	if got := ast.Format(prog); got != "(program (print 3))" {
		t.Fatalf("unexpected program %s", got)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 diagnostics, got %v", errs)
	}
	want := []struct {
		kind     parser.ErrorKind
		expected token.Kind
		line     int
	}{
		{parser.ErrMissingToken, token.Identifier, 1},
		{parser.ErrMissingToken, token.RightParen, 2},
	}
	for idx, w := range want {
		err := errs[idx]
		if err == nil {
			t.Fatalf("diagnostic %d is nil", idx)
		}
		if err.Kind != w.kind || !err.HasExpected || err.Expected != w.expected || err.Token.Line != w.line {
			t.Fatalf("diagnostic %d: got kind=%v expected=%v line=%d", idx, err.Kind, err.Expected, err.Token.Line)
		}
	}
}

func TestSynthesizedEOFOffsetCountsRunes(t *testing.T) {
	tokens := []token.Token{
		token.New(token.Print, "print", 0, 1),
		token.NewLiteral(token.String, `"héllo"`, "héllo", 6, 1),
	}
	_, errs := parser.New(tokens).Parse()
	if len(errs) != 1 {
		t.Fatalf("expected 1 diagnostic, got %v", errs)
	}
	eof := errs[0].Token
	if errs[0].Kind != parser.ErrUnexpectedEOF || eof.Kind != token.EOF {
		t.Fatalf("expected unexpected EOF, got %v at %v", errs[0].Kind, eof.Kind)
	}
	if eof.Offset != 13 {
		t.Fatalf("expected EOF offset 13, got %d", eof.Offset)
	}
}
