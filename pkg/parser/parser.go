package parser

import (
	"unicode/utf8"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

// MaxArguments caps call argument and parameter lists. Entries past the cap
// are parsed and then dropped without a diagnostic.
const MaxArguments = 255

// Parser is a recursive-descent parser over a scanned token sequence.
type Parser struct {
	tokens []token.Token
	pos    int
	errs   []*Error
}

// New constructs a parser over tokens. The slice is read but never modified;
// a trailing EOF token is appended to the parser's view when missing.
// Offsets count runes, as the scanner does.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		line, offset := 1, 0
		if n := len(tokens); n > 0 {
			line, offset = tokens[n-1].Line, tokens[n-1].Offset+utf8.RuneCountInString(tokens[n-1].Lexeme)
		}
		view := make([]token.Token, len(tokens), len(tokens)+1)
		copy(view, tokens)
		tokens = append(view, token.New(token.EOF, "", offset, line))
	}
	return &Parser{tokens: tokens}
}

// Parse parses the tokens into a program. Statements that fail to parse are
// reported in the returned diagnostics and skipped; parsing resumes at the
// next statement boundary.
func (p *Parser) Parse() (*ast.Program, []*Error) {
	body := make([]ast.Statement, 0)
	for !p.atEnd() {
		start := p.pos
		stmt, err := p.declaration()
		if err != nil {
			p.errs = append(p.errs, p.asError(err))
			p.synchronize()
			if p.pos == start {
				p.advance()
			}
			continue
		}
		body = append(body, stmt)
	}
	program := ast.NewProgram(body)
	if len(p.tokens) > 0 {
		program.SetLine(p.tokens[0].Line)
	}
	return program, p.errs
}

// Parse is a convenience wrapper around New(tokens).Parse().
func Parse(tokens []token.Token) (*ast.Program, []*Error) {
	return New(tokens).Parse()
}

// synchronize discards tokens until a statement boundary: a consumed ';' or
// a token that begins a statement.
func (p *Parser) synchronize() {
	for !p.atEnd() {
		tok := p.peek()
		if tok.Kind == token.Semicolon {
			p.advance()
			return
		}
		if tok.Kind.StartsStatement() {
			return
		}
		p.advance()
	}
}
