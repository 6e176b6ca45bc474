package parser

import (
	"lox/interpreter-go/pkg/token"
)

type lineSetter interface {
	SetLine(int)
}

// at stamps node with the line of tok and returns it.
func at[N lineSetter](node N, tok token.Token) N {
	node.SetLine(tok.Line)
	return node
}

func (p *Parser) atEnd() bool { return p.peek().Kind == token.EOF }

func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos]
}

// advance returns the current token and moves past it. EOF is never consumed.
func (p *Parser) advance() token.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past a token of the expected kind or reports it missing.
func (p *Parser) consume(kind token.Kind, context string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return token.Token{}, p.missing(kind, context)
}
