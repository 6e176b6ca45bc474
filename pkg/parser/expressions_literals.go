package parser

import (
	"strconv"

	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

func (p *Parser) primary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return at(ast.NewNumberLiteral(numberLiteral(tok)), tok), nil
	case token.String:
		p.advance()
		return at(ast.NewStringLiteral(textLiteral(tok)), tok), nil
	case token.True:
		p.advance()
		return at(ast.NewBooleanLiteral(true), tok), nil
	case token.False:
		p.advance()
		return at(ast.NewBooleanLiteral(false), tok), nil
	case token.Nil:
		p.advance()
		return at(ast.NewNilLiteral(), tok), nil
	case token.Identifier:
		p.advance()
		return at(ast.NewIdentifier(textLiteral(tok)), tok), nil
	case token.LeftParen:
		p.advance()
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RightParen, "after expression"); err != nil {
			return nil, err
		}
		return at(ast.NewGrouping(inner), tok), nil
	default:
		return nil, p.errorAt(tok, ErrUnexpectedToken, "expected expression")
	}
}

// numberLiteral prefers the scanner's payload and falls back to the lexeme.
func numberLiteral(tok token.Token) float64 {
	if v, ok := tok.Literal.(float64); ok {
		return v
	}
	v, _ := strconv.ParseFloat(tok.Lexeme, 64)
	return v
}

func textLiteral(tok token.Token) string {
	if s, ok := tok.Literal.(string); ok {
		return s
	}
	return tok.Lexeme
}
