package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

func (p *Parser) declaration() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.Var:
		return p.varDeclaration()
	case token.Fun:
		return p.funDeclaration()
	default:
		return p.statement()
	}
}

func (p *Parser) varDeclaration() (*ast.VarDeclaration, error) {
	keyword := p.advance()
	name, err := p.consume(token.Identifier, "after 'var'")
	if err != nil {
		return nil, err
	}
	var init ast.Expression
	if p.match(token.Equal) {
		init, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "after variable declaration"); err != nil {
		return nil, err
	}
	return at(ast.NewVarDeclaration(name.Lexeme, init), keyword), nil
}

func (p *Parser) funDeclaration() (*ast.FunctionDeclaration, error) {
	keyword := p.advance()
	name, err := p.consume(token.Identifier, "after 'fun'")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LeftParen, "after function name"); err != nil {
		return nil, err
	}
	params := make([]string, 0)
	if !p.check(token.RightParen) {
		for {
			param, err := p.consume(token.Identifier, "as parameter name")
			if err != nil {
				return nil, err
			}
			if len(params) < MaxArguments {
				params = append(params, param.Lexeme)
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "after parameters"); err != nil {
		return nil, err
	}
	open, err := p.consume(token.LeftBrace, "before function body")
	if err != nil {
		return nil, err
	}
	body, err := p.blockAfterBrace(open)
	if err != nil {
		return nil, err
	}
	return at(ast.NewFunctionDeclaration(name.Lexeme, params, body), keyword), nil
}
