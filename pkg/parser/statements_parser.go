package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

func (p *Parser) statement() (ast.Statement, error) {
	switch p.peek().Kind {
	case token.Print:
		return p.printStatement()
	case token.If:
		return p.ifStatement()
	case token.While:
		return p.whileStatement()
	case token.For:
		return p.forStatement()
	case token.Return:
		return p.returnStatement()
	case token.LeftBrace:
		return p.blockAfterBrace(p.advance())
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() (*ast.PrintStatement, error) {
	keyword := p.advance()
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "after value"); err != nil {
		return nil, err
	}
	return at(ast.NewPrintStatement(value), keyword), nil
}

func (p *Parser) expressionStatement() (*ast.ExpressionStatement, error) {
	first := p.peek()
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.Semicolon, "after expression"); err != nil {
		return nil, err
	}
	return at(ast.NewExpressionStatement(expr), first), nil
}

func (p *Parser) ifStatement() (*ast.IfStatement, error) {
	keyword := p.advance()
	cond, err := p.parenthesizedCondition("if")
	if err != nil {
		return nil, err
	}
	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}
	return at(ast.NewIfStatement(cond, thenBranch, elseBranch), keyword), nil
}

func (p *Parser) whileStatement() (*ast.WhileStatement, error) {
	keyword := p.advance()
	cond, err := p.parenthesizedCondition("while")
	if err != nil {
		return nil, err
	}
	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return at(ast.NewWhileStatement(cond, body), keyword), nil
}

func (p *Parser) parenthesizedCondition(keyword string) (ast.Expression, error) {
	if _, err := p.consume(token.LeftParen, "after '"+keyword+"'"); err != nil {
		return nil, err
	}
	cond, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RightParen, "after "+keyword+" condition"); err != nil {
		return nil, err
	}
	return cond, nil
}

// forStatement desugars `for (init; cond; incr) body` into
// `{ init; while (cond) { body; incr; } }`.
func (p *Parser) forStatement() (ast.Statement, error) {
	keyword := p.advance()
	if _, err := p.consume(token.LeftParen, "after 'for'"); err != nil {
		return nil, err
	}

	var (
		init ast.Statement
		err  error
	)
	switch p.peek().Kind {
	case token.Semicolon:
		p.advance()
	case token.Var:
		init, err = p.varDeclaration()
	default:
		init, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var cond ast.Expression
	if !p.check(token.Semicolon) {
		if cond, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "after loop condition"); err != nil {
		return nil, err
	}

	var incr ast.Expression
	if !p.check(token.RightParen) {
		if incr, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.RightParen, "after for clauses"); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if incr != nil {
		body = at(ast.NewBlock([]ast.Statement{body, at(ast.NewExpressionStatement(incr), keyword)}), keyword)
	}
	if cond == nil {
		cond = at(ast.NewBooleanLiteral(true), keyword)
	}
	loop := at(ast.NewWhileStatement(cond, body), keyword)

	outer := []ast.Statement{loop}
	if init != nil {
		outer = []ast.Statement{init, loop}
	}
	return at(ast.NewBlock(outer), keyword), nil
}

func (p *Parser) returnStatement() (*ast.ReturnStatement, error) {
	keyword := p.advance()
	var value ast.Expression
	if !p.check(token.Semicolon) {
		var err error
		if value, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(token.Semicolon, "after return value"); err != nil {
		return nil, err
	}
	return at(ast.NewReturnStatement(value), keyword), nil
}

// blockAfterBrace parses declarations up to the closing brace; the opening
// brace has already been consumed.
func (p *Parser) blockAfterBrace(open token.Token) (*ast.Block, error) {
	body := make([]ast.Statement, 0)
	for !p.check(token.RightBrace) && !p.atEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	if _, err := p.consume(token.RightBrace, "after block"); err != nil {
		return nil, err
	}
	return at(ast.NewBlock(body), open), nil
}
