package parser

import (
	"lox/interpreter-go/pkg/ast"
	"lox/interpreter-go/pkg/token"
)

var binaryOperators = map[token.Kind]ast.BinaryOperator{
	token.Plus:         ast.BinaryAdd,
	token.Minus:        ast.BinarySubtract,
	token.Star:         ast.BinaryMultiply,
	token.Slash:        ast.BinaryDivide,
	token.Less:         ast.BinaryLess,
	token.LessEqual:    ast.BinaryLessEqual,
	token.Greater:      ast.BinaryGreater,
	token.GreaterEqual: ast.BinaryGreaterEqual,
	token.EqualEqual:   ast.BinaryEqual,
	token.BangEqual:    ast.BinaryNotEqual,
}

// Binary precedence levels from loosest to tightest. Each level folds its
// operands into a left-leaning tree.
var (
	equalityOperators       = []token.Kind{token.EqualEqual, token.BangEqual}
	comparisonOperators     = []token.Kind{token.Greater, token.GreaterEqual, token.Less, token.LessEqual}
	additiveOperators       = []token.Kind{token.Minus, token.Plus}
	multiplicativeOperators = []token.Kind{token.Slash, token.Star}
)

func (p *Parser) expression() (ast.Expression, error) {
	return p.assignment()
}

// assignment is right-associative and only accepts a bare identifier target.
func (p *Parser) assignment() (ast.Expression, error) {
	expr, err := p.logicalOr()
	if err != nil {
		return nil, err
	}
	if !p.check(token.Equal) {
		return expr, nil
	}
	equals := p.advance()
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	target, ok := expr.(*ast.Identifier)
	if !ok {
		return nil, p.errorAt(equals, ErrInvalidShape, "invalid assignment target")
	}
	return at(ast.NewAssignmentExpression(target.Name, value), equals), nil
}

func (p *Parser) logicalOr() (ast.Expression, error) {
	return p.logical(token.Or, ast.LogicalOr, p.logicalAnd)
}

func (p *Parser) logicalAnd() (ast.Expression, error) {
	return p.logical(token.And, ast.LogicalAnd, p.equality)
}

func (p *Parser) logical(kind token.Kind, op ast.LogicalOperator, next func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.check(kind) {
		opTok := p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = at(ast.NewLogicalExpression(op, left, right), opTok)
	}
	return left, nil
}

func (p *Parser) equality() (ast.Expression, error) {
	return p.binary(equalityOperators, p.comparison)
}

func (p *Parser) comparison() (ast.Expression, error) {
	return p.binary(comparisonOperators, p.additive)
}

func (p *Parser) additive() (ast.Expression, error) {
	return p.binary(additiveOperators, p.multiplicative)
}

func (p *Parser) multiplicative() (ast.Expression, error) {
	return p.binary(multiplicativeOperators, p.unary)
}

func (p *Parser) binary(kinds []token.Kind, next func() (ast.Expression, error)) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}
	for p.match(kinds...) {
		opTok := p.tokens[p.pos-1]
		right, err := next()
		if err != nil {
			return nil, err
		}
		left = at(ast.NewBinaryExpression(binaryOperators[opTok.Kind], left, right), opTok)
	}
	return left, nil
}

func (p *Parser) unary() (ast.Expression, error) {
	switch p.peek().Kind {
	case token.Bang, token.Minus:
		opTok := p.advance()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		op := ast.UnaryNot
		if opTok.Kind == token.Minus {
			op = ast.UnaryNegate
		}
		return at(ast.NewUnaryExpression(op, operand), opTok), nil
	default:
		return p.call()
	}
}

// call parses `name(args...)`. Only a bare name can be called.
func (p *Parser) call() (ast.Expression, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}
	for p.check(token.LeftParen) {
		paren := p.advance()
		callee, ok := expr.(*ast.Identifier)
		if !ok {
			return nil, p.errorAt(paren, ErrInvalidShape, "only named functions can be called")
		}
		args, err := p.arguments()
		if err != nil {
			return nil, err
		}
		expr = at(ast.NewCallExpression(callee.Name, args), paren)
	}
	return expr, nil
}

func (p *Parser) arguments() ([]ast.Expression, error) {
	args := make([]ast.Expression, 0)
	if !p.check(token.RightParen) {
		for {
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			if len(args) < MaxArguments {
				args = append(args, arg)
			}
			if !p.match(token.Comma) {
				break
			}
		}
	}
	if _, err := p.consume(token.RightParen, "after arguments"); err != nil {
		return nil, err
	}
	return args, nil
}
