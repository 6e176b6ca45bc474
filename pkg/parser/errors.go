package parser

import (
	"errors"
	"fmt"

	"lox/interpreter-go/pkg/token"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// ErrUnexpectedEOF: input ended where a token was required.
	ErrUnexpectedEOF ErrorKind = iota
	// ErrMissingToken: a required delimiter or keyword was absent.
	ErrMissingToken
	// ErrInvalidShape: an expression had the wrong form for its position,
	// e.g. an assignment target that is not a bare name.
	ErrInvalidShape
	// ErrUnexpectedToken: the token cannot begin any primary expression.
	ErrUnexpectedToken
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedEOF:
		return "unexpected end of input"
	case ErrMissingToken:
		return "missing token"
	case ErrInvalidShape:
		return "invalid expression shape"
	case ErrUnexpectedToken:
		return "unexpected token"
	default:
		return fmt.Sprintf("unknown_parse_error_%d", int(k))
	}
}

// Error is a single parse diagnostic.
type Error struct {
	Kind    ErrorKind
	Token   token.Token
	Message string
	// Expected is set for ErrMissingToken and for ErrUnexpectedEOF raised
	// while a specific token was required.
	Expected    token.Kind
	HasExpected bool
}

func (e *Error) Error() string {
	where := "at end"
	if e.Token.Kind != token.EOF {
		where = fmt.Sprintf("at '%s'", e.Token.Lexeme)
	}
	return fmt.Sprintf("[line %d] parse error %s: %s", e.Token.Line, where, e.Message)
}

// Is lets errors.Is match on kind alone: errors.Is(err, &Error{Kind: ErrInvalidShape}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (p *Parser) errorAt(tok token.Token, kind ErrorKind, format string, args ...any) *Error {
	if tok.Kind == token.EOF && kind != ErrInvalidShape {
		kind = ErrUnexpectedEOF
	}
	return &Error{Kind: kind, Token: tok, Message: fmt.Sprintf(format, args...)}
}

func (p *Parser) missing(expected token.Kind, context string) *Error {
	tok := p.peek()
	err := p.errorAt(tok, ErrMissingToken, "expected '%s' %s", expected, context)
	err.Expected = expected
	err.HasExpected = true
	return err
}

// asError narrows err to a parse diagnostic. Anything else is reported as an
// unexpected token at the current position.
func (p *Parser) asError(err error) *Error {
	var perr *Error
	if errors.As(err, &perr) {
		return perr
	}
	return &Error{Kind: ErrUnexpectedToken, Token: p.peek(), Message: err.Error()}
}
