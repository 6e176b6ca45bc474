package scanner

import (
	"fmt"
	"strconv"

	"lox/interpreter-go/pkg/token"
)

// Error reports a lexical problem at a source position.
type Error struct {
	Line    int
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] scan error: %s", e.Line, e.Message)
}

// Scanner turns source text into a token sequence terminated by EOF.
type Scanner struct {
	src    []rune
	start  int
	cur    int
	line   int
	tokens []token.Token
	errs   []*Error
}

// New creates a scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: []rune(src), line: 1}
}

// Scan consumes the whole source. Lexical errors are collected and scanning
// continues with the next character; the token slice always ends with EOF.
func (s *Scanner) Scan() ([]token.Token, []*Error) {
	for !s.atEnd() {
		s.start = s.cur
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.New(token.EOF, "", s.cur, s.line))
	return s.tokens, s.errs
}

// Tokens is a convenience wrapper returning the first scan error, if any.
func Tokens(src string) ([]token.Token, error) {
	toks, errs := New(src).Scan()
	if len(errs) > 0 {
		return toks, errs[0]
	}
	return toks, nil
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.add(token.LeftParen)
	case ')':
		s.add(token.RightParen)
	case '{':
		s.add(token.LeftBrace)
	case '}':
		s.add(token.RightBrace)
	case ',':
		s.add(token.Comma)
	case '.':
		s.add(token.Dot)
	case '-':
		s.add(token.Minus)
	case '+':
		s.add(token.Plus)
	case ';':
		s.add(token.Semicolon)
	case '*':
		s.add(token.Star)
	case '!':
		s.addEither('=', token.BangEqual, token.Bang)
	case '=':
		s.addEither('=', token.EqualEqual, token.Equal)
	case '<':
		s.addEither('=', token.LessEqual, token.Less)
	case '>':
		s.addEither('=', token.GreaterEqual, token.Greater)
	case '/':
		if s.match('/') {
			for !s.atEnd() && s.peek() != '\n' {
				s.cur++
			}
			return
		}
		s.add(token.Slash)
	case ' ', '\t', '\r':
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.errorf("unexpected character %q", c)
		}
	}
}

func (s *Scanner) scanString() {
	startLine := s.line
	for !s.atEnd() && s.peek() != '"' {
		if s.peek() == '\n' {
			s.line++
		}
		s.cur++
	}
	if s.atEnd() {
		s.errs = append(s.errs, &Error{Line: startLine, Offset: s.start, Message: "unterminated string"})
		return
	}
	s.cur++
	text := string(s.src[s.start+1 : s.cur-1])
	s.tokens = append(s.tokens, token.NewLiteral(token.String, s.lexeme(), text, s.start, startLine))
}

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.cur++
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.cur++
		for isDigit(s.peek()) {
			s.cur++
		}
	}
	lexeme := s.lexeme()
	val, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.errorf("invalid number %q", lexeme)
		return
	}
	s.tokens = append(s.tokens, token.NewLiteral(token.Number, lexeme, val, s.start, s.line))
}

func (s *Scanner) scanIdentifier() {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.cur++
	}
	lexeme := s.lexeme()
	if kind, ok := token.Keywords[lexeme]; ok {
		s.add(kind)
		return
	}
	s.tokens = append(s.tokens, token.NewLiteral(token.Identifier, lexeme, lexeme, s.start, s.line))
}

func (s *Scanner) add(kind token.Kind) {
	s.tokens = append(s.tokens, token.New(kind, s.lexeme(), s.start, s.line))
}

func (s *Scanner) addEither(next rune, matched, single token.Kind) {
	if s.match(next) {
		s.add(matched)
		return
	}
	s.add(single)
}

func (s *Scanner) errorf(format string, args ...any) {
	s.errs = append(s.errs, &Error{Line: s.line, Offset: s.start, Message: fmt.Sprintf(format, args...)})
}

func (s *Scanner) lexeme() string { return string(s.src[s.start:s.cur]) }

func (s *Scanner) atEnd() bool { return s.cur >= len(s.src) }

func (s *Scanner) advance() rune {
	c := s.src[s.cur]
	s.cur++
	return c
}

func (s *Scanner) match(expected rune) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.cur++
	return true
}

func (s *Scanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

func (s *Scanner) peekNext() rune {
	if s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
