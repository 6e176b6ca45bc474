package token

import "fmt"

// Kind classifies a lexical unit.
type Kind int

const (
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	Identifier
	String
	Number

	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	EOF
)

var kindNames = map[Kind]string{
	LeftParen:    "(",
	RightParen:   ")",
	LeftBrace:    "{",
	RightBrace:   "}",
	Comma:        ",",
	Dot:          ".",
	Minus:        "-",
	Plus:         "+",
	Semicolon:    ";",
	Slash:        "/",
	Star:         "*",
	Bang:         "!",
	BangEqual:    "!=",
	Equal:        "=",
	EqualEqual:   "==",
	Greater:      ">",
	GreaterEqual: ">=",
	Less:         "<",
	LessEqual:    "<=",
	Identifier:   "identifier",
	String:       "string",
	Number:       "number",
	And:          "and",
	Class:        "class",
	Else:         "else",
	False:        "false",
	Fun:          "fun",
	For:          "for",
	If:           "if",
	Nil:          "nil",
	Or:           "or",
	Print:        "print",
	Return:       "return",
	Super:        "super",
	This:         "this",
	True:         "true",
	Var:          "var",
	While:        "while",
	EOF:          "end of input",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("unknown_kind_%d", int(k))
}

// Keywords maps reserved words to their kinds.
var Keywords = map[string]Kind{
	"and":    And,
	"class":  Class,
	"else":   Else,
	"false":  False,
	"fun":    Fun,
	"for":    For,
	"if":     If,
	"nil":    Nil,
	"or":     Or,
	"print":  Print,
	"return": Return,
	"super":  Super,
	"this":   This,
	"true":   True,
	"var":    Var,
	"while":  While,
}

// Token is a classified lexical unit produced by the scanner.
//
// Literal holds a float64 for Number tokens and a string for String and
// Identifier tokens; it is nil for every other kind.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Offset  int
	Line    int
}

// New builds a token without a literal payload.
func New(kind Kind, lexeme string, offset, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Offset: offset, Line: line}
}

// NewLiteral builds a token carrying a literal payload.
func NewLiteral(kind Kind, lexeme string, literal any, offset, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Offset: offset, Line: line}
}

// StartsStatement reports whether the kind can begin a new statement. The
// parser uses these as synchronisation points after an error.
func (k Kind) StartsStatement() bool {
	switch k {
	case Class, For, Fun, If, Print, Var, Return, While:
		return true
	default:
		return false
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, String, Number:
		return fmt.Sprintf("%s %q", t.Kind, t.Lexeme)
	case EOF:
		return t.Kind.String()
	default:
		return fmt.Sprintf("'%s'", t.Kind)
	}
}
