// Package token defines Ozen's closed set of lexical token kinds and the
// Token type the lexer produces.
package token

import (
	"fmt"

	"github.com/ozen-lang/ozen/source"
)

// Kind enumerates Ozen's token kinds. The set is small and fixed, so a
// compact int enum with a Stringer fits better than string-typed kinds.
type Kind int

const (
	INT Kind = iota
	FLOAT
	STRING
	IDENT
	KEYWORD
	PLUS
	MINUS
	MUL
	DIV
	POW
	MOD
	EQ
	LPAREN
	RPAREN
	LSQUARE
	RSQUARE
	EE
	NE
	LT
	GT
	LTE
	GTE
	COMMA
	ARROW
	NEWLINE
	EOF
)

var kindNames = map[Kind]string{
	INT: "INT", FLOAT: "FLOAT", STRING: "STRING", IDENT: "IDENT", KEYWORD: "KEYWORD",
	PLUS: "PLUS", MINUS: "MINUS", MUL: "MUL", DIV: "DIV", POW: "POW", MOD: "MOD",
	EQ: "EQ", LPAREN: "LPAREN", RPAREN: "RPAREN", LSQUARE: "LSQUARE", RSQUARE: "RSQUARE",
	EE: "EE", NE: "NE", LT: "LT", GT: "GT", LTE: "LTE", GTE: "GTE",
	COMMA: "COMMA", ARROW: "ARROW", NEWLINE: "NEWLINE", EOF: "EOF",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Keywords is the reserved-word table. An identifier lexeme found here
// is emitted as KEYWORD instead of IDENT.
var Keywords = map[string]bool{
	"let": true, "and": true, "or": true, "not": true,
	"if": true, "consider": true, "last": true,
	"for": true, "to": true, "change": true, "while": true,
	"func": true, "do": true, "end": true,
	"return": true, "continue": true, "break": true,
}

// Token is one lexical unit: its kind, an optional payload (an int64,
// float64, or string — never more than one of these at a time), and the
// span of source it was read from.
type Token struct {
	Kind    Kind
	Payload any
	Span    source.Span
}

// New builds a token with no payload, spanning exactly one advance past
// start — the shape single-character tokens take.
func New(kind Kind, start source.Position) Token {
	return Token{Kind: kind, Span: source.NewSpan(start)}
}

// NewSpanned builds a token whose span is given explicitly, for
// multi-character tokens (numbers, strings, identifiers, two-char
// operators) where the lexer has already tracked the end position.
func NewSpanned(kind Kind, payload any, span source.Span) Token {
	return Token{Kind: kind, Payload: payload, Span: span}
}

// Matches reports whether the token is a KEYWORD (or any other kind)
// carrying exactly this payload, used throughout the parser to test for
// specific keywords without a dedicated Kind per keyword.
func (t Token) Matches(kind Kind, value string) bool {
	s, ok := t.Payload.(string)
	return t.Kind == kind && ok && s == value
}

// String renders the token for debugging, e.g. "KEYWORD:if" or "EOF".
func (t Token) String() string {
	if t.Payload != nil {
		return fmt.Sprintf("%s:%v", t.Kind, t.Payload)
	}
	return t.Kind.String()
}
