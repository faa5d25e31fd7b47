// Package lexer turns Ozen source text into a flat token stream, one
// character class at a time.
package lexer

import (
	"strconv"
	"strings"

	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

const (
	digits  = "0123456789"
	letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

var escapes = map[byte]byte{'n': '\n', 't': '\t'}

// Lexer performs lexical analysis of Ozen source text. It scans the
// source one byte at a time, classifying each character and emitting
// the matching token together with the span it was read from. It
// handles:
//   - number literals (INT and FLOAT)
//   - identifiers and keywords
//   - double-quoted string literals with backslash escapes
//   - single- and two-character operators (including the arrow, spelled
//     either '->' or '>>')
//   - '#' line comments and ';'/newline statement separators
//
// Fields:
//   - text: the complete source code as a string
//   - pos: the position of the byte currently under the cursor
//   - current: the byte under the cursor (0 once input is exhausted)
//   - atEnd: whether the cursor has moved past the final byte
type Lexer struct {
	text    string          // Entire source text
	pos     source.Position // Position of the byte under the cursor
	current byte            // Byte under the cursor; 0 once input is exhausted
	atEnd   bool            // Cursor has moved past the final byte
}

// New creates and initializes a Lexer for the given source text,
// positioned on its first byte.
//
// Parameters:
//   - filename: the name the source was read from, used in diagnostics
//   - text: the complete source code to tokenize
//
// Returns:
//   - *Lexer: a lexer ready to tokenize the source
//
// Example:
//
//	tokens, err := lexer.New("script.oz", "let x = 42").Tokenize()
func New(filename, text string) *Lexer {
	l := &Lexer{text: text, pos: source.NewPosition(filename, text)}
	l.advance()
	return l
}

func (l *Lexer) advance() {
	l.pos = l.pos.Advance(l.current)
	if l.pos.Index < len(l.text) {
		l.current = l.text[l.pos.Index]
		l.atEnd = false
	} else {
		l.current = 0
		l.atEnd = true
	}
}

// Tokenize scans the entire input in one pass.
//
// Returns:
//   - []token.Token: the complete token stream, always terminated by a
//     single EOF token
//   - *source.Error: the first IllegalChar or ExpectedChar error
//     encountered, in which case the token slice is nil
func (l *Lexer) Tokenize() ([]token.Token, *source.Error) {
	var tokens []token.Token

	for !l.atEnd {
		switch {
		case l.current == ' ' || l.current == '\t':
			l.advance()
		case l.current == '#':
			l.skipComment()
		case l.current == ';' || l.current == '\n':
			tokens = append(tokens, token.New(token.NEWLINE, l.pos))
			l.advance()
		case strings.IndexByte(digits, l.current) >= 0:
			tokens = append(tokens, l.number())
		case strings.IndexByte(letters, l.current) >= 0 || l.current == '_':
			tokens = append(tokens, l.identifier())
		case l.current == '"':
			tokens = append(tokens, l.string_())
		case l.current == '+':
			tokens = append(tokens, token.New(token.PLUS, l.pos))
			l.advance()
		case l.current == '-':
			start := l.pos
			l.advance()
			if l.current == '>' {
				l.advance()
				tokens = append(tokens, token.NewSpanned(token.ARROW, nil, source.Span{Start: start, End: l.pos}))
			} else {
				tokens = append(tokens, token.New(token.MINUS, start))
			}
		case l.current == '*':
			tokens = append(tokens, token.New(token.MUL, l.pos))
			l.advance()
		case l.current == '/':
			tokens = append(tokens, token.New(token.DIV, l.pos))
			l.advance()
		case l.current == '%':
			tokens = append(tokens, token.New(token.MOD, l.pos))
			l.advance()
		case l.current == '^':
			tokens = append(tokens, token.New(token.POW, l.pos))
			l.advance()
		case l.current == '(':
			tokens = append(tokens, token.New(token.LPAREN, l.pos))
			l.advance()
		case l.current == ')':
			tokens = append(tokens, token.New(token.RPAREN, l.pos))
			l.advance()
		case l.current == '[':
			tokens = append(tokens, token.New(token.LSQUARE, l.pos))
			l.advance()
		case l.current == ']':
			tokens = append(tokens, token.New(token.RSQUARE, l.pos))
			l.advance()
		case l.current == '!':
			tok, err := l.notEquals()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case l.current == '=':
			tokens = append(tokens, l.equals())
		case l.current == '<':
			tokens = append(tokens, l.lessThan())
		case l.current == '>':
			tokens = append(tokens, l.greaterThanOrArrow())
		case l.current == ',':
			tokens = append(tokens, token.New(token.COMMA, l.pos))
			l.advance()
		default:
			start := l.pos
			ch := l.current
			l.advance()
			return nil, source.NewError(source.IllegalChar, source.Span{Start: start, End: l.pos},
				"'"+string(ch)+"'")
		}
	}

	tokens = append(tokens, token.New(token.EOF, l.pos))
	return tokens, nil
}

func (l *Lexer) number() token.Token {
	var b strings.Builder
	dots := 0
	start := l.pos

	for !l.atEnd && (strings.IndexByte(digits, l.current) >= 0 || l.current == '.') {
		if l.current == '.' {
			if dots == 1 {
				break
			}
			dots++
		}
		b.WriteByte(l.current)
		l.advance()
	}

	span := source.Span{Start: start, End: l.pos}
	if dots == 0 {
		n, _ := strconv.ParseInt(b.String(), 10, 64)
		return token.NewSpanned(token.INT, n, span)
	}
	f, _ := strconv.ParseFloat(b.String(), 64)
	return token.NewSpanned(token.FLOAT, f, span)
}

// string_ reads a double-quoted literal, honoring backslash escapes:
// \n and \t decode to LF/HT, any other \x decodes to x literally, and a
// backslash-escaped quote does not end the literal.
func (l *Lexer) string_() token.Token {
	var b strings.Builder
	start := l.pos
	l.advance()
	escaping := false

	for !l.atEnd && (l.current != '"' || escaping) {
		switch {
		case escaping:
			if r, ok := escapes[l.current]; ok {
				b.WriteByte(r)
			} else {
				b.WriteByte(l.current)
			}
			escaping = false
		case l.current == '\\':
			escaping = true
		default:
			b.WriteByte(l.current)
		}
		l.advance()
	}

	l.advance()
	return token.NewSpanned(token.STRING, b.String(), source.Span{Start: start, End: l.pos})
}

func (l *Lexer) identifier() token.Token {
	var b strings.Builder
	start := l.pos

	for !l.atEnd && (strings.IndexByte(letters, l.current) >= 0 || strings.IndexByte(digits, l.current) >= 0 || l.current == '_') {
		b.WriteByte(l.current)
		l.advance()
	}

	id := b.String()
	kind := token.IDENT
	if token.Keywords[id] {
		kind = token.KEYWORD
	}
	return token.NewSpanned(kind, id, source.Span{Start: start, End: l.pos})
}

// notEquals expects '!' to be followed by '='; anything else is an
// ExpectedChar error.
func (l *Lexer) notEquals() (token.Token, *source.Error) {
	start := l.pos
	l.advance()

	if l.current == '=' {
		l.advance()
		return token.NewSpanned(token.NE, nil, source.Span{Start: start, End: l.pos}), nil
	}

	l.advance()
	return token.Token{}, source.NewError(source.ExpectedChar, source.Span{Start: start, End: l.pos},
		"'=' (after '!')")
}

func (l *Lexer) equals() token.Token {
	kind := token.EQ
	start := l.pos
	l.advance()

	if l.current == '=' {
		l.advance()
		kind = token.EE
	}

	return token.NewSpanned(kind, nil, source.Span{Start: start, End: l.pos})
}

func (l *Lexer) lessThan() token.Token {
	kind := token.LT
	start := l.pos
	l.advance()

	if l.current == '=' {
		l.advance()
		kind = token.LTE
	}

	return token.NewSpanned(kind, nil, source.Span{Start: start, End: l.pos})
}

func (l *Lexer) greaterThanOrArrow() token.Token {
	kind := token.GT
	start := l.pos
	l.advance()

	switch l.current {
	case '=':
		l.advance()
		kind = token.GTE
	case '>':
		l.advance()
		kind = token.ARROW
	}

	return token.NewSpanned(kind, nil, source.Span{Start: start, End: l.pos})
}

// skipComment consumes a '#' line comment, including its terminating
// newline. A comment running to the end of input simply stops there.
func (l *Lexer) skipComment() {
	l.advance()
	for !l.atEnd && l.current != '\n' {
		l.advance()
	}
	if !l.atEnd {
		l.advance()
	}
}
