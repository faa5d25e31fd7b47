// Package parser implements Ozen's recursive-descent grammar: one token
// of lookahead, with a speculative register protocol that lets an
// optional production fail and have the cursor rolled back.
package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// Parser walks a fixed token slice (already EOF-terminated) with a
// single current-token cursor and one token of lookahead.
//
// Fields:
//   - tokens: the token stream being parsed
//   - index: position of the current token within tokens
//   - current: the token under the cursor
type Parser struct {
	tokens  []token.Token // EOF-terminated token stream
	index   int           // Position of the current token
	current token.Token   // Token under the cursor
}

// New creates a Parser positioned at the first token.
//
// Parameters:
//   - tokens: an EOF-terminated token stream, as produced by
//     lexer.Tokenize
//
// Returns:
//   - *Parser: a parser ready to parse the stream
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens, index: -1}
	p.advance()
	return p
}

func (p *Parser) advance() token.Token {
	p.index++
	p.sync()
	return p.current
}

func (p *Parser) reverse(amount int) token.Token {
	p.index -= amount
	p.sync()
	return p.current
}

func (p *Parser) sync() {
	if p.index >= 0 && p.index < len(p.tokens) {
		p.current = p.tokens[p.index]
	}
}

// Parse parses a whole token stream as a top-level statement list and
// fails if any input remains afterward.
//
// Parameters:
//   - tokens: an EOF-terminated token stream
//
// Returns:
//   - *ast.ListNode: the parsed program, one element per statement
//   - *source.Error: an InvalidSyntax error when a production fails or
//     unconsumed tokens remain before EOF
//
// Example:
//
//	tokens, _ := lexer.New("script.oz", "print(1)").Tokenize()
//	program, err := parser.Parse(tokens)
func Parse(tokens []token.Token) (*ast.ListNode, *source.Error) {
	p := New(tokens)
	result := p.statements()
	if result.Error == nil && p.current.Kind != token.EOF {
		return nil, source.NewError(source.InvalidSyntax, p.current.Span,
			"Token cannot appear after previous tokens")
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return result.Node.(*ast.ListNode), nil
}

// matchKind reports whether t's kind is one of kinds.
func matchKind(t token.Token, kinds ...token.Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}
