package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// statements parses a NEWLINE-separated sequence of statements into a
// single ListNode. A failure in the first statement is returned as an
// error; after that, it stops (without error) at the first statement
// following a separator that fails to parse — the caller is responsible
// for deciding whether leftover input is acceptable.
func (p *Parser) statements() *ParseResult {
	result := &ParseResult{}
	var stmts []ast.Node
	start := p.current.Span.Start

	for p.current.Kind == token.NEWLINE {
		result.RegisterNext()
		p.advance()
	}

	stmt := result.Register(p.statement())
	if result.Error != nil {
		return result
	}
	stmts = append(stmts, stmt)

	for {
		newlineCount := 0
		for p.current.Kind == token.NEWLINE {
			result.RegisterNext()
			p.advance()
			newlineCount++
		}
		if newlineCount == 0 {
			break
		}

		stmt := result.TryRegister(p.statement())
		if stmt == nil {
			p.reverse(result.ToReverseCount)
			break
		}
		stmts = append(stmts, stmt)
	}

	return result.Success(ast.NewListNode(stmts, source.Span{Start: start, End: p.current.Span.End}))
}

// statement parses `return`/`continue`/`break` or falls through to a
// plain expression statement.
func (p *Parser) statement() *ParseResult {
	result := &ParseResult{}
	start := p.current.Span.Start

	if p.current.Matches(token.KEYWORD, "return") {
		result.RegisterNext()
		p.advance()

		value := result.TryRegister(p.expr())
		if value == nil {
			p.reverse(result.ToReverseCount)
		}
		return result.Success(ast.NewReturnNode(value, source.Span{Start: start, End: p.current.Span.Start}))
	}

	if p.current.Matches(token.KEYWORD, "continue") {
		result.RegisterNext()
		p.advance()
		return result.Success(ast.NewContinueNode(source.Span{Start: start, End: p.current.Span.Start}))
	}

	if p.current.Matches(token.KEYWORD, "break") {
		result.RegisterNext()
		p.advance()
		return result.Success(ast.NewBreakNode(source.Span{Start: start, End: p.current.Span.Start}))
	}

	expr := result.Register(p.expr())
	if result.Error != nil {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
			"Expected 'return', 'continue', 'break', 'let', 'if', 'for', 'while', 'func', int, float, identifier, '+', '-', '(', '[' or 'not'"))
	}
	return result.Success(expr)
}
