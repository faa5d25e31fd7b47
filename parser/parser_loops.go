package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// forExpr parses `for IDENT = expr 'to' expr ['change' expr] 'do'
// (body | NEWLINE statements 'end')`.
func (p *Parser) forExpr() *ParseResult {
	result := &ParseResult{}

	if !p.current.Matches(token.KEYWORD, "for") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'for'"))
	}
	result.RegisterNext()
	p.advance()

	if p.current.Kind != token.IDENT {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected identifier"))
	}
	varName := p.current
	result.RegisterNext()
	p.advance()

	if p.current.Kind != token.EQ {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected '='"))
	}
	result.RegisterNext()
	p.advance()

	startValue := result.Register(p.expr())
	if result.Error != nil {
		return result
	}

	if !p.current.Matches(token.KEYWORD, "to") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'to'"))
	}
	result.RegisterNext()
	p.advance()

	endValue := result.Register(p.expr())
	if result.Error != nil {
		return result
	}

	var stepValue ast.Node
	if p.current.Matches(token.KEYWORD, "change") {
		result.RegisterNext()
		p.advance()

		stepValue = result.Register(p.expr())
		if result.Error != nil {
			return result
		}
	}

	if !p.current.Matches(token.KEYWORD, "do") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'do'"))
	}
	result.RegisterNext()
	p.advance()

	if p.current.Kind == token.NEWLINE {
		result.RegisterNext()
		p.advance()

		body := result.Register(p.statements())
		if result.Error != nil {
			return result
		}

		if !p.current.Matches(token.KEYWORD, "end") {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'end'"))
		}
		result.RegisterNext()
		p.advance()

		return result.Success(&ast.ForNode{
			VarName: varName, Start: startValue, End: endValue, Step: stepValue, Body: body, IsBlock: true,
		})
	}

	body := result.Register(p.statement())
	if result.Error != nil {
		return result
	}

	return result.Success(&ast.ForNode{
		VarName: varName, Start: startValue, End: endValue, Step: stepValue, Body: body, IsBlock: false,
	})
}

// whileExpr parses `while expr 'do' (body | NEWLINE statements 'end')`.
func (p *Parser) whileExpr() *ParseResult {
	result := &ParseResult{}

	if !p.current.Matches(token.KEYWORD, "while") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'while'"))
	}
	result.RegisterNext()
	p.advance()

	condition := result.Register(p.expr())
	if result.Error != nil {
		return result
	}

	if !p.current.Matches(token.KEYWORD, "do") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'do'"))
	}
	result.RegisterNext()
	p.advance()

	if p.current.Kind == token.NEWLINE {
		result.RegisterNext()
		p.advance()

		body := result.Register(p.statements())
		if result.Error != nil {
			return result
		}

		if !p.current.Matches(token.KEYWORD, "end") {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'end'"))
		}
		result.RegisterNext()
		p.advance()

		return result.Success(&ast.WhileNode{Condition: condition, Body: body, IsBlock: true})
	}

	body := result.Register(p.statement())
	if result.Error != nil {
		return result
	}

	return result.Success(&ast.WhileNode{Condition: condition, Body: body, IsBlock: false})
}
