package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// ifCaseSet is the (cases, else) pair threaded between the if/consider/
// last productions.
type ifCaseSet struct {
	Cases []ast.IfCase
	Else  *ast.ElseCase
}

// ifExpr parses a full `if ... [consider ...]* [last ...]` chain.
func (p *Parser) ifExpr() *ParseResult {
	result := &ParseResult{}
	set, sub := p.ifExprCases("if")
	result.Register(sub)
	if result.Error != nil {
		return result
	}

	start := set.Cases[0].Condition.Span().Start
	end := set.Cases[len(set.Cases)-1].Body.Span().End
	if set.Else != nil {
		end = set.Else.Body.Span().End
	}
	return result.Success(ast.NewIfNode(set.Cases, set.Else, source.Span{Start: start, End: end}))
}

// ifExprB parses a `consider` continuation — same shape as `if`.
func (p *Parser) ifExprB() (ifCaseSet, *ParseResult) {
	return p.ifExprCases("consider")
}

// ifExprC parses a terminal `last` branch, or reports no else branch by
// returning a nil *ast.ElseCase with no error.
func (p *Parser) ifExprC() (*ast.ElseCase, *ParseResult) {
	result := &ParseResult{}
	var elseCase *ast.ElseCase

	if p.current.Matches(token.KEYWORD, "last") {
		result.RegisterNext()
		p.advance()

		if p.current.Kind == token.NEWLINE {
			result.RegisterNext()
			p.advance()

			body := result.Register(p.statements())
			if result.Error != nil {
				return nil, result
			}
			elseCase = &ast.ElseCase{Body: body, IsBlock: true}

			if p.current.Matches(token.KEYWORD, "end") {
				result.RegisterNext()
				p.advance()
			} else {
				return nil, result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'end'"))
			}
		} else {
			body := result.Register(p.statement())
			if result.Error != nil {
				return nil, result
			}
			elseCase = &ast.ElseCase{Body: body, IsBlock: false}
		}
	}

	return elseCase, result.Success(nil)
}

// ifExprBOrC parses whichever of `consider` or `last` follows a case
// body, or neither.
func (p *Parser) ifExprBOrC() (ifCaseSet, *ParseResult) {
	result := &ParseResult{}

	if p.current.Matches(token.KEYWORD, "consider") {
		set, sub := p.ifExprB()
		result.Register(sub)
		if result.Error != nil {
			return ifCaseSet{}, result
		}
		return set, result.Success(nil)
	}

	elseCase, sub := p.ifExprC()
	result.Register(sub)
	if result.Error != nil {
		return ifCaseSet{}, result
	}
	return ifCaseSet{Else: elseCase}, result.Success(nil)
}

// ifExprCases parses one `caseKeyword cond do (body | NEWLINE statements
// 'end') [consider|last tail]`, used for both `if` and `consider`.
func (p *Parser) ifExprCases(caseKeyword string) (ifCaseSet, *ParseResult) {
	result := &ParseResult{}
	var cases []ast.IfCase
	var elseCase *ast.ElseCase

	if !p.current.Matches(token.KEYWORD, caseKeyword) {
		return ifCaseSet{}, result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
			"Expected '"+caseKeyword+"'"))
	}
	result.RegisterNext()
	p.advance()

	condition := result.Register(p.expr())
	if result.Error != nil {
		return ifCaseSet{}, result
	}

	if !p.current.Matches(token.KEYWORD, "do") {
		return ifCaseSet{}, result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'do'"))
	}
	result.RegisterNext()
	p.advance()

	if p.current.Kind == token.NEWLINE {
		result.RegisterNext()
		p.advance()

		body := result.Register(p.statements())
		if result.Error != nil {
			return ifCaseSet{}, result
		}
		cases = append(cases, ast.IfCase{Condition: condition, Body: body, IsBlock: true})

		if p.current.Matches(token.KEYWORD, "end") {
			result.RegisterNext()
			p.advance()
		} else {
			set, sub := p.ifExprBOrC()
			result.Register(sub)
			if result.Error != nil {
				return ifCaseSet{}, result
			}
			cases = append(cases, set.Cases...)
			elseCase = set.Else
		}
	} else {
		stmt := result.Register(p.statement())
		if result.Error != nil {
			return ifCaseSet{}, result
		}
		cases = append(cases, ast.IfCase{Condition: condition, Body: stmt, IsBlock: false})

		set, sub := p.ifExprBOrC()
		result.Register(sub)
		if result.Error != nil {
			return ifCaseSet{}, result
		}
		cases = append(cases, set.Cases...)
		elseCase = set.Else
	}

	return ifCaseSet{Cases: cases, Else: elseCase}, result.Success(nil)
}
