package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// listExpr parses `[ (expr (',' expr)*)? ]`.
func (p *Parser) listExpr() *ParseResult {
	result := &ParseResult{}
	var elements []ast.Node
	start := p.current.Span.Start
	var end source.Position

	if p.current.Kind != token.LSQUARE {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected '['"))
	}
	result.RegisterNext()
	p.advance()

	if p.current.Kind == token.RSQUARE {
		end = p.current.Span.End
		result.RegisterNext()
		p.advance()
	} else {
		elem := result.Register(p.expr())
		if result.Error != nil {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
				"Expected ']', 'let', 'if', 'for', 'while', 'func', int, float, identifier, '+', '-', '(', '[' or 'not'"))
		}
		elements = append(elements, elem)

		for p.current.Kind == token.COMMA {
			result.RegisterNext()
			p.advance()

			elem := result.Register(p.expr())
			if result.Error != nil {
				return result
			}
			elements = append(elements, elem)
		}

		if p.current.Kind != token.RSQUARE {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected ',' or ']'"))
		}
		end = p.current.Span.End
		result.RegisterNext()
		p.advance()
	}

	return result.Success(ast.NewListNode(elements, source.Span{Start: start, End: end}))
}
