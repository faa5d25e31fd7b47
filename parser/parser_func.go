package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// funcDef parses `func IDENT? '(' (IDENT (',' IDENT)*)? ')' (ARROW expr
// | NEWLINE statements 'end')`.
func (p *Parser) funcDef() *ParseResult {
	result := &ParseResult{}

	if !p.current.Matches(token.KEYWORD, "func") {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected 'func'"))
	}
	start := p.current.Span.Start
	result.RegisterNext()
	p.advance()

	var name *token.Token
	if p.current.Kind == token.IDENT {
		tok := p.current
		name = &tok
		result.RegisterNext()
		p.advance()

		if p.current.Kind != token.LPAREN {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected '('"))
		}
	} else if p.current.Kind != token.LPAREN {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected identifier or '('"))
	}

	result.RegisterNext()
	p.advance()

	var params []token.Token
	if p.current.Kind == token.IDENT {
		params = append(params, p.current)
		result.RegisterNext()
		p.advance()

		for p.current.Kind == token.COMMA {
			result.RegisterNext()
			p.advance()

			if p.current.Kind != token.IDENT {
				return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected identifier"))
			}
			params = append(params, p.current)
			result.RegisterNext()
			p.advance()
		}

		if p.current.Kind != token.RPAREN {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected ',' or ')'"))
		}
	} else if p.current.Kind != token.RPAREN {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected identifier or ')'"))
	}

	result.RegisterNext()
	p.advance()

	if p.current.Kind == token.ARROW {
		result.RegisterNext()
		p.advance()

		body := result.Register(p.expr())
		if result.Error != nil {
			return result
		}

		return result.Success(ast.NewFuncDefNode(name, params, body, true,
			source.Span{Start: start, End: body.Span().End}))
	}

	if p.current.Kind != token.NEWLINE {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected '->', '>>' or NEWLINE"))
	}
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

	return result.Success(ast.NewFuncDefNode(name, params, body, false,
		source.Span{Start: start, End: body.Span().End}))
}
