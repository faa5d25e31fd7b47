package parser

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

// expr parses `let IDENT = expr`, or falls through to an and/or chain
// over comp_expr.
func (p *Parser) expr() *ParseResult {
	result := &ParseResult{}

	if p.current.Matches(token.KEYWORD, "let") {
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

		value := result.Register(p.expr())
		if result.Error != nil {
			return result
		}
		return result.Success(&ast.VarAssignNode{Name: varName, Value: value})
	}

	node := result.Register(p.binOp(p.compExpr, keywordIn("and", "or"), nil))
	if result.Error != nil {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
			"Expected 'let', 'if', 'for', 'while', 'func', int, float, identifier, '+', '-', '(', '[' or 'not'"))
	}
	return result.Success(node)
}

// compExpr parses a `not` prefix, or a comparison chain over arith_expr.
func (p *Parser) compExpr() *ParseResult {
	result := &ParseResult{}

	if p.current.Matches(token.KEYWORD, "not") {
		opTok := p.current
		result.RegisterNext()
		p.advance()

		node := result.Register(p.compExpr())
		if result.Error != nil {
			return result
		}
		return result.Success(&ast.UnaryOpNode{Op: opTok, Node: node})
	}

	node := result.Register(p.binOp(p.arithExpr, kindIn(token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE), nil))
	if result.Error != nil {
		return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
			"Expected int, float, identifier, '+', '-', '(', '[', 'if', 'for', 'while', 'func' or 'not'"))
	}
	return result.Success(node)
}

func (p *Parser) arithExpr() *ParseResult {
	return p.binOp(p.term, kindIn(token.PLUS, token.MINUS), nil)
}

func (p *Parser) term() *ParseResult {
	return p.binOp(p.factor, kindIn(token.MUL, token.DIV), nil)
}

// factor parses a unary +/- prefix, or falls through to power_or_modulo.
func (p *Parser) factor() *ParseResult {
	result := &ParseResult{}
	tok := p.current

	if matchKind(tok, token.PLUS, token.MINUS) {
		result.RegisterNext()
		p.advance()
		operand := result.Register(p.factor())
		if result.Error != nil {
			return result
		}
		return result.Success(&ast.UnaryOpNode{Op: tok, Node: operand})
	}

	return p.powerOrModulo()
}

// powerOrModulo parses `^`/`%` at the same precedence, right-associative
// through factor so a unary prefix on the right operand binds tighter.
func (p *Parser) powerOrModulo() *ParseResult {
	return p.binOp(p.call, kindIn(token.POW, token.MOD), p.factor)
}

// call parses an atom, followed by an optional `(args...)` application.
func (p *Parser) call() *ParseResult {
	result := &ParseResult{}
	atom := result.Register(p.atom())
	if result.Error != nil {
		return result
	}

	if p.current.Kind != token.LPAREN {
		return result.Success(atom)
	}

	start := atom.Span().Start
	result.RegisterNext()
	p.advance()

	var args []ast.Node
	if p.current.Kind == token.RPAREN {
		result.RegisterNext()
		p.advance()
	} else {
		arg := result.Register(p.expr())
		if result.Error != nil {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span,
				"Expected ')', int, float, string, identifier, '+', '-', '(', '[' or 'not'"))
		}
		args = append(args, arg)

		for p.current.Kind == token.COMMA {
			result.RegisterNext()
			p.advance()

			arg := result.Register(p.expr())
			if result.Error != nil {
				return result
			}
			args = append(args, arg)
		}

		if p.current.Kind != token.RPAREN {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected ',' or ')'"))
		}
		result.RegisterNext()
		p.advance()
	}

	end := atom.Span().End
	if len(args) > 0 {
		end = args[len(args)-1].Span().End
	}
	return result.Success(ast.NewCallNode(atom, args, source.Span{Start: start, End: end}))
}

// atom parses the innermost expression forms: literals, identifiers,
// parenthesized expressions, and the keyword-led constructs.
func (p *Parser) atom() *ParseResult {
	result := &ParseResult{}
	tok := p.current

	switch {
	case matchKind(tok, token.INT, token.FLOAT):
		result.RegisterNext()
		p.advance()
		return result.Success(&ast.NumberNode{Tok: tok})

	case tok.Kind == token.STRING:
		result.RegisterNext()
		p.advance()
		return result.Success(&ast.StringNode{Tok: tok})

	case tok.Kind == token.IDENT:
		result.RegisterNext()
		p.advance()
		return result.Success(&ast.VarAccessNode{Name: tok})

	case tok.Kind == token.LPAREN:
		result.RegisterNext()
		p.advance()
		expr := result.Register(p.expr())
		if result.Error != nil {
			return result
		}
		if p.current.Kind != token.RPAREN {
			return result.Failure(source.NewError(source.InvalidSyntax, p.current.Span, "Expected ')'"))
		}
		result.RegisterNext()
		p.advance()
		return result.Success(expr)

	case tok.Kind == token.LSQUARE:
		return p.listExpr()

	case tok.Matches(token.KEYWORD, "if"):
		return p.ifExpr()

	case tok.Matches(token.KEYWORD, "for"):
		return p.forExpr()

	case tok.Matches(token.KEYWORD, "while"):
		return p.whileExpr()

	case tok.Matches(token.KEYWORD, "func"):
		return p.funcDef()
	}

	return result.Failure(source.NewError(source.InvalidSyntax, tok.Span,
		"Expected 'let', int, float, identifier, '+', '-', '(', '[', 'if', 'for', 'while' or 'func'"))
}

// binOp parses a left-associative chain: parseLeft, then repeatedly an
// operator matching match followed by parseRight (parseLeft itself when
// parseRight is nil).
func (p *Parser) binOp(parseLeft func() *ParseResult, match func(token.Token) bool, parseRight func() *ParseResult) *ParseResult {
	if parseRight == nil {
		parseRight = parseLeft
	}

	result := &ParseResult{}
	left := result.Register(parseLeft())
	if result.Error != nil {
		return result
	}

	for match(p.current) {
		opTok := p.current
		result.RegisterNext()
		p.advance()

		right := result.Register(parseRight())
		if result.Error != nil {
			return result
		}
		left = &ast.BinOpNode{Left: left, Op: opTok, Right: right}
	}

	return result.Success(left)
}

func kindIn(kinds ...token.Kind) func(token.Token) bool {
	return func(t token.Token) bool { return matchKind(t, kinds...) }
}

func keywordIn(values ...string) func(token.Token) bool {
	return func(t token.Token) bool {
		for _, v := range values {
			if t.Matches(token.KEYWORD, v) {
				return true
			}
		}
		return false
	}
}
