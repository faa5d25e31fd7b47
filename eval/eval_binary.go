package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

func (e *Evaluator) evalBinOp(n *ast.BinOpNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	left := outcome.Register(e.Eval(n.Left, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}
	right := outcome.Register(e.Eval(n.Right, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}

	result, err := applyBinOp(left, n.Op, right)
	if err != nil {
		return Failure(err)
	}
	return Success(result.WithSpan(n.Span()))
}

func applyBinOp(left object.Value, op token.Token, right object.Value) (object.Value, *source.Error) {
	switch op.Kind {
	case token.PLUS:
		return left.Add(right)
	case token.MINUS:
		return left.Sub(right)
	case token.MUL:
		return left.Mul(right)
	case token.DIV:
		return left.Div(right)
	case token.POW:
		return left.Pow(right)
	case token.MOD:
		return left.Mod(right)
	case token.EE:
		return left.Eq(right)
	case token.NE:
		return left.Neq(right)
	case token.LT:
		return left.Lt(right)
	case token.GT:
		return left.Gt(right)
	case token.LTE:
		return left.Lte(right)
	case token.GTE:
		return left.Gte(right)
	case token.KEYWORD:
		switch op.Payload.(string) {
		case "and":
			return left.And(right)
		case "or":
			return left.Or(right)
		}
	}
	return nil, source.NewRuntimeError(op.Span, "Unknown operator")
}
