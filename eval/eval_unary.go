package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
	"github.com/ozen-lang/ozen/token"
)

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOpNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	operand := outcome.Register(e.Eval(n.Node, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}

	var result object.Value
	var err *source.Error

	switch {
	case n.Op.Kind == token.MINUS:
		result, err = operand.Mul(object.NewInt(-1))
	case n.Op.Kind == token.PLUS:
		result, err = operand, nil
	case n.Op.Matches(token.KEYWORD, "not"):
		result, err = operand.Not()
	default:
		err = source.NewRuntimeError(n.Op.Span, "Unknown unary operator")
	}
	if err != nil {
		return Failure(err)
	}
	return Success(result.WithSpan(n.Span()))
}
