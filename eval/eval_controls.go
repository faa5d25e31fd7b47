package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/scope"
)

func (e *Evaluator) evalReturn(n *ast.ReturnNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	if n.Value == nil {
		return SuccessReturn(nullValue())
	}

	value := outcome.Register(e.Eval(n.Value, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}
	return SuccessReturn(value)
}
