package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func (e *Evaluator) evalVarAccess(n *ast.VarAccessNode, ctx *scope.Context) *Outcome {
	name := n.Name.Payload.(string)
	raw, ok := ctx.Table.Get(name)
	if !ok {
		return Failure(source.NewRuntimeError(n.Span(), "'"+name+"' is not defined"))
	}
	return Success(raw.(object.Value).Copy().WithSpan(n.Span()))
}

func (e *Evaluator) evalVarAssign(n *ast.VarAssignNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}
	name := n.Name.Payload.(string)

	value := outcome.Register(e.Eval(n.Value, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}

	ctx.Table.Set(name, value)
	return Success(value)
}
