package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
)

func (e *Evaluator) evalIf(n *ast.IfNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	for _, c := range n.Cases {
		condition := outcome.Register(e.Eval(c.Condition, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}

		if condition.IsTrue() {
			value := outcome.Register(e.Eval(c.Body, ctx))
			if outcome.ShouldReturn() {
				return outcome
			}
			if c.IsBlock {
				return Success(nullValue())
			}
			return Success(value)
		}
	}

	if n.Else != nil {
		value := outcome.Register(e.Eval(n.Else.Body, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}
		if n.Else.IsBlock {
			return Success(nullValue())
		}
		return Success(value)
	}

	return Success(nullValue())
}

// nullValue is the value an expression yields when it produces nothing
// meaningful: a block body, a bare statement list, an else-less if
// whose condition was false. Ozen models this as Number(0) rather than
// a dedicated null type; the global `null` binding is the same value.
func nullValue() object.Value {
	return object.NewInt(0)
}
