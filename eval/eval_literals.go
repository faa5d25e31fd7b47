package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
)

func (e *Evaluator) evalNumber(n *ast.NumberNode, ctx *scope.Context) *Outcome {
	var value *object.Number
	switch payload := n.Tok.Payload.(type) {
	case int64:
		value = object.NewInt(payload)
	case float64:
		value = object.NewFloat(payload)
	}
	return Success(value.WithSpan(n.Span()))
}

func (e *Evaluator) evalString(n *ast.StringNode, ctx *scope.Context) *Outcome {
	value := object.NewString(n.Tok.Payload.(string))
	return Success(value.WithSpan(n.Span()))
}

func (e *Evaluator) evalList(n *ast.ListNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}
	elements := make([]object.Value, 0, len(n.Elements))

	for _, elemNode := range n.Elements {
		value := outcome.Register(e.Eval(elemNode, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}
		elements = append(elements, value)
	}

	return Success(object.NewList(elements).WithSpan(n.Span()))
}
