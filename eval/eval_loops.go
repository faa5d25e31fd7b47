package eval

import (
	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func (e *Evaluator) evalFor(n *ast.ForNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	startValue := outcome.Register(e.Eval(n.Start, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}
	startNum, ok := startValue.(*object.Number)
	if !ok {
		return Failure(source.NewRuntimeError(n.Start.Span(), "Expected a number"))
	}

	endValue := outcome.Register(e.Eval(n.End, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}
	endNum, ok := endValue.(*object.Number)
	if !ok {
		return Failure(source.NewRuntimeError(n.End.Span(), "Expected a number"))
	}

	step := 1.0
	stepIsFloat := false
	if n.Step != nil {
		stepValue := outcome.Register(e.Eval(n.Step, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}
		stepNum, ok := stepValue.(*object.Number)
		if !ok {
			return Failure(source.NewRuntimeError(n.Step.Span(), "Expected a number"))
		}
		step = stepNum.Float()
		stepIsFloat = stepNum.IsFloat()
	}

	name := n.VarName.Payload.(string)
	i := startNum.Float()
	end := endNum.Float()

	// An all-integer loop binds integer counters; a float start or step
	// makes every bound counter a float.
	intCounter := !startNum.IsFloat() && !stepIsFloat

	var elements []object.Value
	for (step >= 0 && i < end) || (step < 0 && i > end) {
		if intCounter {
			ctx.Table.Set(name, object.NewInt(int64(i)))
		} else {
			ctx.Table.Set(name, object.NewFloat(i))
		}

		value := outcome.Register(e.Eval(n.Body, ctx))
		if outcome.LoopShouldContinue {
			outcome.LoopShouldContinue = false
		} else if outcome.LoopShouldBreak {
			outcome.LoopShouldBreak = false
			break
		} else if outcome.ShouldReturn() {
			return outcome
		} else if !n.IsBlock {
			elements = append(elements, value)
		}

		i += step
	}

	if n.IsBlock {
		return Success(nullValue())
	}
	return Success(object.NewList(elements).WithSpan(n.Span()))
}

func (e *Evaluator) evalWhile(n *ast.WhileNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}
	var elements []object.Value

	for {
		condition := outcome.Register(e.Eval(n.Condition, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}
		if !condition.IsTrue() {
			break
		}

		value := outcome.Register(e.Eval(n.Body, ctx))
		if outcome.LoopShouldContinue {
			outcome.LoopShouldContinue = false
		} else if outcome.LoopShouldBreak {
			outcome.LoopShouldBreak = false
			break
		} else if outcome.ShouldReturn() {
			return outcome
		} else if !n.IsBlock {
			elements = append(elements, value)
		}
	}

	if n.IsBlock {
		return Success(nullValue())
	}
	return Success(object.NewList(elements).WithSpan(n.Span()))
}
