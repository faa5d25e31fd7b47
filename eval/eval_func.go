package eval

import (
	"strconv"

	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/builtin"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func (e *Evaluator) evalFuncDef(n *ast.FuncDefNode, ctx *scope.Context) *Outcome {
	params := make([]string, len(n.Params))
	for i, p := range n.Params {
		params[i] = p.Payload.(string)
	}

	name := ""
	if n.Name != nil {
		name = n.Name.Payload.(string)
	}

	fn := object.NewUserFunction(name, params, n.Body, n.AutoReturn, ctx).WithSpan(n.Span())

	if n.Name != nil {
		ctx.Table.Set(name, fn)
	}
	return Success(fn)
}

func (e *Evaluator) evalCall(n *ast.CallNode, ctx *scope.Context) *Outcome {
	outcome := &Outcome{}

	callee := outcome.Register(e.Eval(n.Callee, ctx))
	if outcome.ShouldReturn() {
		return outcome
	}

	args := make([]object.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		value := outcome.Register(e.Eval(argNode, ctx))
		if outcome.ShouldReturn() {
			return outcome
		}
		args = append(args, value)
	}

	result, err := e.call(callee, args, ctx, n.Span())
	if err != nil {
		return Failure(err)
	}
	return Success(result.WithSpan(n.Span()))
}

// call dispatches to either a UserFunction's Ozen body or a registered
// BuiltinFunction's Go implementation, Call's single evaluation-time
// entry point.
func (e *Evaluator) call(callee object.Value, args []object.Value, callerCtx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	switch fn := callee.(type) {
	case *object.UserFunction:
		return e.callUserFunction(fn, args, callSpan)
	case *object.BuiltinFunction:
		return e.callBuiltin(fn, args, callerCtx, callSpan)
	default:
		return nil, source.NewRuntimeError(callSpan, "Value is not a function")
	}
}

func (e *Evaluator) callUserFunction(fn *object.UserFunction, args []object.Value, callSpan source.Span) (object.Value, *source.Error) {
	if err := checkArity(fn.String(), fn.Params, len(args), callSpan); err != nil {
		return nil, err
	}

	execCtx := fn.DefiningContext.Child(displayName(fn.Name), callSpan)
	for i, param := range fn.Params {
		execCtx.Table.Set(param, args[i].Copy())
	}

	bodyOutcome := e.Eval(fn.Body, execCtx)
	if bodyOutcome.Error != nil {
		return nil, bodyOutcome.Error
	}

	// A break/continue that no loop absorbed has unwound to the
	// function boundary with no value to return.
	if bodyOutcome.LoopShouldBreak || bodyOutcome.LoopShouldContinue {
		return nil, source.NewRuntimeError(callSpan, "'break' and 'continue' can only be used inside a loop")
	}

	if fn.AutoReturn && bodyOutcome.FuncReturnValue == nil {
		return bodyOutcome.Value, nil
	}
	if bodyOutcome.FuncReturnValue != nil {
		return bodyOutcome.FuncReturnValue, nil
	}
	return nullValue(), nil
}

func (e *Evaluator) callBuiltin(fn *object.BuiltinFunction, args []object.Value, callerCtx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	b, ok := builtin.Registry[fn.Name]
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "'"+fn.Name+"' is not defined")
	}
	if err := checkArity(fn.String(), b.Params, len(args), callSpan); err != nil {
		return nil, err
	}

	execCtx := callerCtx.Child(displayName(fn.Name), callSpan)
	for i, param := range b.Params {
		execCtx.Table.Set(param, args[i].Copy())
	}

	return b.Exec(e, execCtx, callSpan)
}

// checkArity reports too-few/too-many argument counts against the
// callee's declared parameters.
func checkArity(calleeDesc string, params []string, gotArgs int, span source.Span) *source.Error {
	if gotArgs > len(params) {
		return source.NewRuntimeError(span, strconv.Itoa(gotArgs-len(params))+" too many args passed into "+calleeDesc)
	}
	if gotArgs < len(params) {
		return source.NewRuntimeError(span, strconv.Itoa(len(params)-gotArgs)+" too few args passed into "+calleeDesc)
	}
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "<anonymous>"
	}
	return name
}
