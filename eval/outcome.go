// Package eval walks an ast.Node tree against a scope.Context and
// produces runtime object.Values.
package eval

import (
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/source"
)

// Outcome carries one evaluation step's result plus the control-flow
// signal riding along with it: a plain value, a function return, a
// loop break, a loop continue, or an error. The flags let break,
// continue, and return unwind through nested statement lists without a
// panic/recover pair.
type Outcome struct {
	Value              object.Value
	Error              *source.Error
	FuncReturnValue    object.Value
	LoopShouldBreak    bool
	LoopShouldContinue bool
}

func Success(value object.Value) *Outcome {
	return &Outcome{Value: value}
}

func Failure(err *source.Error) *Outcome {
	return &Outcome{Error: err}
}

func SuccessReturn(value object.Value) *Outcome {
	return &Outcome{FuncReturnValue: value}
}

func SuccessBreak() *Outcome {
	return &Outcome{LoopShouldBreak: true}
}

func SuccessContinue() *Outcome {
	return &Outcome{LoopShouldContinue: true}
}

// ShouldReturn reports whether this outcome should stop a surrounding
// statement list from evaluating further siblings: an error, an
// in-flight function return, or an in-flight break/continue.
func (o *Outcome) ShouldReturn() bool {
	return o.Error != nil || o.FuncReturnValue != nil || o.LoopShouldBreak || o.LoopShouldContinue
}

// Register unwraps sub, propagating its value (or the control signal
// it carries) into the receiver. Every eval_* helper calls this on
// every sub-evaluation instead of checking sub.Error individually.
func (o *Outcome) Register(sub *Outcome) object.Value {
	o.Error = sub.Error
	o.FuncReturnValue = sub.FuncReturnValue
	o.LoopShouldBreak = sub.LoopShouldBreak
	o.LoopShouldContinue = sub.LoopShouldContinue
	return sub.Value
}
