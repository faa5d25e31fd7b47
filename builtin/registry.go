// Package builtin implements Ozen's fixed host-procedure registry:
// print, return_print, user_in, num_user_in, clear/cls, the is_*
// predicates, append/pop/extend/length, to_int/to_float/to_string,
// incr/decr, and run.
package builtin

import (
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

// Runtime is the ambient surface a built-in's Go implementation may
// need beyond its bound arguments: where to write print output, where
// to read a line of input from, and how to run an included script.
// This package depends only on this interface, not on the eval package
// that implements it — eval depends on builtin (to dispatch
// BuiltinFunction calls), so the dependency can only run one way.
type Runtime interface {
	Print(s string)
	ReadLine() (string, error)
	Run(filename, text string, callSpan source.Span) (object.Value, *source.Error)
}

// Builtin pairs a built-in's declared parameter names with its Go
// implementation. The caller binds every declared parameter into a
// fresh context before Exec runs.
type Builtin struct {
	Name   string
	Params []string
	Exec   func(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error)
}

// Registry maps every built-in's public name to its implementation,
// including the `cls` alias for `clear`.
var Registry = map[string]*Builtin{}

func register(b *Builtin) {
	Registry[b.Name] = b
}

// arg fetches a bound parameter by name. The caller (eval.callBuiltin)
// has already bound every declared parameter before Exec runs, so a
// missing name here would be an Ozen implementation bug, not user
// error — it panics rather than returning a RuntimeError.
func arg(ctx *scope.Context, name string) object.Value {
	v, ok := ctx.Table.Get(name)
	if !ok {
		panic("builtin: unbound parameter " + name)
	}
	return v.(object.Value)
}

func null() object.Value { return object.NewInt(0) }

func boolValue(b bool) object.Value {
	if b {
		return object.NewInt(1)
	}
	return object.NewInt(0)
}
