// Package ozen is the language's embedding facade: Run lexes, parses,
// and evaluates one script against a fresh global context, the same
// entry point the CLI's file mode and the `run` built-in both use.
package ozen

import (
	"io"

	"github.com/ozen-lang/ozen/builtin"
	"github.com/ozen-lang/ozen/eval"
	"github.com/ozen-lang/ozen/lexer"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/parser"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

const programContextName = "<program>"

// Run lexes, parses, and evaluates text (read from filename, used only
// for diagnostics) against a fresh global context pre-populated with
// every built-in and constant. Built-in output goes to out;
// user_in/num_user_in read from in.
func Run(filename, text string, out io.Writer, in io.Reader) (object.Value, *source.Error) {
	return newRunner(out, in).run(filename, text)
}

// runner threads one Evaluator (and the RunFile hook installed on it)
// across however many nested `run(...)` calls a script makes, so every
// included script shares the same stdout/stdin instead of each
// allocating its own buffered reader.
type runner struct {
	ev *eval.Evaluator
}

func newRunner(out io.Writer, in io.Reader) *runner {
	r := &runner{ev: eval.NewEvaluator(out, in)}
	r.ev.RunFile = r.runIncluded
	return r
}

// Session is a persistent evaluation context for an interactive REPL:
// unlike Run, which starts a fresh global context on every call, a
// Session keeps the same *scope.Context (and therefore every variable
// and function a line defines) alive across repeated Eval calls.
type Session struct {
	r   *runner
	ctx *scope.Context
}

// NewSession builds a Session whose built-ins read from in and write
// to out, with globals installed once up front.
func NewSession(out io.Writer, in io.Reader) *Session {
	ctx := scope.NewContext(programContextName)
	installGlobals(ctx)
	return &Session{r: newRunner(out, in), ctx: ctx}
}

// Eval lexes, parses, and evaluates one line (or block) of input
// against the session's persistent context.
func (s *Session) Eval(filename, text string) (object.Value, *source.Error) {
	tokens, err := lexer.New(filename, text).Tokenize()
	if err != nil {
		return nil, err
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	outcome := s.r.ev.Eval(program, s.ctx)
	if outcome.Error != nil {
		return nil, outcome.Error
	}
	return outcome.Value, nil
}

func (r *runner) run(filename, text string) (object.Value, *source.Error) {
	tokens, err := lexer.New(filename, text).Tokenize()
	if err != nil {
		return nil, err
	}

	program, err := parser.Parse(tokens)
	if err != nil {
		return nil, err
	}

	ctx := scope.NewContext(programContextName)
	installGlobals(ctx)

	outcome := r.ev.Eval(program, ctx)
	if outcome.Error != nil {
		return nil, outcome.Error
	}
	return outcome.Value, nil
}

// runIncluded implements eval.Evaluator.RunFile: it re-enters run with
// the same runner (so nested `run` calls share stdout/stdin) and wraps
// any failure as a single RuntimeError carrying the sub-script's full
// rendered diagnostic.
func (r *runner) runIncluded(filename, text string, callSpan source.Span) (object.Value, *source.Error) {
	value, err := r.run(filename, text)
	if err != nil {
		return nil, source.NewRuntimeError(callSpan,
			"Failed to finish executing script \""+filename+"\"\n"+err.Error())
	}
	return value, nil
}

// installGlobals binds every built-in and constant into ctx's table.
func installGlobals(ctx *scope.Context) {
	ctx.Table.Set("null", object.NewInt(0))
	ctx.Table.Set("false", object.NewInt(0))
	ctx.Table.Set("true", object.NewInt(1))
	ctx.Table.Set("math_pi", object.NewFloat(mathPi))

	for name := range builtin.Registry {
		ctx.Table.Set(name, object.NewBuiltinFunction(name))
	}
}

const mathPi = 3.14159265358979323846
