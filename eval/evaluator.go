package eval

import (
	"bufio"
	"io"
	"strings"

	"github.com/ozen-lang/ozen/ast"
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

// Evaluator owns the ambient facilities a built-in's Go implementation
// reaches for: where print/user_in/num_user_in read and write, and how
// the `run` built-in re-enters evaluation for an included script.
// Threading these explicitly keeps two interpreters in one process
// from sharing stdio through package-level state.
type Evaluator struct {
	Out io.Writer
	in  *bufio.Reader

	// RunFile executes an included script's text for the `run`
	// built-in, returning any failure already wrapped as a "Failed to
	// finish executing script" RuntimeError. Installed by the root
	// package after the Evaluator is constructed, since the root
	// package is what imports eval (not the other way around) to build
	// Run's global context.
	RunFile func(filename, text string, callSpan source.Span) (object.Value, *source.Error)
}

// NewEvaluator builds an Evaluator whose print/user_in/num_user_in
// built-ins read from in and write to out.
func NewEvaluator(out io.Writer, in io.Reader) *Evaluator {
	return &Evaluator{Out: out, in: bufio.NewReader(in)}
}

// Print implements builtin.Runtime.
func (e *Evaluator) Print(s string) { io.WriteString(e.Out, s) }

// ReadLine implements builtin.Runtime, reading one newline-terminated
// line (trimmed of its line ending) from the evaluator's input stream.
// A final line with no trailing newline is still returned.
func (e *Evaluator) ReadLine() (string, error) {
	line, err := e.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

// Run implements builtin.Runtime.
func (e *Evaluator) Run(filename, text string, callSpan source.Span) (object.Value, *source.Error) {
	if e.RunFile == nil {
		return nil, source.NewRuntimeError(callSpan, "script inclusion is not available in this context")
	}
	return e.RunFile(filename, text, callSpan)
}

// Eval dispatches node to its concrete eval_* handler and attaches a
// traceback to the first RuntimeError it sees bubble past it: the
// innermost Eval call on the path to the failure is the one whose
// context names the function the error actually happened in, so only
// that call sets Trace; every enclosing call sees it already set and
// leaves it alone.
func (e *Evaluator) Eval(node ast.Node, ctx *scope.Context) *Outcome {
	outcome := e.dispatch(node, ctx)
	if outcome.Error != nil && outcome.Error.Kind == source.Runtime && outcome.Error.Trace == nil {
		outcome.Error.Trace = ctx.Traceback()
	}
	return outcome
}

func (e *Evaluator) dispatch(node ast.Node, ctx *scope.Context) *Outcome {
	switch n := node.(type) {
	case *ast.NumberNode:
		return e.evalNumber(n, ctx)
	case *ast.StringNode:
		return e.evalString(n, ctx)
	case *ast.ListNode:
		return e.evalList(n, ctx)
	case *ast.VarAccessNode:
		return e.evalVarAccess(n, ctx)
	case *ast.VarAssignNode:
		return e.evalVarAssign(n, ctx)
	case *ast.BinOpNode:
		return e.evalBinOp(n, ctx)
	case *ast.UnaryOpNode:
		return e.evalUnaryOp(n, ctx)
	case *ast.IfNode:
		return e.evalIf(n, ctx)
	case *ast.ForNode:
		return e.evalFor(n, ctx)
	case *ast.WhileNode:
		return e.evalWhile(n, ctx)
	case *ast.FuncDefNode:
		return e.evalFuncDef(n, ctx)
	case *ast.CallNode:
		return e.evalCall(n, ctx)
	case *ast.ReturnNode:
		return e.evalReturn(n, ctx)
	case *ast.ContinueNode:
		return SuccessContinue()
	case *ast.BreakNode:
		return SuccessBreak()
	default:
		return Failure(source.NewRuntimeError(node.Span(), "Cannot evaluate this node"))
	}
}
