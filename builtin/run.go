package builtin

import (
	"os"

	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func init() {
	register(&Builtin{Name: "run", Params: []string{"fn"}, Exec: execRun})
}

// execRun loads and executes an included script: a read failure is wrapped as "Failed to load script", and an
// execution failure is wrapped (by Runtime.Run) as "Failed to finish
// executing script" carrying the sub-script's full rendered diagnostic.
func execRun(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	fn, ok := arg(ctx, "fn").(*object.String)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Argument must be string")
	}

	text, err := os.ReadFile(fn.Value)
	if err != nil {
		return nil, source.NewRuntimeError(callSpan, "Failed to load script \""+fn.Value+"\"\n"+err.Error())
	}

	if _, rerr := rt.Run(fn.Value, string(text), callSpan); rerr != nil {
		return nil, rerr
	}
	return null(), nil
}
