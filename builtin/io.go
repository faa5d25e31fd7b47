package builtin

import (
	"strconv"

	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func init() {
	register(&Builtin{Name: "print", Params: []string{"value"}, Exec: execPrint})
	register(&Builtin{Name: "return_print", Params: []string{"value"}, Exec: execReturnPrint})
	register(&Builtin{Name: "user_in", Params: nil, Exec: execUserIn})
	register(&Builtin{Name: "num_user_in", Params: nil, Exec: execNumUserIn})
	register(&Builtin{Name: "clear", Params: nil, Exec: execClear})
	register(&Builtin{Name: "cls", Params: nil, Exec: execClear})
}

// execPrint writes value's string form followed by a newline.
func execPrint(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	rt.Print(arg(ctx, "value").String() + "\n")
	return null(), nil
}

// execReturnPrint yields value's string form without writing it.
func execReturnPrint(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	return object.NewString(arg(ctx, "value").String()), nil
}

// execUserIn reads one line of input.
func execUserIn(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	line, err := rt.ReadLine()
	if err != nil {
		return nil, source.NewRuntimeError(callSpan, "Failed to read input\n"+err.Error())
	}
	return object.NewString(line), nil
}

// execNumUserIn re-prompts on every line that doesn't parse as an
// integer, looping until one does.
func execNumUserIn(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	for {
		line, err := rt.ReadLine()
		if err != nil {
			return nil, source.NewRuntimeError(callSpan, "Failed to read input\n"+err.Error())
		}
		n, convErr := strconv.ParseInt(line, 10, 64)
		if convErr == nil {
			return object.NewInt(n), nil
		}
		rt.Print("'" + line + "' must be an integer. Try again!\n")
	}
}

// execClear is a best-effort NOP: the embedding host may be writing to
// a buffer or a TCP connection, where there is no terminal to clear.
func execClear(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	return null(), nil
}
