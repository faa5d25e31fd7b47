package builtin

import (
	"strconv"

	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func init() {
	register(&Builtin{Name: "to_int", Params: []string{"value"}, Exec: execToInt})
	register(&Builtin{Name: "to_float", Params: []string{"value"}, Exec: execToFloat})
	register(&Builtin{Name: "to_string", Params: []string{"value"}, Exec: execToString})
	register(&Builtin{Name: "incr", Params: []string{"value"}, Exec: execIncr})
	register(&Builtin{Name: "decr", Params: []string{"value"}, Exec: execDecr})
}

// execToInt converts a Number or a numeric String to an integer
// Number; anything else is a RuntimeError.
func execToInt(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	switch v := arg(ctx, "value").(type) {
	case *object.Number:
		return object.NewInt(v.Int64()), nil
	case *object.String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, source.NewRuntimeError(callSpan, "Cannot convert to int")
		}
		return object.NewInt(n), nil
	default:
		return nil, source.NewRuntimeError(callSpan, "Cannot convert to int")
	}
}

// execToFloat converts a Number or a numeric String to a float Number.
func execToFloat(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	switch v := arg(ctx, "value").(type) {
	case *object.Number:
		return object.NewFloat(v.Float()), nil
	case *object.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, source.NewRuntimeError(callSpan, "Cannot convert to float")
		}
		return object.NewFloat(f), nil
	default:
		return nil, source.NewRuntimeError(callSpan, "Cannot convert to float")
	}
}

// execToString renders any value; every Value's String() is total, so
// this never fails.
func execToString(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	return object.NewString(arg(ctx, "value").String()), nil
}

func execIncr(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	n, ok := arg(ctx, "value").(*object.Number)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Argument must be a number")
	}
	result, err := n.Add(object.NewInt(1))
	return result, err
}

func execDecr(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	n, ok := arg(ctx, "value").(*object.Number)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Argument must be a number")
	}
	result, err := n.Sub(object.NewInt(1))
	return result, err
}
