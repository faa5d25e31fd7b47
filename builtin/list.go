package builtin

import (
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func init() {
	register(&Builtin{Name: "append", Params: []string{"list", "value"}, Exec: execAppend})
	register(&Builtin{Name: "pop", Params: []string{"list", "index"}, Exec: execPop})
	register(&Builtin{Name: "extend", Params: []string{"listA", "listB"}, Exec: execExtend})
	register(&Builtin{Name: "length", Params: []string{"list"}, Exec: execLength})
}

// execAppend mutates list in place.
func execAppend(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	list, ok := arg(ctx, "list").(*object.List)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "First argument must be list")
	}
	list.Append(arg(ctx, "value"))
	return null(), nil
}

// execPop removes and returns the element at index, bounds checked.
func execPop(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	list, ok := arg(ctx, "list").(*object.List)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "First argument must be list")
	}
	index, ok := arg(ctx, "index").(*object.Number)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Second argument must be number")
	}
	value, err := list.Pop(int(index.Int64()))
	if err != nil {
		return nil, source.NewRuntimeError(callSpan,
			"Element at this index could not be removed from list because index is out of bounds")
	}
	return value, nil
}

// execExtend appends listB's elements onto listA in place.
func execExtend(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	listA, ok := arg(ctx, "listA").(*object.List)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "First argument must be list")
	}
	listB, ok := arg(ctx, "listB").(*object.List)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Second argument must be list")
	}
	listA.Extend(listB)
	return null(), nil
}

// execLength yields list's element count.
func execLength(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	list, ok := arg(ctx, "list").(*object.List)
	if !ok {
		return nil, source.NewRuntimeError(callSpan, "Argument must be list")
	}
	return object.NewInt(int64(len(list.Elements()))), nil
}
