package builtin

import (
	"github.com/ozen-lang/ozen/object"
	"github.com/ozen-lang/ozen/scope"
	"github.com/ozen-lang/ozen/source"
)

func init() {
	register(&Builtin{Name: "is_num", Params: []string{"value"}, Exec: isType(object.NumberType)})
	register(&Builtin{Name: "is_string", Params: []string{"value"}, Exec: isType(object.StringType)})
	register(&Builtin{Name: "is_list", Params: []string{"value"}, Exec: isType(object.ListType)})
	register(&Builtin{Name: "is_func", Params: []string{"value"}, Exec: execIsFunc})
}

// isType builds an is_num/is_string/is_list execution that checks a
// single, fixed Type tag.
func isType(t object.Type) func(Runtime, *scope.Context, source.Span) (object.Value, *source.Error) {
	return func(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
		return boolValue(arg(ctx, "value").Type() == t), nil
	}
}

// execIsFunc matches either function tag, user-defined or built-in.
func execIsFunc(rt Runtime, ctx *scope.Context, callSpan source.Span) (object.Value, *source.Error) {
	t := arg(ctx, "value").Type()
	return boolValue(t == object.UserFunctionType || t == object.BuiltinFunctionType), nil
}
