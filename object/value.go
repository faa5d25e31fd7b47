// Package object defines Ozen's runtime values — Number, String, List,
// UserFunction, BuiltinFunction — and the per-pair-of-types operator
// dispatch between them.
package object

import "github.com/ozen-lang/ozen/source"

// Type tags a Value's runtime kind, used by is_num/is_string/is_list/
// is_func and by error messages.
type Type int

const (
	NumberType Type = iota
	StringType
	ListType
	UserFunctionType
	BuiltinFunctionType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "number"
	case StringType:
		return "string"
	case ListType:
		return "list"
	case UserFunctionType:
		return "function"
	case BuiltinFunctionType:
		return "function"
	default:
		return "value"
	}
}

// Value is any Ozen runtime value. It couples the identity surface
// every value carries (type tag, string form, span, copying) with the
// full binary/unary operator set:
//   - arithmetic: Add, Sub, Mul, Div, Pow, Mod
//   - comparison: Eq, Neq, Lt, Gt, Lte, Gte (yielding 0/1 Numbers)
//   - boolean: And, Or, Not (yielding 0/1 Numbers)
//
// Every operator returns an error instead of panicking; unsupported
// combinations yield an "Illegal operation" RuntimeError.
type Value interface {
	Type() Type
	String() string
	Span() source.Span
	WithSpan(span source.Span) Value
	IsTrue() bool
	Copy() Value

	Add(Value) (Value, *source.Error)
	Sub(Value) (Value, *source.Error)
	Mul(Value) (Value, *source.Error)
	Div(Value) (Value, *source.Error)
	Pow(Value) (Value, *source.Error)
	Mod(Value) (Value, *source.Error)
	Eq(Value) (Value, *source.Error)
	Neq(Value) (Value, *source.Error)
	Lt(Value) (Value, *source.Error)
	Gt(Value) (Value, *source.Error)
	Lte(Value) (Value, *source.Error)
	Gte(Value) (Value, *source.Error)
	And(Value) (Value, *source.Error)
	Or(Value) (Value, *source.Error)
	Not() (Value, *source.Error)
}

// base supplies the "unsupported" default for every operator, so each
// concrete Value only overrides what it actually handles.
type base struct {
	span source.Span
}

func (b base) Span() source.Span { return b.span }
func (b base) IsTrue() bool      { return false }

type spanner interface {
	Span() source.Span
}

func illegalOp(self spanner, other spanner) *source.Error {
	span := self.Span()
	if other != nil {
		span = span.Cover(other.Span())
	}
	return source.NewRuntimeError(span, "Illegal operation")
}

func (b base) Add(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Sub(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Mul(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Div(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Pow(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Mod(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Eq(other Value) (Value, *source.Error)  { return nil, illegalOp(b, other) }
func (b base) Neq(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Lt(other Value) (Value, *source.Error)  { return nil, illegalOp(b, other) }
func (b base) Gt(other Value) (Value, *source.Error)  { return nil, illegalOp(b, other) }
func (b base) Lte(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Gte(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) And(other Value) (Value, *source.Error) { return nil, illegalOp(b, other) }
func (b base) Or(other Value) (Value, *source.Error)  { return nil, illegalOp(b, other) }
func (b base) Not() (Value, *source.Error)            { return nil, illegalOp(b, nil) }
