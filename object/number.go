package object

import (
	"math"
	"strconv"

	"github.com/ozen-lang/ozen/source"
)

// Number holds either an integer or a float. Division always promotes
// to float; addition/subtraction/multiplication stay integral when both
// operands are integers.
type Number struct {
	base
	isFloat bool
	i       int64
	f       float64
}

// NewInt creates an integer Number.
//
// Parameters:
//   - v: the integer value to wrap
//
// Returns:
//   - *Number: a Number holding v as an int
func NewInt(v int64) *Number { return &Number{i: v} }

// NewFloat creates a float Number.
//
// Parameters:
//   - v: the float value to wrap
//
// Returns:
//   - *Number: a Number holding v as a float
func NewFloat(v float64) *Number { return &Number{isFloat: true, f: v} }

func (n *Number) Type() Type { return NumberType }

// Float returns the Number's value as a float64 regardless of whether
// it's stored as an int or a float — used by the for-loop evaluator to
// step its counter without reaching into Number's private fields.
//
// Returns:
//   - float64: the numeric value, widened from int64 when necessary
func (n *Number) Float() float64 { return n.float() }

// Int64 returns the Number's value truncated toward zero as an int64,
// used by the to_int built-in.
//
// Returns:
//   - int64: the stored int, or the stored float with its fractional
//     part discarded
func (n *Number) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.i
}

// IsFloat reports whether the Number is stored as a float rather than
// an int, used by the for-loop evaluator to decide whether its counter
// is bound as an int or a float.
func (n *Number) IsFloat() bool { return n.isFloat }

func (n *Number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n *Number) String() string {
	if n.isFloat {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return strconv.FormatInt(n.i, 10)
}

func (n *Number) WithSpan(span source.Span) Value {
	c := *n
	c.span = span
	return &c
}

func (n *Number) Copy() Value {
	c := *n
	return &c
}

func (n *Number) IsTrue() bool {
	if n.isFloat {
		return n.f != 0
	}
	return n.i != 0
}

func asNumber(v Value) (*Number, bool) {
	n, ok := v.(*Number)
	return n, ok
}

func (n *Number) Add(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if !n.isFloat && !o.isFloat {
		return NewInt(n.i + o.i), nil
	}
	return NewFloat(n.float() + o.float()), nil
}

func (n *Number) Sub(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if !n.isFloat && !o.isFloat {
		return NewInt(n.i - o.i), nil
	}
	return NewFloat(n.float() - o.float()), nil
}

func (n *Number) Mul(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if !n.isFloat && !o.isFloat {
		return NewInt(n.i * o.i), nil
	}
	return NewFloat(n.float() * o.float()), nil
}

func (n *Number) Div(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if o.float() == 0 {
		return nil, source.NewRuntimeError(o.Span(), "Division by zero")
	}
	return NewFloat(n.float() / o.float()), nil
}

func (n *Number) Pow(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if !n.isFloat && !o.isFloat && o.i >= 0 {
		return NewInt(int64(math.Pow(float64(n.i), float64(o.i)))), nil
	}
	return NewFloat(math.Pow(n.float(), o.float())), nil
}

func (n *Number) Mod(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	if o.float() == 0 {
		return nil, source.NewRuntimeError(o.Span(), "Division by zero")
	}
	if !n.isFloat && !o.isFloat {
		return NewInt(n.i % o.i), nil
	}
	return NewFloat(math.Mod(n.float(), o.float())), nil
}

func boolNumber(v bool) *Number {
	if v {
		return NewInt(1)
	}
	return NewInt(0)
}

func (n *Number) Eq(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() == o.float()), nil
}

func (n *Number) Neq(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() != o.float()), nil
}

func (n *Number) Lt(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() < o.float()), nil
}

func (n *Number) Gt(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() > o.float()), nil
}

func (n *Number) Lte(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() <= o.float()), nil
}

func (n *Number) Gte(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.float() >= o.float()), nil
}

// And/Or implement plain boolean logic (0/1 result) on operands that
// were both already evaluated; there is no short-circuiting anywhere in
// the language.
func (n *Number) And(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.IsTrue() && o.IsTrue()), nil
}

func (n *Number) Or(other Value) (Value, *source.Error) {
	o, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(n, other)
	}
	return boolNumber(n.IsTrue() || o.IsTrue()), nil
}

func (n *Number) Not() (Value, *source.Error) {
	return boolNumber(!n.IsTrue()), nil
}
