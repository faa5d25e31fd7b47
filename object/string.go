package object

import (
	"strings"

	"github.com/ozen-lang/ozen/source"
)

// String is an Ozen text value.
//
// Fields:
//   - Value: the wrapped text
type String struct {
	base
	Value string // Wrapped text
}

// NewString creates a String wrapping v.
//
// Parameters:
//   - v: the text to wrap
//
// Returns:
//   - *String: a String holding v
func NewString(v string) *String { return &String{Value: v} }

func (s *String) Type() Type { return StringType }
func (s *String) String() string { return s.Value }

func (s *String) WithSpan(span source.Span) Value {
	c := *s
	c.span = span
	return &c
}

func (s *String) Copy() Value {
	c := *s
	return &c
}

func (s *String) IsTrue() bool { return len(s.Value) > 0 }

func (s *String) Add(other Value) (Value, *source.Error) {
	o, ok := other.(*String)
	if !ok {
		return nil, illegalOp(s, other)
	}
	return NewString(s.Value + o.Value), nil
}

// Mul implements `String * Number` replication: "ab" * 3 is "ababab".
// A negative count yields the empty string.
//
// Parameters:
//   - other: the replication count, which must be a Number
//
// Returns:
//   - Value: the replicated String
//   - *source.Error: an Illegal operation error for non-Number operands
func (s *String) Mul(other Value) (Value, *source.Error) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(s, other)
	}
	count := int(n.float())
	if count < 0 {
		count = 0
	}
	return NewString(strings.Repeat(s.Value, count)), nil
}
