package object

import (
	"strings"

	"github.com/ozen-lang/ozen/source"
)

// List holds an ordered sequence of Values behind a shared pointer, so
// that Copy (used by every mutating builtin and by `+`/`-`/`*`'s "new
// handle over same elements" results) returns a handle whose mutations
// stay visible through every other handle over the same list.
type List struct {
	base
	elements *[]Value
}

// NewList creates a List owning its own backing slice.
//
// Parameters:
//   - elements: the initial elements; the slice is adopted, not copied
//
// Returns:
//   - *List: a new list handle over a fresh backing store
func NewList(elements []Value) *List {
	backing := elements
	return &List{elements: &backing}
}

func (l *List) Type() Type { return ListType }

// Elements returns the list's current backing slice.
//
// Returns:
//   - []Value: the shared element storage; mutating it is visible
//     through every handle over this list
func (l *List) Elements() []Value { return *l.elements }

func (l *List) String() string {
	parts := make([]string, len(*l.elements))
	for i, e := range *l.elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func (l *List) WithSpan(span source.Span) Value {
	c := *l
	c.span = span
	return &c
}

// Copy returns a new handle sharing this list's backing storage —
// deliberately not a deep copy, so mutations through either handle are
// visible through both.
func (l *List) Copy() Value {
	c := *l
	return &c
}

func (l *List) IsTrue() bool { return true }

// Append adds value to the end of the list in place, visible through
// every handle over this list.
//
// Parameters:
//   - value: the element to add
func (l *List) Append(value Value) {
	*l.elements = append(*l.elements, value)
}

// Pop removes and returns the element at index, or a bounds error. A
// negative index counts back from the end of the list, so Pop(-1)
// removes the last element.
//
// Parameters:
//   - index: position of the element to remove (negative counts from
//     the end)
//
// Returns:
//   - Value: the removed element
//   - *source.Error: a RuntimeError when index is out of bounds
func (l *List) Pop(index int) (Value, *source.Error) {
	elems := *l.elements
	if index < 0 {
		index += len(elems)
	}
	if index < 0 || index >= len(elems) {
		return nil, source.NewRuntimeError(l.Span(), "Index element is out of bounds")
	}
	v := elems[index]
	*l.elements = append(elems[:index], elems[index+1:]...)
	return v, nil
}

// Extend appends other's elements to this list in place.
//
// Parameters:
//   - other: the list whose elements are appended; other itself is
//     left untouched
func (l *List) Extend(other *List) {
	*l.elements = append(*l.elements, *other.elements...)
}

func (l *List) Add(other Value) (Value, *source.Error) {
	newList := l.Copy().(*List)
	newList.Append(other)
	return newList, nil
}

// Sub implements `List - Number` index removal, delegating to Pop (a
// negative index therefore counts back from the end).
//
// Parameters:
//   - other: the index to remove, which must be a Number
//
// Returns:
//   - Value: a new handle over the same, now shortened, storage
//   - *source.Error: a bounds error, or Illegal operation for
//     non-Number operands
func (l *List) Sub(other Value) (Value, *source.Error) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(l, other)
	}
	newList := l.Copy().(*List)
	if _, err := newList.Pop(int(n.float())); err != nil {
		return nil, source.NewRuntimeError(other.Span(), "Index element is out of bounds")
	}
	return newList, nil
}

func (l *List) Mul(other Value) (Value, *source.Error) {
	o, ok := other.(*List)
	if !ok {
		return nil, illegalOp(l, other)
	}
	newList := l.Copy().(*List)
	newList.Extend(o)
	return newList, nil
}

// Div implements `List / Number` indexing. A negative index counts
// back from the end of the list.
//
// Parameters:
//   - other: the index to read, which must be a Number
//
// Returns:
//   - Value: the element at that index
//   - *source.Error: a bounds error, or Illegal operation for
//     non-Number operands
func (l *List) Div(other Value) (Value, *source.Error) {
	n, ok := asNumber(other)
	if !ok {
		return nil, illegalOp(l, other)
	}
	idx := int(n.float())
	elems := *l.elements
	if idx < 0 {
		idx += len(elems)
	}
	if idx < 0 || idx >= len(elems) {
		return nil, source.NewRuntimeError(other.Span(), "Index element is out of bounds")
	}
	return elems[idx], nil
}
