package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozen-lang/ozen/source"
)

func spanAt(index int) source.Span {
	pos := source.Position{Index: index, Line: 0, Col: index, Filename: "<test>", Text: "1/0"}
	return source.NewSpan(pos)
}

// TestNumberDivByZeroSpanIsDivisorOnly checks that the caret for a
// division by zero lands under the divisor alone, not the combined
// dividend+divisor span.
func TestNumberDivByZeroSpanIsDivisorOnly(t *testing.T) {
	left := NewInt(1).WithSpan(spanAt(0)).(*Number)
	right := NewInt(0).WithSpan(spanAt(2)).(*Number)

	_, err := left.Div(right)
	require.NotNil(t, err)
	assert.Equal(t, right.Span(), err.Span)
}

func TestNumberModByZeroSpanIsDivisorOnly(t *testing.T) {
	left := NewInt(1).WithSpan(spanAt(0)).(*Number)
	right := NewInt(0).WithSpan(spanAt(2)).(*Number)

	_, err := left.Mod(right)
	require.NotNil(t, err)
	assert.Equal(t, right.Span(), err.Span)
}
