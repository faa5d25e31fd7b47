package source

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePosition(text string) Position {
	return NewPosition("script.oz", text).Advance(text[0])
}

func TestErrorRendersKindAndDetails(t *testing.T) {
	text := "let x = @\n"
	pos := samplePosition(text)
	err := NewError(IllegalChar, NewSpan(pos), "Illegal character '@'")

	rendered := err.Error()
	assert.Contains(t, rendered, "Illegal Character: Illegal character '@'")
	assert.Contains(t, rendered, "File script.oz, line 1")
}

func TestRuntimeErrorIncludesTraceback(t *testing.T) {
	text := "square(2)\n"
	innerPos := samplePosition(text)
	outerPos := innerPos.Advance('\n')

	err := NewRuntimeError(NewSpan(innerPos), "Division by zero")
	err.Trace = []Frame{{Pos: outerPos, DisplayName: "<program>"}}

	rendered := err.Error()
	assert.True(t, strings.HasPrefix(rendered, "Traceback (most recent call last):\n"))
	assert.Contains(t, rendered, "in <program>")
	assert.Contains(t, rendered, "Runtime Error: Division by zero")
}

func TestKindStringNames(t *testing.T) {
	assert.Equal(t, "Illegal Character", IllegalChar.String())
	assert.Equal(t, "Expected Character", ExpectedChar.String())
	assert.Equal(t, "Invalid Syntax", InvalidSyntax.String())
	assert.Equal(t, "Runtime Error", Runtime.String())
}

func TestSpanCoverWidensToEnclose(t *testing.T) {
	text := "abc\n"
	start := samplePosition(text)
	mid := start.Advance('b')
	end := mid.Advance('c')

	a := Span{Start: start, End: mid}
	b := Span{Start: mid, End: end}

	covered := a.Cover(b)
	assert.Equal(t, start.Index, covered.Start.Index)
	assert.Equal(t, end.Index, covered.End.Index)
}
