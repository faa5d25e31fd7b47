package source

import (
	"fmt"
	"strings"
)

// Kind distinguishes the four diagnostic categories Ozen reports. The
// set is closed: nothing else can go wrong before or during evaluation.
type Kind int

const (
	IllegalChar Kind = iota
	ExpectedChar
	InvalidSyntax
	Runtime
)

// String names a Kind for rendering, e.g. "Illegal Character".
func (k Kind) String() string {
	switch k {
	case IllegalChar:
		return "Illegal Character"
	case ExpectedChar:
		return "Expected Character"
	case InvalidSyntax:
		return "Invalid Syntax"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// Frame is one call-stack entry in a Runtime error's traceback: the
// position active in that frame, and the display name of the context the
// position was reached in (e.g. "<program>" or a function's name).
type Frame struct {
	Pos         Position
	DisplayName string
}

// Error is the single diagnostic type threaded through lexing, parsing,
// and evaluation. Lexer/parser errors carry Kind IllegalChar,
// ExpectedChar, or InvalidSyntax and an empty Trace; runtime failures
// carry Kind Runtime and a Trace that the evaluator fills in once, from
// the context chain active where the failure happened.
type Error struct {
	Kind    Kind
	Span    Span
	Details string
	Trace   []Frame
}

// NewError builds a lexer/parser diagnostic (IllegalChar, ExpectedChar,
// or InvalidSyntax) — never Runtime, which carries a traceback and is
// built via NewRuntimeError instead.
func NewError(kind Kind, span Span, details string) *Error {
	return &Error{Kind: kind, Span: span, Details: details}
}

// NewRuntimeError builds a Runtime error anchored at span, with no
// traceback frames yet. The evaluator sets Trace from
// scope.Context.Traceback the first time the error passes through it.
func NewRuntimeError(span Span, details string) *Error {
	return &Error{Kind: Runtime, Span: span, Details: details}
}

// Error renders the diagnostic: a traceback (Runtime errors only), the
// error name and details, the file/line header, and the caret-annotated
// source line(s).
func (e *Error) Error() string {
	var b strings.Builder

	if e.Kind == Runtime {
		b.WriteString(renderTraceback(e.Span.Start, e.Trace))
	}

	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Details)
	fmt.Fprintf(&b, "File %s, line %d", e.Span.Start.Filename, e.Span.Start.Line+1)
	b.WriteString("\n\n")
	b.WriteString(Underline(e.Span.Start.Text, e.Span.Start, e.Span.End))

	return b.String()
}

// renderTraceback renders a Runtime error's call chain, most recent call
// last: one "File ..., line ..., in <display name>" line per frame,
// oldest frame first.
func renderTraceback(pos Position, trace []Frame) string {
	var b strings.Builder
	b.WriteString("Traceback (most recent call last):\n")

	lines := make([]string, 0, len(trace)+1)
	p := pos
	for _, frame := range trace {
		lines = append(lines, fmt.Sprintf("  File %s, line %d, in %s", p.Filename, p.Line+1, frame.DisplayName))
		p = frame.Pos
	}
	for i := len(lines) - 1; i >= 0; i-- {
		b.WriteString(lines[i])
		b.WriteByte('\n')
	}
	return b.String()
}
