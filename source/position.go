// Package source tracks where in a script's text things happened, and
// renders that location back to a human as a caret under the offending
// line. Everything downstream — tokens, AST nodes, runtime values, and
// diagnostics — carries a Span built from the types here.
package source

// Position names one byte offset inside a source file: its index, the
// 0-indexed line and column it falls on, and the file it came from. The
// full source text travels with the position so that diagnostics can be
// rendered without threading a separate text parameter through every
// error path.
type Position struct {
	Index    int
	Line     int
	Col      int
	Filename string
	Text     string
}

// NewPosition returns the position just before the first byte of text —
// the starting point a Lexer advances from exactly once before reading
// its first character.
func NewPosition(filename, text string) Position {
	return Position{Index: -1, Line: 0, Col: -1, Filename: filename, Text: text}
}

// Advance moves the position one byte forward. current is the byte the
// lexer just consumed (0 if none yet); when it is '\n' the line counter
// increments and the column resets.
func (p Position) Advance(current byte) Position {
	p.Index++
	p.Col++
	if current == '\n' {
		p.Line++
		p.Col = 0
	}
	return p
}

// Span is a contiguous slice of source text: everything from Start up to
// (but not including) End. Every token and AST node carries one.
type Span struct {
	Start Position
	End   Position
}

// NewSpan builds a span covering a single advance past start — the shape
// every single-character token's span takes.
func NewSpan(start Position) Span {
	return Span{Start: start, End: start.Advance(0)}
}

// Cover widens a span to enclose another, taking the earlier Start and the
// later End. AST node spans are built by covering their constituents.
func (s Span) Cover(other Span) Span {
	start := s.Start
	if other.Start.Index < start.Index {
		start = other.Start
	}
	end := s.End
	if other.End.Index > end.Index {
		end = other.End
	}
	return Span{Start: start, End: end}
}
