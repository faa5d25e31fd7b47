package scope

import "github.com/ozen-lang/ozen/source"

// Context pairs a SymbolTable with the identifying information needed
// to render a traceback frame: a display name ("<program>" or a
// function's name) and, for every context but the root, the span of
// the call site in the enclosing context.
type Context struct {
	DisplayName     string
	Parent          *Context
	ParentEntrySpan source.Span
	Table           *SymbolTable
}

// NewContext builds the root context: no parent, a fresh table.
func NewContext(displayName string) *Context {
	return &Context{DisplayName: displayName, Table: NewSymbolTable(nil)}
}

// Child builds a nested context for a function call: its table's
// parent is the defining context's table (for lexical scoping), and
// entrySpan records where in the caller this call happened (for the
// traceback built if the call fails).
func (c *Context) Child(displayName string, entrySpan source.Span) *Context {
	return &Context{
		DisplayName:     displayName,
		Parent:          c,
		ParentEntrySpan: entrySpan,
		Table:           NewSymbolTable(c.Table),
	}
}

// Traceback walks from this context outward, producing one frame per
// enclosing call, innermost first, for source.Error.Trace.
func (c *Context) Traceback() []source.Frame {
	var frames []source.Frame
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		frames = append(frames, source.Frame{Pos: ctx.ParentEntrySpan.Start, DisplayName: ctx.DisplayName})
	}
	return frames
}
