package source

import "strings"

// Underline renders the source lines spanned by start..end with a row of
// '^' characters beneath the offending columns on every covered line: it
// finds the line containing start, walks forward one line at a time until
// end's line is covered, and on each line clamps the caret run to that
// line's own width.
//
// Tabs count as one column each while locating the caret, and are
// stripped from the rendered text only after the caret run has been
// computed, so an unindented line reads cleanly even though the column
// math behind it treated tabs as single characters.
func Underline(text string, start, end Position) string {
	var b strings.Builder

	lineStart := strings.LastIndexByte(text[:start.Index], '\n') + 1
	lineEnd := indexFrom(text, '\n', lineStart+1)

	lineCount := end.Line - start.Line + 1
	for i := 0; i < lineCount; i++ {
		line := text[lineStart:lineEnd]

		colStart := 0
		if i == 0 {
			colStart = start.Col
		}
		colEnd := len(line) - 1
		if i == lineCount-1 {
			colEnd = end.Col
		}
		if colEnd < colStart {
			colEnd = colStart
		}

		b.WriteString(line)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat(" ", colStart))
		b.WriteString(strings.Repeat("^", colEnd-colStart))
		if i < lineCount-1 {
			b.WriteByte('\n')
		}

		lineStart = lineEnd
		lineEnd = indexFrom(text, '\n', lineStart+1)
	}

	return strings.ReplaceAll(b.String(), "\t", "")
}

// indexFrom finds the next occurrence of b in s at or after from,
// returning len(s) (not -1) when none remains, so callers can slice to
// end-of-line without a sentinel check.
func indexFrom(s string, b byte, from int) int {
	if from > len(s) {
		from = len(s)
	}
	if from < 0 {
		from = 0
	}
	idx := strings.IndexByte(s[from:], b)
	if idx < 0 {
		return len(s)
	}
	return from + idx
}
