package document

import "strings"

// Document is an ordered sequence of text lines treated as a single value.
// Edits never mutate a Document in place; every transformation produces a new
// value, so a failed run can always restart from the untouched original.
type Document struct {
	lines []string
}

// FromText splits raw file content into a Document. A trailing newline does
// not produce a final empty line, matching how the content is re-emitted by
// Text.
func FromText(text string) Document {
	if text == "" {
		return Document{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return Document{lines: lines}
}

// FromLines builds a Document from a slice of lines. The slice is copied so
// later mutation of the argument cannot alias into the document.
func FromLines(lines []string) Document {
	out := make([]string, len(lines))
	copy(out, lines)
	return Document{lines: out}
}

// Len returns the number of lines in the document.
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the line at index i.
func (d Document) Line(i int) string {
	return d.lines[i]
}

// Lines returns a copy of all lines in order.
func (d Document) Lines() []string {
	out := make([]string, len(d.lines))
	copy(out, d.lines)
	return out
}

// Text joins the lines back into file content with a trailing newline.
// An empty document renders as the empty string.
func (d Document) Text() string {
	if len(d.lines) == 0 {
		return ""
	}
	return strings.Join(d.lines, "\n") + "\n"
}
