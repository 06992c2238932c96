// Package diffview renders a line-level preview of what a run would do to
// the origin document, for dry runs. It leans on diffmatchpatch's line-mode
// pipeline rather than a hand-rolled LCS.
package diffview

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are kept on each side of a change
// before the rest of an unchanged run is folded away.
const contextLines = 3

// Unified returns a unified-style rendering of the changes from oldText to
// newText: removed lines prefixed "-", added lines "+", context lines " ",
// with long unchanged runs folded into a "@@ n lines unchanged @@" marker.
func Unified(oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	dmp := diffmatchpatch.New()
	// Line-level reduction keeps the diff aligned to line boundaries.
	a, b, lineArray := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var sb strings.Builder
	for _, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			writeAll(&sb, "-", lines)
		case diffmatchpatch.DiffInsert:
			writeAll(&sb, "+", lines)
		case diffmatchpatch.DiffEqual:
			writeContext(&sb, lines)
		}
	}
	return sb.String()
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func writeAll(sb *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		sb.WriteString(prefix)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
}

// writeContext emits an unchanged run, folding its middle when it is longer
// than twice the context window.
func writeContext(sb *strings.Builder, lines []string) {
	if len(lines) <= 2*contextLines+1 {
		writeAll(sb, " ", lines)
		return
	}
	writeAll(sb, " ", lines[:contextLines])
	fmt.Fprintf(sb, "@@ %d lines unchanged @@\n", len(lines)-2*contextLines)
	writeAll(sb, " ", lines[len(lines)-contextLines:])
}
