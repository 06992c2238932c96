package scan

import (
	"errors"
	"fmt"
	"strings"

	"graft/pkg/document"
	"graft/pkg/span"
)

// DefaultWindow is the scan window applied when a target does not configure
// its own. Large enough for any function body we have met in practice.
const DefaultWindow = 2000

// ErrNotFound is returned when a signature line cannot be matched or a
// balanced block end is not found within the scan window.
var ErrNotFound = errors.New("block boundary not found")

// Scanner finds the line extent of a brace-delimited block. It is an
// interface so that a lexer-aware implementation (one that skips braces
// inside string literals and comments) can replace the raw counter without
// touching the editing or rewriting stages.
type Scanner interface {
	FindBlock(doc document.Document, fromLine, maxWindow int) (span.Span, error)
}

// BraceScanner counts braces on raw text. Braces embedded in string literals
// or comments are counted like any other, which can skew the balance; that is
// a known limitation of this implementation, not of the Scanner contract.
type BraceScanner struct{}

// FindBlock scans forward from fromLine keeping a running brace balance,
// seeded at zero. The scan succeeds at the first line where an opening brace
// has been seen and the balance returns to exactly zero; the span ends on the
// line after that. Scanning more than maxWindow lines without closing the
// block yields ErrNotFound.
func (BraceScanner) FindBlock(doc document.Document, fromLine, maxWindow int) (span.Span, error) {
	if fromLine < 0 || fromLine >= doc.Len() {
		return span.Span{}, fmt.Errorf("%w: start line %d outside document of %d lines", ErrNotFound, fromLine, doc.Len())
	}
	if maxWindow <= 0 {
		maxWindow = DefaultWindow
	}

	balance := 0
	opened := false
	limit := fromLine + maxWindow
	if limit > doc.Len() {
		limit = doc.Len()
	}

	for i := fromLine; i < limit; i++ {
		line := doc.Line(i)
		if opens := strings.Count(line, "{"); opens > 0 {
			opened = true
			balance += opens
		}
		balance -= strings.Count(line, "}")
		if opened && balance == 0 {
			return span.Span{Start: fromLine, End: i + 1}, nil
		}
	}

	return span.Span{}, fmt.Errorf("%w: no balanced close within %d lines of line %d", ErrNotFound, maxWindow, fromLine)
}

// LocateSignature returns the index of the first line at or after fromLine
// that contains marker as a substring. The marker is the textual rule that
// recognizes a block's signature line, e.g. "bool UI::DetectEdgeHover(".
func LocateSignature(doc document.Document, marker string, fromLine int) (int, error) {
	if marker == "" {
		return 0, fmt.Errorf("%w: empty signature marker", ErrNotFound)
	}
	if fromLine < 0 {
		fromLine = 0
	}
	for i := fromLine; i < doc.Len(); i++ {
		if strings.Contains(doc.Line(i), marker) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: signature %q not present", ErrNotFound, marker)
}
