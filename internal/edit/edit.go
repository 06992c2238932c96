package edit

import (
	"fmt"

	"graft/pkg/document"
	"graft/pkg/span"
)

// Extract returns the exact lines [sp.Start, sp.End), unmodified and in
// original order. The document is not changed; pairing Extract with ExciseAll
// over the same spans partitions the document without losing a line.
func Extract(doc document.Document, sp span.Span) ([]string, error) {
	if sp.Start < 0 || sp.End > doc.Len() || sp.Start >= sp.End {
		return nil, fmt.Errorf("span %s out of range for document of %d lines", sp, doc.Len())
	}
	out := make([]string, 0, sp.Size())
	for i := sp.Start; i < sp.End; i++ {
		out = append(out, doc.Line(i))
	}
	return out, nil
}

// ExciseAll deletes every span in the set from the document and returns the
// shortened document. Spans are applied in descending start order: deleting
// the highest span first means the indices of every remaining span are still
// valid. Applying them in any other order would corrupt the document, so the
// ordering comes from the validated set rather than from the caller.
func ExciseAll(doc document.Document, set span.Set) (document.Document, error) {
	lines := doc.Lines()
	for _, sp := range set.Descending() {
		if sp.Start < 0 || sp.End > len(lines) {
			return document.Document{}, fmt.Errorf("span %s out of range for document of %d lines", sp, len(lines))
		}
		lines = append(lines[:sp.Start], lines[sp.End:]...)
	}
	return document.FromLines(lines), nil
}
