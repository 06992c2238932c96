package span

import (
	"fmt"
	"sort"
)

// Span is a half-open line range [Start, End) within one document snapshot.
// End is exclusive and always points at the line after the closing brace of
// the block the span describes.
type Span struct {
	Name  string // Declared name of the block, used for diagnostics
	Start int    // First line of the block (inclusive)
	End   int    // Line after the last line of the block (exclusive)
}

// Size returns the number of lines covered by the span.
func (s Span) Size() int {
	return s.End - s.Start
}

// Overlaps reports whether two spans share at least one line.
// Adjacent spans ([2,5) and [5,8)) do not overlap.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// String returns a compact "name [start,end)" form for error messages.
func (s Span) String() string {
	return fmt.Sprintf("%s [%d,%d)", s.Name, s.Start, s.End)
}

// OverlapError reports two spans in the same set that cover a common line.
// Overlapping spans always indicate a caller defect (two block scans resolved
// to intersecting ranges), so the set refuses to merge or pick a winner.
type OverlapError struct {
	A, B Span
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("overlapping spans: %s and %s", e.A, e.B)
}

// Set is a validated collection of pairwise non-overlapping spans slated for
// batch extraction or removal from a single document snapshot.
type Set struct {
	spans []Span
}

// NewSet validates the given spans and returns them as a Set.
// Every span must satisfy Start >= 0 and Start < End, and no two spans may
// overlap; insertion order is irrelevant.
func NewSet(spans ...Span) (Set, error) {
	for _, s := range spans {
		if s.Start < 0 || s.Start >= s.End {
			return Set{}, fmt.Errorf("invalid span %s: start must satisfy 0 <= start < end", s)
		}
	}

	ordered := make([]Span, len(spans))
	copy(ordered, spans)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	// After the descending sort only neighbors can overlap.
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Overlaps(ordered[i-1]) {
			return Set{}, &OverlapError{A: ordered[i], B: ordered[i-1]}
		}
	}

	return Set{spans: ordered}, nil
}

// Descending returns the spans ordered by descending Start.
// Removal must walk this order so that deleting one span never shifts the
// line indices of the spans still to be deleted.
func (s Set) Descending() []Span {
	out := make([]Span, len(s.spans))
	copy(out, s.spans)
	return out
}

// Ascending returns the spans ordered by ascending Start, the original
// document order. Extraction and reporting use this order.
func (s Set) Ascending() []Span {
	out := s.Descending()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Len returns the number of spans in the set.
func (s Set) Len() int {
	return len(s.spans)
}

// TotalLines returns the summed size of all spans in the set.
func (s Set) TotalLines() int {
	total := 0
	for _, sp := range s.spans {
		total += sp.Size()
	}
	return total
}
