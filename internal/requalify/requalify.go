package requalify

import (
	"regexp"
	"sort"

	"graft/pkg/document"
)

// Table maps bare symbol names to their qualified replacement form.
// Members are state symbols that moved onto an owning value and are rewritten
// through a member access ("count" -> "state.count"). Scopes are scoped-type
// tokens that moved into a nested scope and are rewritten through a scope
// join ("Tool::" -> "CanvasPanel::Tool::"). Keys are unique within each map.
type Table struct {
	Members map[string]string
	Scopes  map[string]string
}

// NewTable derives a Table from a qualifier and the lists of relocated
// symbols. memberQualifier joins with "." and scopeQualifier with "::".
func NewTable(memberQualifier string, members []string, scopeQualifier string, scopes []string) Table {
	t := Table{
		Members: make(map[string]string, len(members)),
		Scopes:  make(map[string]string, len(scopes)),
	}
	for _, m := range members {
		t.Members[m] = memberQualifier + "." + m
	}
	for _, s := range scopes {
		t.Scopes[s] = scopeQualifier + "::" + s
	}
	return t
}

// Empty reports whether the table holds no renames at all.
func (t Table) Empty() bool {
	return len(t.Members) == 0 && len(t.Scopes) == 0
}

type matcher struct {
	symbol string
	repl   string
	re     *regexp.Regexp
	scoped bool
}

// Rewrite replaces every whole-word occurrence of each table symbol with its
// qualified form and returns the new document plus a per-symbol replacement
// count. Occurrences already behind a member access (preceded by ".") or a
// scope join (preceded by "::") are left alone, which makes the rewrite
// idempotent: running it again over its own output changes nothing.
//
// Matching happens on raw text, so a symbol inside a string literal or a
// comment is rewritten like any live reference. That imprecision is inherited
// from the scanning approach and accepted here rather than hidden.
func Rewrite(doc document.Document, t Table) (document.Document, map[string]int) {
	matchers := compile(t)
	counts := make(map[string]int, len(matchers))
	for _, m := range matchers {
		counts[m.symbol] = 0
	}

	lines := doc.Lines()
	for i, line := range lines {
		for _, m := range matchers {
			var n int
			line, n = m.apply(line)
			counts[m.symbol] += n
		}
		lines[i] = line
	}
	return document.FromLines(lines), counts
}

// compile builds the matcher list in a stable order: scope renames first
// (mirroring the order the substitutions were always applied in), then member
// renames, each sorted by symbol name so repeated runs substitute in the same
// sequence.
func compile(t Table) []matcher {
	matchers := make([]matcher, 0, len(t.Scopes)+len(t.Members))
	for _, sym := range sortedKeys(t.Scopes) {
		matchers = append(matchers, matcher{
			symbol: sym,
			repl:   t.Scopes[sym] + "::",
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(sym) + `::`),
			scoped: true,
		})
	}
	for _, sym := range sortedKeys(t.Members) {
		matchers = append(matchers, matcher{
			symbol: sym,
			repl:   t.Members[sym],
			re:     regexp.MustCompile(`\b` + regexp.QuoteMeta(sym) + `\b`),
		})
	}
	return matchers
}

// apply rewrites one line, skipping already-qualified occurrences, and
// returns the new line with the number of replacements made.
func (m matcher) apply(line string) (string, int) {
	idxs := m.re.FindAllStringIndex(line, -1)
	if len(idxs) == 0 {
		return line, 0
	}

	var out []byte
	prev := 0
	n := 0
	for _, idx := range idxs {
		start, end := idx[0], idx[1]
		if m.qualified(line, start) {
			continue
		}
		out = append(out, line[prev:start]...)
		out = append(out, m.repl...)
		prev = end
		n++
	}
	if n == 0 {
		return line, 0
	}
	out = append(out, line[prev:]...)
	return string(out), n
}

// qualified reports whether the match starting at start already sits behind
// its qualifier: a member access "." for member symbols, a scope join "::"
// for scoped symbols.
func (m matcher) qualified(line string, start int) bool {
	if m.scoped {
		return start >= 2 && line[start-2:start] == "::"
	}
	return start >= 1 && line[start-1] == '.'
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
