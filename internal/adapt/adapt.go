package adapt

import "strings"

// DeferAnnotation prefixes lines that the defer rule has commented out.
// The annotation is deliberately loud: a deferred call must be reconnected by
// hand during integration, never silently dropped.
const DeferAnnotation = "// TODO: reconnect deferred call: "

// Rule is one textual adaptation applied to extracted lines before they are
// emitted into the destination document. With Defer false the rule replaces
// every occurrence of Match on a line with With. With Defer true the rule
// instead comments out any line containing Match, keeping its indentation and
// original text behind DeferAnnotation.
type Rule struct {
	Match string // Literal substring that triggers the rule
	With  string // Replacement text (ignored for defer rules)
	Defer bool   // Comment the whole line out instead of substituting
}

// Apply runs every rule, in order, over every line and returns the adapted
// lines. The input slice is not modified. Once a defer rule fires on a line,
// later rules are skipped for that line so they cannot rewrite the
// annotation.
func Apply(lines []string, rules []Rule) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		for _, r := range rules {
			if !strings.Contains(line, r.Match) {
				continue
			}
			if r.Defer {
				line = deferLine(line)
				break
			}
			line = strings.ReplaceAll(line, r.Match, r.With)
		}
		out[i] = line
	}
	return out
}

// deferLine comments a line out in place, preserving its indentation.
func deferLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]
	return indent + DeferAnnotation + trimmed
}

// Count reports how many lines each rule would touch, keyed by the rule's
// Match text. Zero counts are legitimate (the rule simply had nothing to do)
// and are surfaced for logging only.
func Count(lines []string, rules []Rule) map[string]int {
	counts := make(map[string]int, len(rules))
	for _, r := range rules {
		counts[r.Match] = 0
	}
	for _, line := range lines {
		for _, r := range rules {
			if strings.Contains(line, r.Match) {
				counts[r.Match]++
			}
		}
	}
	return counts
}
