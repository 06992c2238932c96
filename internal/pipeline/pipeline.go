// Package pipeline composes one transplant run as a chain of pure transforms
// over document values: scan every target, validate the spans, extract and
// adapt the blocks, excise the origin, then requalify the references the
// excision left dangling. Nothing touches the filesystem here; the caller
// reads the origin once and writes the two results once, so a failed run can
// never leave a half-mutated document behind.
package pipeline

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"graft/internal/adapt"
	"graft/internal/edit"
	"graft/internal/plan"
	"graft/internal/requalify"
	"graft/internal/scan"
	"graft/pkg/document"
	"graft/pkg/span"
)

// Block is one transplanted block: its resolved span in the origin snapshot
// and its adapted lines as they will appear in the destination.
type Block struct {
	Name  string
	Span  span.Span
	Lines []string
}

// Result carries everything a run produces. Origin is the excised and
// requalified origin document; Destination is the assembled new document.
type Result struct {
	Origin      document.Document
	Destination document.Document
	Blocks      []Block
	OriginalLen int
}

// Resolve scans the origin for every target and returns the spans in target
// order together with the validated set. Any unmatched signature, exhausted
// window, or span overlap aborts the whole run before any editing happens.
func Resolve(origin document.Document, p *plan.Plan, sc scan.Scanner) ([]span.Span, span.Set, error) {
	spans := make([]span.Span, 0, len(p.Targets))
	for _, t := range p.Targets {
		line, err := scan.LocateSignature(origin, t.Signature, 0)
		if err != nil {
			return nil, span.Set{}, fmt.Errorf("target %q: %w", t.Name, err)
		}
		sp, err := sc.FindBlock(origin, line, t.Window)
		if err != nil {
			return nil, span.Set{}, fmt.Errorf("target %q: %w", t.Name, err)
		}
		sp.Name = t.Name
		spans = append(spans, sp)
	}

	set, err := span.NewSet(spans...)
	if err != nil {
		return nil, span.Set{}, err
	}
	return spans, set, nil
}

// Run executes the full transplant over an in-memory origin document.
func Run(origin document.Document, p *plan.Plan, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	spans, set, err := Resolve(origin, p, scan.BraceScanner{})
	if err != nil {
		return nil, err
	}
	for _, sp := range spans {
		logger.Info("resolved block",
			zap.String("name", sp.Name),
			zap.Int("start", sp.Start),
			zap.Int("end", sp.End),
			zap.Int("lines", sp.Size()))
	}

	rules := adaptRules(p.Rules)
	blocks := make([]Block, 0, len(spans))
	for _, sp := range spans {
		lines, err := edit.Extract(origin, sp)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", sp.Name, err)
		}
		for marker, n := range adapt.Count(lines, rules) {
			if n == 0 {
				logger.Debug("adaptation rule matched nothing in block",
					zap.String("block", sp.Name),
					zap.String("match", marker))
			}
		}
		blocks = append(blocks, Block{Name: sp.Name, Span: sp, Lines: adapt.Apply(lines, rules)})
	}

	excised, err := edit.ExciseAll(origin, set)
	if err != nil {
		return nil, err
	}

	table := requalify.NewTable(p.Renames.Qualifier, p.Renames.Members, p.Renames.ScopeQualifier, p.Renames.Scopes)
	rewritten := excised
	if !table.Empty() {
		var counts map[string]int
		rewritten, counts = requalify.Rewrite(excised, table)
		for sym, n := range counts {
			if n == 0 {
				logger.Debug("no occurrences to requalify", zap.String("symbol", sym))
			}
		}
	}

	logger.Info("origin excised",
		zap.Int("original_lines", origin.Len()),
		zap.Int("remaining_lines", rewritten.Len()),
		zap.Int("removed_lines", set.TotalLines()))

	return &Result{
		Origin:      rewritten,
		Destination: assemble(p, blocks),
		Blocks:      blocks,
		OriginalLen: origin.Len(),
	}, nil
}

// assemble builds the destination document: header, each adapted block under
// a banner comment, footer.
func assemble(p *plan.Plan, blocks []Block) document.Document {
	banner := "// " + strings.Repeat("=", 76)

	var lines []string
	lines = append(lines, p.Header...)
	for _, b := range blocks {
		lines = append(lines, "", banner, "// "+b.Name, banner, "")
		lines = append(lines, b.Lines...)
	}
	if len(p.Footer) > 0 {
		lines = append(lines, "")
		lines = append(lines, p.Footer...)
	}
	return document.FromLines(lines)
}

func adaptRules(rules []plan.Rule) []adapt.Rule {
	out := make([]adapt.Rule, len(rules))
	for i, r := range rules {
		out[i] = adapt.Rule{Match: r.Match, With: r.With, Defer: r.Defer}
	}
	return out
}
