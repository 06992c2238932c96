package requalify_test

import (
	"reflect"
	"testing"

	"graft/internal/requalify"
	"graft/pkg/document"
)

func TestRewriteMembers(t *testing.T) {
	table := requalify.NewTable("state", []string{"count", "mode"}, "", nil)

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "every bare occurrence is qualified",
			line: "count = count + 1;",
			want: "state.count = state.count + 1;",
		},
		{
			name: "substring of a longer identifier is untouched",
			line: "counter = discount;",
			want: "counter = discount;",
		},
		{
			name: "already qualified occurrence is skipped",
			line: "state.count = other.count;",
			want: "state.count = other.count;",
		},
		{
			name: "multiple symbols on one line",
			line: "if (mode == 2) count++;",
			want: "if (state.mode == 2) state.count++;",
		},
		{
			name: "no occurrences",
			line: "return nothing;",
			want: "return nothing;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.FromLines([]string{tt.line})
			got, _ := requalify.Rewrite(doc, table)
			if got.Line(0) != tt.want {
				t.Errorf("Rewrite() = %q, want %q", got.Line(0), tt.want)
			}
		})
	}
}

func TestRewriteScopes(t *testing.T) {
	table := requalify.NewTable("panel", nil, "CanvasPanel", []string{"Tool"})

	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "scoped reference gains the owner scope",
			line: "tool = Tool::Paint;",
			want: "tool = CanvasPanel::Tool::Paint;",
		},
		{
			name: "already nested scope is skipped",
			line: "tool = CanvasPanel::Tool::Paint;",
			want: "tool = CanvasPanel::Tool::Paint;",
		},
		{
			name: "scope token inside a longer identifier is untouched",
			line: "currentTool = 1;",
			want: "currentTool = 1;",
		},
		{
			name: "bare scope token without a join is untouched",
			line: "Tool tool;",
			want: "Tool tool;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.FromLines([]string{tt.line})
			got, _ := requalify.Rewrite(doc, table)
			if got.Line(0) != tt.want {
				t.Errorf("Rewrite() = %q, want %q", got.Line(0), tt.want)
			}
		})
	}
}

// Rewriting is idempotent: running the pass over its own output is a no-op.
func TestRewriteIdempotent(t *testing.T) {
	table := requalify.NewTable("m_canvasPanel", []string{"currentTool", "isPainting"}, "CanvasPanel", []string{"Tool"})
	doc := document.FromLines([]string{
		"currentTool = Tool::Paint;",
		"if (isPainting && currentTool == Tool::Erase) {",
		"    stop();",
		"}",
	})

	once, _ := requalify.Rewrite(doc, table)
	twice, _ := requalify.Rewrite(once, table)

	if !reflect.DeepEqual(twice.Lines(), once.Lines()) {
		t.Errorf("Rewrite() not idempotent:\nonce  %v\ntwice %v", once.Lines(), twice.Lines())
	}
}

func TestRewriteCounts(t *testing.T) {
	table := requalify.NewTable("state", []string{"count", "ghost"}, "", nil)
	doc := document.FromLines([]string{
		"count = count + 1;",
		"other line;",
	})

	_, counts := requalify.Rewrite(doc, table)
	want := map[string]int{"count": 2, "ghost": 0}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("Rewrite() counts = %v, want %v", counts, want)
	}
}

func TestEmptyTable(t *testing.T) {
	table := requalify.NewTable("", nil, "", nil)
	if !table.Empty() {
		t.Error("NewTable with no symbols should be empty")
	}

	doc := document.FromLines([]string{"count = 1;"})
	got, counts := requalify.Rewrite(doc, table)
	if got.Line(0) != "count = 1;" {
		t.Errorf("Rewrite() with empty table changed %q", got.Line(0))
	}
	if len(counts) != 0 {
		t.Errorf("Rewrite() with empty table produced counts %v", counts)
	}
}
