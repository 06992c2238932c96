package adapt_test

import (
	"reflect"
	"testing"

	"graft/internal/adapt"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		rules []adapt.Rule
		want  []string
	}{
		{
			name:  "no rules leaves lines alone",
			lines: []string{"void UI::Render() {", "}"},
			rules: nil,
			want:  []string{"void UI::Render() {", "}"},
		},
		{
			name:  "literal substitution",
			lines: []string{"void UI::RenderCanvasPanel() {", "}"},
			rules: []adapt.Rule{
				{Match: "void UI::RenderCanvasPanel", With: "void CanvasPanel::Render"},
			},
			want: []string{"void CanvasPanel::Render() {", "}"},
		},
		{
			name:  "substitution fires on every occurrence in a line",
			lines: []string{"static int x; static int y;"},
			rules: []adapt.Rule{
				{Match: "static ", With: ""},
			},
			want: []string{"int x; int y;"},
		},
		{
			name:  "rules apply in order",
			lines: []string{"alpha"},
			rules: []adapt.Rule{
				{Match: "alpha", With: "beta"},
				{Match: "beta", With: "gamma"},
			},
			want: []string{"gamma"},
		},
		{
			name:  "defer comments the line out with indentation kept",
			lines: []string{"        ShowToast(\"saved\");"},
			rules: []adapt.Rule{
				{Match: "ShowToast(", Defer: true},
			},
			want: []string{"        " + adapt.DeferAnnotation + "ShowToast(\"saved\");"},
		},
		{
			name:  "defer stops later rules on that line",
			lines: []string{"  ShowToast(msg);"},
			rules: []adapt.Rule{
				{Match: "ShowToast(", Defer: true},
				{Match: "msg", With: "message"},
			},
			want: []string{"  " + adapt.DeferAnnotation + "ShowToast(msg);"},
		},
		{
			name:  "rule without a match is a no-op",
			lines: []string{"int x;"},
			rules: []adapt.Rule{
				{Match: "ShowToast(", Defer: true},
				{Match: "never", With: "ever"},
			},
			want: []string{"int x;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adapt.Apply(tt.lines, tt.rules)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	lines := []string{"static int x;"}
	adapt.Apply(lines, []adapt.Rule{{Match: "static ", With: ""}})
	if lines[0] != "static int x;" {
		t.Errorf("Apply() mutated its input: %q", lines[0])
	}
}

func TestCount(t *testing.T) {
	lines := []string{
		"ShowToast(a);",
		"int x;",
		"ShowToast(b);",
	}
	rules := []adapt.Rule{
		{Match: "ShowToast(", Defer: true},
		{Match: "never", With: "ever"},
	}

	got := adapt.Count(lines, rules)
	want := map[string]int{"ShowToast(": 2, "never": 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Count() = %v, want %v", got, want)
	}
}
