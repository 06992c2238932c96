package document_test

import (
	"reflect"
	"testing"

	"graft/pkg/document"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []string
		wantText  string
	}{
		{
			name: "empty",
			text: "",
		},
		{
			name:      "trailing newline round-trips",
			text:      "a\nb\n",
			wantLines: []string{"a", "b"},
			wantText:  "a\nb\n",
		},
		{
			name:      "missing final newline is normalized",
			text:      "a\nb",
			wantLines: []string{"a", "b"},
			wantText:  "a\nb\n",
		},
		{
			name:      "blank lines survive",
			text:      "a\n\nb\n",
			wantLines: []string{"a", "", "b"},
			wantText:  "a\n\nb\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := document.FromText(tt.text)
			if got := doc.Lines(); !reflect.DeepEqual(got, tt.wantLines) && !(len(got) == 0 && len(tt.wantLines) == 0) {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLines)
			}
			if got := doc.Text(); got != tt.wantText {
				t.Errorf("Text() = %q, want %q", got, tt.wantText)
			}
			if got := doc.Len(); got != len(tt.wantLines) {
				t.Errorf("Len() = %d, want %d", got, len(tt.wantLines))
			}
		})
	}
}

func TestFromLinesCopies(t *testing.T) {
	src := []string{"a", "b"}
	doc := document.FromLines(src)
	src[0] = "mutated"

	if doc.Line(0) != "a" {
		t.Errorf("document aliased its input slice: Line(0) = %q", doc.Line(0))
	}

	lines := doc.Lines()
	lines[1] = "mutated"
	if doc.Line(1) != "b" {
		t.Errorf("Lines() exposed internal storage: Line(1) = %q", doc.Line(1))
	}
}
