package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
	}{
		{
			name:     "heading gets an anchor id",
			input:    "## Indexing Basics",
			contains: []string{`<h2 id="indexing-basics">Indexing Basics</h2>`},
		},
		{
			name:     "gfm table",
			input:    "| a | b |\n|---|---|\n| 1 | 2 |",
			contains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:     "raw html passes through",
			input:    `<div class="callout">Heads up</div>`,
			contains: []string{`<div class="callout">Heads up</div>`},
		},
		{
			name:     "fenced code is highlighted",
			input:    "```go\nfunc main() {}\n```",
			contains: []string{"<pre", "func"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.input)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
		})
	}
}

func TestReadTime(t *testing.T) {
	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"empty", 0, "1 min read"},
		{"short", 10, "1 min read"},
		{"exactly one minute", 200, "1 min read"},
		{"rounds up", 201, "2 min read"},
		{"long", 1000, "5 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat("word ", tt.words))
			if got := ReadTime(content); got != tt.want {
				t.Errorf("ReadTime(%d words) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}
