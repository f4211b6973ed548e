package debug

import (
	"testing"
)

func TestTreeWriter_Empty(t *testing.T) {
	tw := NewTreeWriter()
	if tw.String() != "" || len(tw.Bytes()) != 0 {
		t.Errorf("expected empty output, got %q", tw.String())
	}
}

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "dir", nil, "dir\n"},
		{"depth 1", 1, "files", nil, "  files\n"},
		{"depth 2", 2, "group", nil, "    group\n"},
		{"negative depth", -1, "root", nil, "root\n"},
		{"with formatting", 1, "%s: %d", []any{"groups", 3}, "  groups: 3\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_TextBlock(t *testing.T) {
	tests := []struct {
		name  string
		depth int
		label string
		value string
		want  string
	}{
		{"simple", 0, "selector", ".btn", "selector: \".btn\"\n"},
		{"empty value", 1, "selector", "", "  selector: \n"},
		{"newline", 1, "value", "a\nb", "  value: \"a\\nb\"\n"},
		{"unicode", 0, "file", "стиль.css", "file: \"стиль.css\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.TextBlock(tt.depth, tt.label, tt.value)
			if got := tw.String(); got != tt.want {
				t.Errorf("TextBlock() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_List(t *testing.T) {
	tw := NewTreeWriter()
	tw.List(1, "files", []string{"a.css", "sub/b.css"})
	tw.List(1, "skipped", nil)

	want := "  files (2)\n    \"a.css\"\n    \"sub/b.css\"\n  skipped (0)\n"
	if got := tw.String(); got != want {
		t.Errorf("List() =\n%s\nwant\n%s", got, want)
	}
}

func TestTreeWriter_Outline(t *testing.T) {
	tw := NewTreeWriter()
	tw.Line(0, "directory %s", "css")
	tw.List(1, "files", []string{"a.css", "b.css"})
	tw.Line(1, "group 1")
	tw.TextBlock(2, "selector", ".btn")
	tw.List(2, "properties", []string{"color: blue;"})

	want := `directory css
  files (2)
    "a.css"
    "b.css"
  group 1
    selector: ".btn"
    properties (1)
      "color: blue;"
`
	if got := string(tw.Bytes()); got != want {
		t.Errorf("outline =\n%s\nwant\n%s", got, want)
	}
}
