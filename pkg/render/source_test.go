package render

import "testing"

func TestHasGraph(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   bool
	}{
		{"empty", "", false},
		{"whitespace", "  \n\t\n", false},
		{"line comment", "// nothing here\n", false},
		{"block comment", "/* a\n b */\n", false},
		{"preprocessor line", "# 1 \"graph.dot\"\n", false},
		{"mixed comments", "// a\n/* b */ # not at line start\n", true},
		{"graph", "digraph { a -> b }", true},
		{"graph after comment", "/* header */\ngraph { a }", true},
		{"invalid text", "not valid DOT {{{", true},
		{"unterminated comment", "/* open", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasGraph(tt.source); got != tt.want {
				t.Errorf("hasGraph(%q) = %v, want %v", tt.source, got, tt.want)
			}
		})
	}
}
