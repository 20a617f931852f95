package render

import (
	"regexp"
	"testing"
)

var nameRe = regexp.MustCompile(`^[0-9a-f]{40}\.svg$`)

func TestNameFor(t *testing.T) {
	tests := []struct {
		name   string
		key    string
		source string
		want   string
	}{
		{"plugin key", PluginName, "digraph G { a -> b }", "59e090e79660f2677e2f9c3d86ce0367bb225526.svg"},
		{"custom key", "other-key", "digraph G { a -> b }", "63b2bc523d1a576eda81972e557935427b191043.svg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NameFor(tt.key, tt.source); got != tt.want {
				t.Errorf("NameFor(%q, %q) = %q, want %q", tt.key, tt.source, got, tt.want)
			}
		})
	}
}

func TestNameForDeterministic(t *testing.T) {
	sources := []string{"", "digraph { a }", "graph { a -- b -- c -- a }", "digraph { \"ü\" -> \"ß\" }"}

	seen := make(map[string]string)
	for _, src := range sources {
		n1 := NameFor(PluginName, src)
		n2 := NameFor(PluginName, src)
		if n1 != n2 {
			t.Errorf("NameFor(%q) not deterministic: %q != %q", src, n1, n2)
		}
		if !nameRe.MatchString(n1) {
			t.Errorf("NameFor(%q) = %q, want 40 hex chars + .svg", src, n1)
		}
		if prev, ok := seen[n1]; ok {
			t.Errorf("NameFor collision between %q and %q", prev, src)
		}
		seen[n1] = src
	}
}

func TestRendererNameFor(t *testing.T) {
	src := "digraph G { a -> b }"

	if got, want := New().NameFor(src), NameFor(PluginName, src); got != want {
		t.Errorf("default renderer NameFor = %q, want %q", got, want)
	}
	if got, want := New(WithKey("other-key")).NameFor(src), NameFor("other-key", src); got != want {
		t.Errorf("WithKey renderer NameFor = %q, want %q", got, want)
	}
	if got := New(WithKey("")).Key(); got != PluginName {
		t.Errorf("WithKey(\"\") should keep default key, got %q", got)
	}
}
