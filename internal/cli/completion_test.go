package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func complete(t *testing.T, args ...string) []string {
	t.Helper()
	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs(append([]string{"__complete"}, args...))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	require.NoError(t, root.ExecuteContext(context.Background()))
	return strings.Split(strings.TrimSpace(out.String()), "\n")
}

func TestCompletion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"graph engine", []string{"graph", "-e", ""}, []string{"dot", "circo", ":4"}},
		{"graph files", []string{"graph", ""}, []string{"dot", "gv", ":8"}},
		{"render files", []string{"render", ""}, []string{"md", "markdown", ":8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, complete(t, tt.args...))
		})
	}
}

func TestCompletionCommand(t *testing.T) {
	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"completion", "bash"})
	root.SetOut(&out)

	require.NoError(t, root.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "__start_dotmark")
}
