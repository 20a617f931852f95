package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dotmark/pkg/errors"
	"github.com/matzehuels/dotmark/pkg/render"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.False(t, cfg.Inline)
	require.Equal(t, render.PluginName, cfg.Key)
	require.Equal(t, BackendFile, cfg.Cache.Backend)
	require.Equal(t, DefaultTTL, cfg.Cache.TTL.Duration)
	require.GreaterOrEqual(t, cfg.Concurrency, 1)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
inline = true
destination = "build/graphs"
concurrency = 2
key = "docs"

[cache]
backend = "none"
ttl = "1h30m"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Inline)
	require.Equal(t, filepath.Join(dir, "build", "graphs"), cfg.Destination)
	require.Equal(t, 2, cfg.Concurrency)
	require.Equal(t, "docs", cfg.Key)
	require.Equal(t, BackendNone, cfg.Cache.Backend)
	require.Equal(t, 90*time.Minute, cfg.Cache.TTL.Duration)
}

func TestLoad_Partial(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "concurrency = 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, cfg.Concurrency)
	require.Equal(t, render.PluginName, cfg.Key)
	require.Equal(t, DefaultTTL, cfg.Cache.TTL.Duration)
}

func TestLoad_AbsoluteDestination(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "out")
	path := writeConfig(t, t.TempDir(), "destination = \""+filepath.ToSlash(abs)+"\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Clean(abs), filepath.Clean(cfg.Destination))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "inline = \n"},
		{"unknown key", "inlin = true\n"},
		{"unknown cache key", "[cache]\nbackend = \"file\"\nsize = 3\n"},
		{"bad ttl", "[cache]\nttl = \"forever\"\n"},
		{"zero concurrency", "concurrency = 0\n"},
		{"empty key", "key = \"\"\n"},
		{"unknown backend", "[cache]\nbackend = \"memcached\"\n"},
		{"redis without url", "[cache]\nbackend = \"redis\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), FileName))
	require.Error(t, err)
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "docs", "guide")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	if _, ok := Find(nested); ok {
		t.Fatal("Find() should not match before the file exists")
	}

	want := writeConfig(t, root, "")
	got, ok := Find(nested)
	require.True(t, ok)
	require.Equal(t, want, got)
}

func TestValidate_Redis(t *testing.T) {
	cfg := Default()
	cfg.Cache.Backend = BackendRedis
	cfg.Cache.RedisURL = "redis://localhost:6379/0"
	require.NoError(t, cfg.Validate())
}
