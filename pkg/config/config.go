// Package config loads dotmark.toml project configuration.
//
// A configuration file is optional. [Find] walks up from a directory looking
// for [FileName]; [Load] decodes it on top of [Default], so a file only needs
// to name the settings it changes:
//
//	inline = false
//	destination = "build/graphs"
//	concurrency = 4
//	key = "remark-graphviz"
//
//	[cache]
//	backend = "file"   # none | file | redis
//	dir = ""
//	redis_url = ""
//	ttl = "168h"
//
// Command-line flags override file values.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotmark/pkg/errors"
	"github.com/matzehuels/dotmark/pkg/render"
)

// FileName is the configuration file looked up by [Find].
const FileName = "dotmark.toml"

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// DefaultTTL is how long cached layouts are kept.
const DefaultTTL = 7 * 24 * time.Hour

// Config is the decoded configuration.
type Config struct {
	// Inline embeds code block graphs as data URIs instead of files.
	Inline bool `toml:"inline"`

	// Destination overrides the directory rendered images are written to.
	// Relative paths are resolved against the configuration file.
	Destination string `toml:"destination"`

	// Concurrency bounds how many documents are processed at once.
	Concurrency int `toml:"concurrency"`

	// Key is the HMAC key for output file names.
	Key string `toml:"key"`

	Cache Cache `toml:"cache"`
}

// Cache configures the layout cache.
type Cache struct {
	Backend  string   `toml:"backend"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`
}

// Duration is a time.Duration decoded from strings like "168h".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Concurrency: runtime.NumCPU(),
		Key:         render.PluginName,
		Cache: Cache{
			Backend: BackendFile,
			TTL:     Duration{DefaultTTL},
		},
	}
}

// Load reads the file at path on top of [Default] and validates the result.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	base := filepath.Dir(path)
	if cfg.Destination != "" && !filepath.IsAbs(cfg.Destination) {
		cfg.Destination = filepath.Join(base, cfg.Destination)
	}
	if cfg.Cache.Dir != "" && !filepath.IsAbs(cfg.Cache.Dir) {
		cfg.Cache.Dir = filepath.Join(base, cfg.Cache.Dir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Find searches dir and its parents for [FileName]. It returns the path of
// the first match.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, FileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Concurrency < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must be at least 1, got %d", c.Concurrency)
	}
	if c.Key == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "key must not be empty")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	switch c.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if c.Cache.RedisURL == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q requires redis_url", BackendRedis)
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want %s, %s or %s)",
			c.Cache.Backend, BackendNone, BackendFile, BackendRedis)
	}
	return nil
}
