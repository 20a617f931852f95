package render

import (
	"bytes"
	"context"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dotmark/pkg/cache"
	"github.com/matzehuels/dotmark/pkg/errors"
	"github.com/matzehuels/dotmark/pkg/observability"
)

// cacheKeyType labels layout cache events.
const cacheKeyType = "layout"

// layoutMu serializes access to go-graphviz, whose WebAssembly module is
// process-global.
var layoutMu sync.Mutex

// Renderer renders Graphviz source to SVG. The zero value is not usable;
// create one with [New]. A Renderer is safe for concurrent use.
type Renderer struct {
	key    string
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithKey overrides the HMAC key used by [Renderer.NameFor].
// An empty key is ignored.
func WithKey(key string) Option {
	return func(r *Renderer) {
		if key != "" {
			r.key = key
		}
	}
}

// WithCache sets the layout cache and the lifetime of new entries.
// A ttl <= 0 stores entries without expiry.
func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(r *Renderer) {
		if c != nil {
			r.cache = c
			r.ttl = ttl
		}
	}
}

// WithLogger sets the logger for render events (debug level).
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Renderer keyed with [PluginName], without caching and with
// logging discarded.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		key:    PluginName,
		cache:  cache.NewNullCache(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Key returns the HMAC key used for output names.
func (r *Renderer) Key() string { return r.key }

// NameFor returns the content-addressed file name for source.
func (r *Renderer) NameFor(source string) string {
	return NameFor(r.key, source)
}

// RenderSVG lays out source with engine and returns the SVG bytes.
//
// Invalid engines fail with INVALID_ENGINE. Graphviz failures fail with
// RENDER_FAILED and carry the Graphviz message as the cause.
func (r *Renderer) RenderSVG(ctx context.Context, source string, engine Engine) ([]byte, error) {
	if !engine.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidEngine, "unsupported engine %q", engine)
	}

	if !hasGraph(source) {
		return nil, errors.Wrap(errors.ErrCodeRender, errNoGraph, "render %s graph", engine)
	}

	key := cache.Hash(string(engine), source)
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Warn("layout cache read failed", "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		r.logger.Debug("layout cache hit", "engine", engine, "bytes", len(data))
		return data, nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)

	hooks := observability.Render()
	hooks.OnLayoutStart(ctx, string(engine))
	start := time.Now()
	svg, err := layout(ctx, source, engine)
	hooks.OnLayoutComplete(ctx, string(engine), len(svg), time.Since(start), err)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "render %s graph", engine)
	}
	r.logger.Debug("rendered graph", "engine", engine, "bytes", len(svg), "duration", time.Since(start))

	if err := r.cache.Set(ctx, key, svg, r.ttl); err != nil {
		r.logger.Warn("layout cache write failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(ctx, cacheKeyType, len(svg))
	}
	return svg, nil
}

// Render renders source and writes it to destinationDir/<NameFor(source)>,
// creating missing directories. It returns the link to the file relative to
// destinationDir: "./<name>.svg".
//
// Rendering the same source twice overwrites the file with identical bytes.
func (r *Renderer) Render(ctx context.Context, destinationDir, source string, engine Engine) (string, error) {
	svg, err := r.RenderSVG(ctx, source, engine)
	if err != nil {
		return "", err
	}

	name := r.NameFor(source)
	path := filepath.Join(destinationDir, name)
	err = writeFile(path, svg)
	observability.Render().OnWrite(ctx, path, len(svg), err)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeRender, err, "write %s", path)
	}
	r.logger.Debug("wrote graph", "path", path)

	return "./" + name, nil
}

// RenderInline renders source and returns an <img> tag embedding the SVG as
// a base64 data URI. Nothing is written to disk.
func (r *Renderer) RenderInline(ctx context.Context, source string, engine Engine) (string, error) {
	svg, err := r.RenderSVG(ctx, source, engine)
	if err != nil {
		return "", err
	}
	return inlineMarkup(svg, engine), nil
}

// errNoGraph is returned for sources holding no graph statement.
var errNoGraph = stderrors.New("no graph in source")

// engineError strips the trailing newline Graphviz puts on its messages.
func engineError(err error) error {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return errNoGraph
	}
	return stderrors.New(msg)
}

// layout runs Graphviz. The returned error is Graphviz's own message.
func layout(ctx context.Context, source string, engine Engine) ([]byte, error) {
	layoutMu.Lock()
	defer layoutMu.Unlock()

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(source))
	if err != nil {
		return nil, engineError(err)
	}
	if g == nil {
		return nil, errNoGraph
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.SetLayout(graphviz.Layout(engine)).Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, engineError(err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// writeFile writes data to path through a temporary file in the same
// directory, so parallel renders of the same source never expose a
// partially written image.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".graph-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func inlineMarkup(svg []byte, engine Engine) string {
	return fmt.Sprintf(`<img src="data:image/svg+xml;base64,%s" alt="%s graph">`,
		base64.StdEncoding.EncodeToString(svg), html.EscapeString(string(engine)))
}

var (
	defaultOnce     sync.Once
	defaultRenderer *Renderer
)

// Default returns the shared Renderer used by the package-level functions.
func Default() *Renderer {
	defaultOnce.Do(func() { defaultRenderer = New() })
	return defaultRenderer
}

// Render renders source with the default Renderer. See [Renderer.Render].
func Render(ctx context.Context, destinationDir, source string, engine Engine) (string, error) {
	return Default().Render(ctx, destinationDir, source, engine)
}

// RenderInline renders source with the default Renderer. See [Renderer.RenderInline].
func RenderInline(ctx context.Context, source string, engine Engine) (string, error) {
	return Default().RenderInline(ctx, source, engine)
}
