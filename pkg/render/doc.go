// Package render turns Graphviz source into SVG images.
//
// # Overview
//
// The [Renderer] wraps [github.com/goccy/go-graphviz], which runs Graphviz
// compiled to WebAssembly inside the process, so no system install of
// Graphviz is required. Two layout engines are supported:
//
//   - dot: hierarchical, the default for flow charts and dependency graphs
//   - circo: circular, for cyclic structures
//
// # Output Modes
//
// [Renderer.Render] writes the SVG into a destination directory and returns a
// relative link ("./<name>.svg"). [Renderer.RenderInline] returns an <img>
// tag with the SVG embedded as a base64 data URI and writes nothing.
//
//	r := render.New()
//	link, err := r.Render(ctx, "docs/img", src, render.EngineDot)
//	tag, err := r.RenderInline(ctx, src, render.EngineCirco)
//
// # Content-Addressed Names
//
// Output files are named by [NameFor]: the hex HMAC-SHA1 of the source text
// keyed with the plugin identifier ([PluginName] unless overridden with
// [WithKey]). Identical source always maps to the same file, so repeated
// builds overwrite files with identical bytes instead of accumulating them.
// The engine is deliberately not part of the name: a dot and a circo render
// of the same text share one file, and the last render wins.
//
// # Caching
//
// Graphviz layout is the expensive step. A [cache.Cache] passed with
// [WithCache] is consulted before every layout, keyed by engine and source.
// Files are still written on every [Renderer.Render] call.
//
// # Concurrency
//
// go-graphviz drives a single process-wide WebAssembly module, so layouts
// are serialized behind a package mutex. Cache lookups and file writes run
// concurrently.
//
// Layout, cache and write events are reported through the observability
// hooks.
//
// [cache.Cache]: github.com/matzehuels/dotmark/pkg/cache.Cache
package render
