// Package pkg provides the core libraries for dotmark, which renders Graphviz
// graphs embedded in markdown.
//
// # Overview
//
// dotmark walks a parsed markdown document and replaces graph references
// with SVG images:
//
//   - Fenced code blocks whose language is dot or circo are rendered and
//     replaced by an image (or inline <img> markup).
//   - Links and images titled "dot:" that point at a graph file are pointed
//     at the rendered SVG instead.
//
// Output files are content addressed: the name is the hex HMAC-SHA1 of the
// graph source, so unchanged graphs keep their file names across builds.
//
// # Architecture
//
//	markdown source
//	         ↓
//	    goldmark parser (document tree)
//	         ↓
//	    [transform] package (classify + rewrite nodes)
//	         ↓
//	    [render] package (Graphviz layout, naming, SVG files)
//	         ↓
//	    HTML + SVG files + per-document diagnostics ([document])
//
// # Quick Start
//
// Register the extension with goldmark:
//
//	import (
//	    "github.com/yuin/goldmark"
//	    "github.com/yuin/goldmark/parser"
//	    "github.com/matzehuels/dotmark/pkg/document"
//	    "github.com/matzehuels/dotmark/pkg/transform"
//	)
//
//	md := goldmark.New(goldmark.WithExtensions(transform.NewExtension()))
//	src, f, _ := document.Read("docs/guide.md")
//	_ = md.Convert(src, &buf, parser.WithContext(document.WithFile(nil, f)))
//	for _, m := range f.Messages {
//	    fmt.Println(m)
//	}
//
// # Main Packages
//
// [transform] - Classifies document nodes and rewrites graph nodes in place.
// Also provides the goldmark extension.
//
// [render] - Graphviz rendering through go-graphviz (WebAssembly, no system
// install needed), output naming and inline markup.
//
// [document] - Per-document state: path, destination override, diagnostics.
//
// ## Infrastructure
//
// [cache] - Layout cache backends (null, file, Redis) keyed by engine and
// source.
//
// [config] - dotmark.toml loading.
//
// [errors] - Coded errors shared by all packages.
//
// [observability] - Hooks for render and cache events.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./...                  # All tests
//	go test ./pkg/transform/...    # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [transform]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/transform
// [render]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/render
// [document]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/document
// [cache]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dotmark/pkg/buildinfo
package pkg
