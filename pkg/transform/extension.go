package transform

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/matzehuels/dotmark/pkg/render"
)

// Extension registers the graph Transformer and the renderer for inline
// [Graph] nodes with a goldmark instance.
type Extension struct {
	transformer *Transformer
}

// NewExtension creates an Extension whose Transformer is built from opts.
func NewExtension(opts ...Option) *Extension {
	return &Extension{transformer: New(opts...)}
}

// Transformer returns the Transformer the extension registers.
func (e *Extension) Transformer() *Transformer { return e.transformer }

// Extend implements [goldmark.Extender].
func (e *Extension) Extend(md goldmark.Markdown) {
	md.Parser().AddOptions(
		parser.WithASTTransformers(
			util.Prioritized(e.transformer, 100),
		),
	)
	md.Renderer().AddOptions(
		renderer.WithNodeRenderers(
			util.Prioritized(&graphRenderer{}, 100),
		),
	)
}

// KindGraph is the NodeKind of [Graph].
var KindGraph = ast.NewNodeKind("Graph")

// Graph is a block holding rendered graph markup. It replaces a code block
// in inline mode.
type Graph struct {
	ast.BaseBlock
	Engine render.Engine
	Markup []byte
}

// NewGraph returns a Graph node carrying markup.
func NewGraph(engine render.Engine, markup string) *Graph {
	return &Graph{Engine: engine, Markup: []byte(markup)}
}

// Kind implements ast.Node.
func (n *Graph) Kind() ast.NodeKind { return KindGraph }

// IsRaw implements ast.Node.
func (n *Graph) IsRaw() bool { return true }

// Dump implements ast.Node.
func (n *Graph) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Engine": string(n.Engine),
		"Markup": string(n.Markup),
	}, nil)
}

// graphRenderer writes Graph markup verbatim, wrapped in a paragraph like
// the file-mode image.
type graphRenderer struct{}

func (r *graphRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindGraph, r.renderGraph)
}

func (r *graphRenderer) renderGraph(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*Graph)
	_, _ = w.WriteString("<p>")
	_, _ = w.Write(n.Markup)
	_, _ = w.WriteString("</p>\n")
	return ast.WalkSkipChildren, nil
}

var _ goldmark.Extender = (*Extension)(nil)
