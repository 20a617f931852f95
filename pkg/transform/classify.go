package transform

import (
	"net/url"

	"github.com/yuin/goldmark/ast"

	"github.com/matzehuels/dotmark/pkg/document"
	"github.com/matzehuels/dotmark/pkg/render"
)

// Marker is the link/image title that marks a reference to a graph file.
const Marker = "dot:"

// Kind tells which category of node a Target came from.
type Kind int

const (
	KindCodeBlock Kind = iota + 1
	KindLink
	KindImage
)

func (k Kind) String() string {
	switch k {
	case KindCodeBlock:
		return "code block"
	case KindLink:
		return "link"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// Target is a node eligible for graph rendering. It is either a
// [*CodeBlock] or a [*Reference].
type Target interface {
	Kind() Kind
	Pos() document.Position
	target()
}

// CodeBlock is a fenced code block holding graph source.
type CodeBlock struct {
	Node     *ast.FencedCodeBlock
	Engine   render.Engine
	Source   string
	Position document.Position
}

func (*CodeBlock) Kind() Kind               { return KindCodeBlock }
func (c *CodeBlock) Pos() document.Position { return c.Position }
func (*CodeBlock) target()                  {}

// Reference is a link or image pointing at a graph source file. References
// always render with the dot engine.
type Reference struct {
	Node ast.Node
	// URL is the destination as written, percent-decoded.
	URL      string
	Position document.Position

	kind Kind
	dest *[]byte
}

func (r *Reference) Kind() Kind             { return r.kind }
func (r *Reference) Pos() document.Position { return r.Position }
func (*Reference) target()                  {}

// SetURL overwrites the destination of the underlying node. No other field
// of the node changes.
func (r *Reference) SetURL(u string) {
	*r.dest = []byte(u)
}

// Classify dispatches n to the classifier for its node type.
func Classify(n ast.Node, source []byte) (Target, bool) {
	switch n := n.(type) {
	case *ast.FencedCodeBlock:
		if t, ok := ClassifyCodeBlock(n, source); ok {
			return t, true
		}
	case *ast.Link:
		if t, ok := ClassifyLink(n, source); ok {
			return t, true
		}
	case *ast.Image:
		if t, ok := ClassifyImage(n, source); ok {
			return t, true
		}
	}
	return nil, false
}

// ClassifyCodeBlock reports whether n is a fenced code block whose language
// is a supported engine, and extracts its source.
func ClassifyCodeBlock(n *ast.FencedCodeBlock, source []byte) (*CodeBlock, bool) {
	engine := render.Engine(n.Language(source))
	if !engine.Valid() {
		return nil, false
	}

	offset := n.Pos()
	if offset < 0 && n.Lines().Len() > 0 {
		offset = n.Lines().At(0).Start
	}

	return &CodeBlock{
		Node:     n,
		Engine:   engine,
		Source:   string(n.Lines().Value(source)),
		Position: document.PositionAt(source, offset),
	}, true
}

// ClassifyLink reports whether n is a link titled [Marker].
func ClassifyLink(n *ast.Link, source []byte) (*Reference, bool) {
	if string(n.Title) != Marker {
		return nil, false
	}
	return newReference(KindLink, n, &n.Destination, source), true
}

// ClassifyImage reports whether n is an image titled [Marker].
func ClassifyImage(n *ast.Image, source []byte) (*Reference, bool) {
	if string(n.Title) != Marker {
		return nil, false
	}
	return newReference(KindImage, n, &n.Destination, source), true
}

func newReference(kind Kind, n ast.Node, dest *[]byte, source []byte) *Reference {
	raw := string(*dest)
	u, err := url.PathUnescape(raw)
	if err != nil {
		u = raw
	}
	return &Reference{
		Node:     n,
		URL:      u,
		Position: document.PositionAt(source, n.Pos()),
		kind:     kind,
		dest:     dest,
	}
}
