package transform

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/matzehuels/dotmark/pkg/document"
	"github.com/matzehuels/dotmark/pkg/errors"
	"github.com/matzehuels/dotmark/pkg/render"
)

// Diagnostic texts for successful rewrites.
const (
	msgCodeBlockReplaced = "%s code block replaced with graph"
	msgCodeBlockInlined  = "%s code block replaced with inline graph"
	msgLinkReplaced      = "dot link replaced with link to graph"
)

// ImageTitle is the title given to images that replace code blocks.
const ImageTitle = "`dot` image"

// Transformer rewrites graph nodes in a goldmark tree. It implements
// [parser.ASTTransformer]; use [NewExtension] to register it with goldmark.
//
// A Transformer holds no per-document state and may be shared by
// goroutines processing different documents.
type Transformer struct {
	renderer *render.Renderer
	inline   bool
	origin   string
	logger   *log.Logger
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithInline makes code blocks render to embedded <img> markup instead of
// files. Links and images always produce files.
func WithInline(inline bool) Option {
	return func(t *Transformer) { t.inline = inline }
}

// WithRenderer sets the renderer. The default is [render.Default].
func WithRenderer(r *render.Renderer) Option {
	return func(t *Transformer) {
		if r != nil {
			t.renderer = r
		}
	}
}

// WithOrigin sets the origin tag attached to every message.
// The default is [render.PluginName].
func WithOrigin(origin string) Option {
	return func(t *Transformer) {
		if origin != "" {
			t.origin = origin
		}
	}
}

// WithLogger sets the logger for per-node events (debug level).
func WithLogger(l *log.Logger) Option {
	return func(t *Transformer) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Transformer in file mode.
func New(opts ...Option) *Transformer {
	t := &Transformer{
		renderer: render.Default(),
		origin:   render.PluginName,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Inline reports whether code blocks are embedded inline.
func (t *Transformer) Inline() bool { return t.inline }

// Transform implements [parser.ASTTransformer]. The document File is taken
// from pc (see [document.WithFile]); when none is attached, a File rooted
// at the working directory is created and attached so callers can still
// read its messages afterwards.
func (t *Transformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	f, ok := document.FromContext(pc)
	if !ok {
		f = document.New("")
		if pc != nil {
			document.WithFile(pc, f)
		}
	}
	t.Apply(doc, reader.Source(), f)
}

// Apply runs one pass over the tree rooted at doc: all code blocks, then all
// links, then all images. Messages are appended to f in that order. The tree
// is modified in place and returned.
//
// Apply never fails; per-node failures become error messages on f.
func (t *Transformer) Apply(doc ast.Node, source []byte, f *document.File) ast.Node {
	ctx := context.Background()

	for _, cb := range collect(doc, source, ClassifyCodeBlock) {
		t.replaceCodeBlock(ctx, cb, f)
	}
	for _, ref := range collect(doc, source, ClassifyLink) {
		t.replaceReference(ctx, ref, f)
	}
	for _, ref := range collect(doc, source, ClassifyImage) {
		t.replaceReference(ctx, ref, f)
	}
	return doc
}

// collect snapshots every node of type N that classify accepts, in document
// order. Mutating the tree afterwards cannot cause skipped or repeated visits.
func collect[N ast.Node, T any](root ast.Node, source []byte, classify func(N, []byte) (T, bool)) []T {
	var targets []T
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if node, ok := n.(N); ok {
			if t, ok := classify(node, source); ok {
				targets = append(targets, t)
			}
		}
		return ast.WalkContinue, nil
	})
	return targets
}

func (t *Transformer) replaceCodeBlock(ctx context.Context, cb *CodeBlock, f *document.File) {
	parent := cb.Node.Parent()
	if parent == nil {
		return
	}

	var (
		replacement ast.Node
		msg         string
	)
	if t.inline {
		markup, err := t.renderer.RenderInline(ctx, cb.Source, cb.Engine)
		if err != nil {
			t.fail(f, cb, err)
			return
		}
		replacement = NewGraph(cb.Engine, markup)
		msg = fmt.Sprintf(msgCodeBlockInlined, cb.Engine)
	} else {
		link, err := t.renderer.Render(ctx, document.Destination(f), cb.Source, cb.Engine)
		if err != nil {
			t.fail(f, cb, err)
			return
		}
		replacement = imageParagraph(link)
		msg = fmt.Sprintf(msgCodeBlockReplaced, cb.Engine)
	}

	parent.ReplaceChild(parent, cb.Node, replacement)
	f.Info(msg, cb.Position, t.origin)
	t.logger.Debug("replaced code block", "engine", cb.Engine, "pos", cb.Position, "inline", t.inline)
}

func (t *Transformer) replaceReference(ctx context.Context, ref *Reference, f *document.File) {
	path := filepath.Join(f.Dir(), filepath.FromSlash(ref.URL))
	data, err := os.ReadFile(path)
	if err != nil {
		t.fail(f, ref, errors.Wrap(errors.ErrCodeFileRead, err, "read graph %s", ref.URL))
		return
	}

	link, err := t.renderer.Render(ctx, document.Destination(f), string(data), render.EngineDot)
	if err != nil {
		t.fail(f, ref, err)
		return
	}

	ref.SetURL(link)
	f.Info(msgLinkReplaced, ref.Position, t.origin)
	t.logger.Debug("replaced "+ref.Kind().String(), "url", ref.URL, "link", link, "pos", ref.Position)
}

func (t *Transformer) fail(f *document.File, target Target, err error) {
	f.Error(errors.Detail(err), target.Pos(), t.origin)
	t.logger.Debug("graph "+target.Kind().String()+" failed", "pos", target.Pos(), "err", err)
}

// imageParagraph builds the replacement for a rendered code block. goldmark
// images are inline nodes, so the image is wrapped in a paragraph.
func imageParagraph(link string) *ast.Paragraph {
	img := ast.NewImage(ast.NewLink())
	img.Destination = []byte(link)
	img.Title = []byte(ImageTitle)

	p := ast.NewParagraph()
	p.AppendChild(p, img)
	return p
}

var _ parser.ASTTransformer = (*Transformer)(nil)
