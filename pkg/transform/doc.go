// Package transform rewrites goldmark documents so that embedded Graphviz
// graphs are replaced by rendered SVG images.
//
// # Eligible Nodes
//
// Three kinds of node are rewritten:
//
//   - fenced code blocks tagged dot or circo: the block is replaced by an
//     image of the rendered graph
//   - links titled "dot:": the referenced file is rendered with the dot
//     engine and the link is pointed at the image
//   - images titled "dot:": same as links
//
//	```dot
//	digraph { a -> b }
//	```
//
//	[Architecture](arch.dot "dot:")
//	![Architecture](arch.dot "dot:")
//
// # Usage
//
// As a goldmark extension, with the document metadata carried in the parser
// context:
//
//	md := goldmark.New(goldmark.WithExtensions(transform.NewExtension()))
//	f := document.New("docs/guide.md")
//	err := md.Convert(src, &buf, parser.WithContext(document.WithFile(nil, f)))
//	for _, m := range f.Messages { ... }
//
// Or directly on a parsed tree:
//
//	doc := md.Parser().Parse(text.NewReader(src))
//	transform.New(transform.WithInline(true)).Apply(doc, src, f)
//
// # Failure Handling
//
// A graph that fails to render, or a referenced file that cannot be read,
// leaves its node untouched and adds one error message to the File. The
// pass always runs to completion.
package transform
