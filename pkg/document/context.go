package document

import "github.com/yuin/goldmark/parser"

var fileKey = parser.NewContextKey()

// WithFile attaches f to a goldmark parser context so AST transformers can
// report against it. A nil pc gets a fresh context.
//
//	pc := document.WithFile(nil, f)
//	md.Convert(src, &buf, parser.WithContext(pc))
func WithFile(pc parser.Context, f *File) parser.Context {
	if pc == nil {
		pc = parser.NewContext()
	}
	pc.Set(fileKey, f)
	return pc
}

// FromContext returns the File attached with [WithFile], if any.
func FromContext(pc parser.Context) (*File, bool) {
	if pc == nil {
		return nil, false
	}
	f, ok := pc.Get(fileKey).(*File)
	return f, ok && f != nil
}
