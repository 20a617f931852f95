// Package document holds the per-document state a graph rewriting pass reads
// and writes: where the document lives, where rendered images go, and the
// ordered log of diagnostics produced while processing it.
//
// A [File] belongs to exactly one document. Parallel drivers create one File
// per document; nothing in a File is shared.
package document

import (
	"os"
	"path/filepath"
)

// File describes one markdown document being processed.
type File struct {
	// Path is the document's path on disk. It may be relative.
	Path string

	// DestinationDir overrides where rendered images are written.
	// Empty means next to the document.
	DestinationDir string

	// Messages is the diagnostic log, in emission order.
	Messages []Message
}

// New returns a File for the document at path.
func New(path string) *File {
	return &File{Path: path}
}

// Read loads the document at path and returns its contents with a File
// describing it.
func Read(path string) ([]byte, *File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return data, New(path), nil
}

// Dir returns the directory containing the document, or "." when the File
// has no path.
func (f *File) Dir() string {
	if f.Path == "" {
		return "."
	}
	return filepath.Dir(f.Path)
}

// Destination returns the directory rendered images for f are written to:
// the explicit override when set, otherwise the document's own directory.
// It never creates directories.
func Destination(f *File) string {
	if f.DestinationDir != "" {
		return f.DestinationDir
	}
	return f.Dir()
}
