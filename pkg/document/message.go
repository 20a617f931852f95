package document

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Severity classifies a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Position locates a node in the document source. Line and Column are
// 1-based; the zero Position means unknown.
type Position struct {
	Line   int
	Column int
	Offset int
}

// IsValid reports whether p points somewhere.
func (p Position) IsValid() bool { return p.Line > 0 }

func (p Position) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// PositionAt converts a byte offset into source to a Position. Negative or
// out-of-range offsets yield the zero Position.
func PositionAt(source []byte, offset int) Position {
	if offset < 0 || offset > len(source) {
		return Position{}
	}
	before := source[:offset]
	line := bytes.Count(before, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(before, '\n') + 1
	return Position{
		Line:   line,
		Column: utf8.RuneCount(before[lineStart:]) + 1,
		Offset: offset,
	}
}

// Message is one diagnostic attached to a File.
type Message struct {
	Severity Severity
	Text     string
	Position Position
	// Origin names the component that emitted the message.
	Origin string
}

func (m Message) String() string {
	return fmt.Sprintf("%s %s %s [%s]", m.Position, m.Severity, m.Text, m.Origin)
}

// Info appends an informational message.
func (f *File) Info(text string, pos Position, origin string) {
	f.Messages = append(f.Messages, Message{Severity: SeverityInfo, Text: text, Position: pos, Origin: origin})
}

// Error appends an error message.
func (f *File) Error(text string, pos Position, origin string) {
	f.Messages = append(f.Messages, Message{Severity: SeverityError, Text: text, Position: pos, Origin: origin})
}

// Errors returns the error-severity messages in emission order.
func (f *File) Errors() []Message {
	var errs []Message
	for _, m := range f.Messages {
		if m.Severity == SeverityError {
			errs = append(errs, m)
		}
	}
	return errs
}

// HasErrors reports whether any error message was recorded.
func (f *File) HasErrors() bool {
	for _, m := range f.Messages {
		if m.Severity == SeverityError {
			return true
		}
	}
	return false
}
