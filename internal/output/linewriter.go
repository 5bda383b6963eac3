package output

import (
	"fmt"
	"io"
)

// LineWriter writes space-separated tokens, breaking lines before they
// exceed the maximum length. Continuation lines start with the indent.
type LineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	indent        string
	needsSpace    bool
}

// NewLineWriter creates a new line writer.
func NewLineWriter(w io.Writer, maxLineLength int, indent string) *LineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &LineWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a token, adding a space separator if needed.
func (o *LineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *LineWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *LineWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}
