package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/chunky/internal/domain"
	"github.com/footprint-tools/chunky/internal/ui/style"
	"golang.org/x/term"
)

// Writer implements domain.DiagnosticsSink over a standard and an error channel.
type Writer struct {
	out       io.Writer
	err       io.Writer
	styleErrs bool
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithErrorStyling styles error lines with style.Error.
// It only takes effect when the error channel is a terminal.
func WithErrorStyling() WriterOption {
	return func(w *Writer) {
		w.styleErrs = isTerminal(w.err)
	}
}

// NewWriter creates a new Writer for stdout and stderr.
func NewWriter(opts ...WriterOption) *Writer {
	return NewWriterTo(os.Stdout, os.Stderr, opts...)
}

// NewWriterTo creates a new Writer that writes to the specified channels.
func NewWriterTo(out, err io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out: out,
		err: err,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PrintLine prints a line on the standard channel.
func (w *Writer) PrintLine(line string) {
	_, _ = fmt.Fprintln(w.out, line)
}

// ErrorLine prints a line on the error channel.
func (w *Writer) ErrorLine(line string) {
	if w.styleErrs {
		line = style.Error(line)
	}
	_, _ = fmt.Fprintln(w.err, line)
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return isTerminal(os.Stdout)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Verify Writer implements domain.DiagnosticsSink
var _ domain.DiagnosticsSink = (*Writer)(nil)
