// Package textreport renders report documents as plain fixed-width text.
//
// Headers become a text line (underlined with '=' at level 1), paragraphs are
// word-wrapped to a maximum line length, and tables are emitted as numbered
// captions followed by pipe-delimited, padded rows. Drawings, equations,
// images and plots have no text form and are skipped.
package textreport

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/textreport/pkg/report"
)

// Compile-time interface check.
var _ report.Writer = (*TextWriter)(nil)

// TextWriter renders report nodes to a text sink.
//
// A TextWriter is not safe for concurrent use. It borrows the sink and never
// closes it; the creator of the sink owns its lifecycle.
type TextWriter struct {
	out           io.Writer
	maxLineLength int
	logger        *log.Logger

	// tableCounter numbers table captions. It only ever increases.
	tableCounter int
}

// New creates a TextWriter that writes to out.
func New(out io.Writer, opts Options) (*TextWriter, error) {
	if out == nil {
		return nil, errors.New("textreport: nil output writer")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	opts = opts.withDefaults()
	return &TextWriter{
		out:           out,
		maxLineLength: opts.MaxLineLength,
		logger:        opts.Logger,
	}, nil
}

// MaxLineLength returns the current paragraph wrap width.
func (w *TextWriter) MaxLineLength() int {
	return w.maxLineLength
}

// SetMaxLineLength changes the wrap width for subsequent paragraphs.
func (w *TextWriter) SetMaxLineLength(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidLineLength, n)
	}
	w.maxLineLength = n
	return nil
}

// WriteReport renders every node of r in document order.
// The style is accepted for interface compatibility and ignored.
func (w *TextWriter) WriteReport(r *report.Report, _ *report.Style) error {
	return r.Write(w)
}

// WriteHeader writes the header text, a '=' underline for level 1 headers,
// and a blank line. A header with nil text writes nothing.
func (w *TextWriter) WriteHeader(h *report.Header) error {
	if h.Text == nil {
		return nil
	}

	text := *h.Text
	if err := w.writeLine(text); err != nil {
		return err
	}
	if h.Level == 1 {
		if err := w.writeLine(strings.Repeat("=", utf8.RuneCountInString(text))); err != nil {
			return err
		}
	}
	return w.writeLine("")
}

// WriteParagraph writes the paragraph wrapped to MaxLineLength, then a blank line.
func (w *TextWriter) WriteParagraph(p *report.Paragraph) error {
	lines := WrapLines(p.Text, w.maxLineLength)
	w.logger.Debug("render paragraph", "lines", len(lines), "max_line_length", w.maxLineLength)

	for _, line := range lines {
		if err := w.writeLine(line); err != nil {
			return err
		}
	}
	return w.writeLine("")
}

// WriteDrawing is a no-op: drawings have no text rendering.
func (w *TextWriter) WriteDrawing(*report.DrawingFigure) error { return nil }

// WriteEquation is a no-op.
func (w *TextWriter) WriteEquation(*report.Equation) error { return nil }

// WriteImage is a no-op.
func (w *TextWriter) WriteImage(*report.Image) error { return nil }

// WritePlot is a no-op.
func (w *TextWriter) WritePlot(*report.PlotFigure) error { return nil }

// writeLine writes s followed by a newline.
func (w *TextWriter) writeLine(s string) error {
	if _, err := io.WriteString(w.out, s+"\n"); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
