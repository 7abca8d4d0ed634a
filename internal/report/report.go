// Package report renders word-frequency analyses as console text.
package report

import (
	"fmt"
	"io"

	"github.com/simp-lee/epubfreq/internal/freq"
)

// DefaultTop is the number of book-wide words listed by default.
const DefaultTop = 20

// Messages printed instead of an analysis.
const (
	NoTextMessage    = "No text content was extracted from the EPUB file."
	NoChapterMessage = "No text content was extracted from the EPUB file (0 chapter items found)."
)

// Writer prints analyses to an io.Writer.
type Writer struct {
	w          io.Writer
	top        int
	chapterTop int
}

// Option configures a Writer.
type Option func(*Writer)

// WithTop sets how many book-wide words are listed.
func WithTop(n int) Option {
	return func(r *Writer) { r.top = n }
}

// WithChapterTop lists the n most common words under each chapter.
// Zero, the default, lists none.
func WithChapterTop(n int) Option {
	return func(r *Writer) { r.chapterTop = n }
}

// New returns a Writer printing to w.
func New(w io.Writer, opts ...Option) *Writer {
	r := &Writer{w: w, top: DefaultTop}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Analysis prints the per-chapter summary followed by the book-wide counts.
func (r *Writer) Analysis(a *freq.Analysis) error {
	p := &printer{w: r.w}
	p.printf("Text extraction successful. Found %d document items (potential chapters/sections).\n", len(a.Chapters))

	for _, ch := range a.Chapters {
		p.printf("\n--- Processing Item: %s ---\n", ch.Name)
		p.printf("  Extracted %d words from this item.\n", ch.Tokens)
		if r.chapterTop > 0 {
			for _, e := range ch.Table.Top(r.chapterTop) {
				p.printf("    '%s': %d\n", e.Word, e.Count)
			}
		}
	}

	p.printf("\n--- Overall Book Word Counts ---\n")
	p.printf("Total unique words in the book: %d\n", a.Book.Len())
	p.printf("Most common words in the entire book:\n")
	for _, e := range a.Book.Top(r.top) {
		p.printf("  '%s': %d\n", e.Word, e.Count)
	}
	return p.err
}

// NoData prints the single line shown when nothing could be analyzed.
// emptyBook distinguishes a readable book without chapters from a book that
// could not be read.
func (r *Writer) NoData(emptyBook bool) error {
	msg := NoTextMessage
	if emptyBook {
		msg = NoChapterMessage
	}
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

// printer keeps the first write error so callers check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
