// Package extract turns an ePub container into an ordered set of chapter texts.
package extract

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/simp-lee/epubfreq/internal/epub"
)

// Extractor reads chapter-like document items from ePub containers.
type Extractor struct {
	matcher Matcher
	log     logrus.FieldLogger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMatcher replaces DefaultMatcher.
func WithMatcher(m Matcher) Option {
	return func(e *Extractor) {
		if m != nil {
			e.matcher = m
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Extractor) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an Extractor using DefaultMatcher and a silent logger unless
// overridden.
func New(opts ...Option) *Extractor {
	silent := logrus.New()
	silent.SetOutput(io.Discard)

	e := &Extractor{matcher: DefaultMatcher, log: silent}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract reads the chapters of the ePub at path with the default settings.
func Extract(path string) (*Book, error) {
	return New().Extract(path)
}

// Extract opens the container at path and returns its chapters in
// container order.
//
// A missing path yields a *NotFoundError and any other failure an
// *ExtractionError; in both cases the Book is nil. A container without
// matching items yields an empty, non-nil Book.
func (e *Extractor) Extract(path string) (*Book, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, &NotFoundError{Path: path, Err: err}
	case err != nil:
		return nil, &ExtractionError{Path: path, Err: err}
	case info.IsDir():
		return nil, &NotFoundError{Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	return e.extract(path, func() (*epub.Book, error) { return epub.Open(path) })
}

// ExtractReader is Extract for an in-memory container. name labels errors
// and log entries.
func (e *Extractor) ExtractReader(name string, r io.ReaderAt, size int64) (*Book, error) {
	return e.extract(name, func() (*epub.Book, error) { return epub.NewReader(r, size) })
}

func (e *Extractor) extract(path string, open func() (*epub.Book, error)) (book *Book, err error) {
	log := e.log.WithField("path", path)

	defer func() {
		if r := recover(); r != nil {
			book = nil
			err = &ExtractionError{Path: path, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	eb, err := open()
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer eb.Close()

	for _, w := range eb.Warnings() {
		log.Warn(w)
	}
	if md := eb.Metadata(); len(md.Titles) > 0 {
		log.WithFields(logrus.Fields{
			"title":     md.Titles[0],
			"authors":   md.Authors,
			"languages": md.Languages,
			"version":   md.Version,
		}).Info("opened book")
	}

	return e.collect(path, eb, log)
}

func (e *Extractor) collect(path string, eb *epub.Book, log logrus.FieldLogger) (*Book, error) {
	book := NewBook()
	for _, it := range eb.Items() {
		ilog := log.WithFields(logrus.Fields{"item": it.Name, "id": it.ID})
		if !it.IsDocument() {
			ilog.WithField("media_type", it.MediaType).Debug("skipping non-document item")
			continue
		}
		if !e.matcher.Match(it.Name) {
			ilog.Debug("skipping non-chapter item")
			continue
		}

		data, err := it.Content()
		if err != nil {
			return nil, &ExtractionError{Path: path, Item: it.Name, Err: err}
		}
		if !utf8.Valid(data) {
			return nil, &ExtractionError{Path: path, Item: it.Name, Err: ErrInvalidUTF8}
		}
		text, err := epub.ExtractText(data)
		if err != nil {
			return nil, &ExtractionError{Path: path, Item: it.Name, Err: fmt.Errorf("parse markup: %w", err)}
		}

		book.Set(it.Name, text)
	}

	log.WithField("chapters", book.Len()).Debug("extraction finished")
	return book, nil
}
