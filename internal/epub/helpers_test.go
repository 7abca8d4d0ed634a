package epub

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/simp-lee/epubfreq/internal/epubtest"
)

func zipReader(t *testing.T, files ...epubtest.File) *zip.Reader {
	t.Helper()
	data := epubtest.Zip(t, files)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	return zr
}

func openFixture(t *testing.T, fx epubtest.Book) *Book {
	t.Helper()
	book, err := Open(fx.WriteFile(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { book.Close() })
	return book
}
