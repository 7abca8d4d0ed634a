// Package epubtest builds small ePub archives for tests.
package epubtest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"
)

const containerXML = `<?xml version="1.0" encoding="UTF-8"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="%s" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// File is a single archive entry.
type File struct {
	Name string
	Body string
}

// Item is a manifest entry. Href is written to the manifest as given and
// stored in the archive percent-decoded. Missing items are declared in the
// manifest but have no archive entry.
type Item struct {
	ID        string
	Href      string
	MediaType string
	Body      string
	Missing   bool
}

// Book describes a fixture container. The zero value is a valid ePub with
// an empty manifest.
type Book struct {
	Title   string
	Dir     string // OPF directory; defaults to "OEBPS"
	Items   []Item
	Extra   []File // written after the generated entries
	NoOPF   bool   // drop container.xml and the package document
	RawOPF  string // replaces the generated package document when set
	Version string
}

// Chapter returns an XHTML document item with body placed inside <body>.
func Chapter(href, body string) Item {
	return Item{
		Href:      href,
		MediaType: "application/xhtml+xml",
		Body:      XHTML(strings.TrimSuffix(path.Base(href), path.Ext(href)), body),
	}
}

// XHTML wraps body in a minimal XHTML document.
func XHTML(title, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title>` + title + `</title></head>
<body>` + body + `</body>
</html>`
}

func (b Book) dir() string {
	if b.Dir == "" {
		return "OEBPS"
	}
	return b.Dir
}

func (b Book) opfPath() string {
	if b.dir() == "." {
		return "content.opf"
	}
	return b.dir() + "/content.opf"
}

// OPF renders the package document.
func (b Book) OPF() string {
	if b.RawOPF != "" {
		return b.RawOPF
	}
	version := b.Version
	if version == "" {
		version = "2.0"
	}
	title := b.Title
	if title == "" {
		title = "Test Book"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<package xmlns="http://www.idpf.org/2007/opf" version="%s" unique-identifier="uid">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
    <dc:title>%s</dc:title>
    <dc:creator>Test Author</dc:creator>
    <dc:language>en</dc:language>
    <dc:identifier id="uid">test-id-001</dc:identifier>
  </metadata>
  <manifest>
`, version, title)
	for i, it := range b.Items {
		id := it.ID
		if id == "" {
			id = fmt.Sprintf("item%d", i+1)
		}
		fmt.Fprintf(&sb, "    <item id=%q href=%q media-type=%q/>\n", id, it.Href, it.MediaType)
	}
	sb.WriteString("  </manifest>\n  <spine>\n")
	for i, it := range b.Items {
		id := it.ID
		if id == "" {
			id = fmt.Sprintf("item%d", i+1)
		}
		fmt.Fprintf(&sb, "    <itemref idref=%q/>\n", id)
	}
	sb.WriteString("  </spine>\n</package>\n")
	return sb.String()
}

// Files lists the archive entries in write order, mimetype first.
func (b Book) Files() []File {
	files := []File{{Name: "mimetype", Body: "application/epub+zip"}}
	if !b.NoOPF {
		files = append(files,
			File{Name: "META-INF/container.xml", Body: fmt.Sprintf(containerXML, b.opfPath())},
			File{Name: b.opfPath(), Body: b.OPF()},
		)
	}
	for _, it := range b.Items {
		if it.Missing {
			continue
		}
		name := it.Href
		if decoded, err := url.PathUnescape(name); err == nil {
			name = decoded
		}
		files = append(files, File{Name: path.Join(b.dir(), name), Body: it.Body})
	}
	return append(files, b.Extra...)
}

// Bytes returns the archive as a byte slice.
func (b Book) Bytes(t testing.TB) []byte {
	t.Helper()
	return Zip(t, b.Files())
}

// WriteFile writes the archive to a temporary directory and returns its path.
func (b Book) WriteFile(t testing.TB) string {
	t.Helper()
	return WriteZip(t, b.Files())
}

// Zip builds an archive from files in order.
func Zip(t testing.TB, files []File) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			t.Fatalf("epubtest: create %s: %v", f.Name, err)
		}
		if _, err := w.Write([]byte(f.Body)); err != nil {
			t.Fatalf("epubtest: write %s: %v", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("epubtest: close writer: %v", err)
	}
	return buf.Bytes()
}

// WriteZip writes files as an archive under t.TempDir and returns its path.
func WriteZip(t testing.TB, files []File) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "test.epub")
	if err := os.WriteFile(p, Zip(t, files), 0o644); err != nil {
		t.Fatalf("epubtest: write file: %v", err)
	}
	return p
}
