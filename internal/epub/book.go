package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

const expectedMimetype = "application/epub+zip"

// Book is an opened ePub container.
//
// A Book is not safe for concurrent use by multiple goroutines.
type Book struct {
	zip      *zip.Reader
	entries  map[string]*zip.File
	folded   map[string]*zip.File
	closer   io.Closer
	opfPath  string
	pkg      *opfPackage
	items    []Item
	warnings []string
}

// Open opens the ePub file at path. The caller must Close the Book.
func Open(path string) (*Book, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("epub: open %s: %w", path, err)
	}
	b, err := newBook(&zrc.Reader, zrc)
	if err != nil {
		zrc.Close()
		return nil, err
	}
	return b, nil
}

// NewReader reads an ePub from r. The caller owns r; Close only drops
// internal state.
func NewReader(r io.ReaderAt, size int64) (*Book, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("epub: open zip: %w", err)
	}
	return newBook(zr, nil)
}

func newBook(zr *zip.Reader, closer io.Closer) (*Book, error) {
	b := &Book{zip: zr, closer: closer}
	b.indexEntries()
	b.checkMimetype()

	opfPath, err := locatePackage(zr)
	if err != nil {
		return nil, err
	}
	b.opfPath = opfPath

	obfuscated, err := checkDRM(zr)
	if err != nil {
		return nil, err
	}
	if obfuscated {
		b.warnings = append(b.warnings, "font obfuscation detected")
	}

	f := b.entry(opfPath)
	if f == nil {
		return nil, fmt.Errorf("epub: OPF file not found in archive: %s: %w", opfPath, ErrInvalidEPub)
	}
	data, err := readEntry(f)
	if err != nil {
		return nil, fmt.Errorf("epub: read OPF file: %w", err)
	}
	if b.pkg, err = parsePackage(data); err != nil {
		return nil, err
	}
	b.items = b.manifestItems()
	return b, nil
}

// checkMimetype records a warning when the leading "mimetype" entry is
// missing or wrong. Readers in the wild tolerate both, so neither is fatal.
func (b *Book) checkMimetype() {
	if len(b.zip.File) == 0 {
		b.warnings = append(b.warnings, "empty ZIP archive; mimetype entry missing")
		return
	}
	first := b.zip.File[0]
	if first.Name != "mimetype" {
		b.warnings = append(b.warnings, `first ZIP entry is not "mimetype"`)
		return
	}
	data, err := readEntry(first)
	if err != nil {
		b.warnings = append(b.warnings, fmt.Sprintf("cannot read mimetype entry: %v", err))
		return
	}
	if string(data) != expectedMimetype {
		b.warnings = append(b.warnings, fmt.Sprintf("unexpected mimetype: %q", string(data)))
	}
}

func (b *Book) indexEntries() {
	b.entries = make(map[string]*zip.File, len(b.zip.File))
	b.folded = make(map[string]*zip.File, len(b.zip.File))
	for _, f := range b.zip.File {
		if _, ok := b.entries[f.Name]; !ok {
			b.entries[f.Name] = f
		}
		lower := strings.ToLower(f.Name)
		if _, ok := b.folded[lower]; !ok {
			b.folded[lower] = f
		}
	}
}

func (b *Book) entry(name string) *zip.File {
	if f, ok := b.entries[name]; ok {
		return f
	}
	return b.folded[strings.ToLower(name)]
}

// manifestItems converts the OPF manifest into Items, keeping document order.
func (b *Book) manifestItems() []Item {
	items := make([]Item, 0, len(b.pkg.Manifest.Items))
	for _, mi := range b.pkg.Manifest.Items {
		items = append(items, Item{
			ID:        mi.ID,
			Name:      unescapeHref(strings.TrimSpace(mi.Href)),
			Path:      resolveHref(b.opfPath, mi.Href),
			MediaType: strings.TrimSpace(mi.MediaType),
			book:      b,
		})
	}
	return items
}

// Items returns the manifest items in container order.
func (b *Book) Items() []Item {
	return append([]Item(nil), b.items...)
}

// ReadFile reads an archive entry by path, falling back to a
// case-insensitive match.
func (b *Book) ReadFile(name string) ([]byte, error) {
	f := b.entry(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
	}
	return readEntry(f)
}

// Metadata returns the book's title, author and language metadata.
func (b *Book) Metadata() Metadata {
	return b.pkg.metadata()
}

// Warnings returns non-fatal problems found while opening the container.
func (b *Book) Warnings() []string {
	return append([]string(nil), b.warnings...)
}

// Close releases the underlying file when the Book came from Open.
// It is safe to call more than once.
func (b *Book) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}
