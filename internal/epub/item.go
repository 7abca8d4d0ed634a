package epub

import "strings"

// Item is one entry of the OPF manifest. Content is read lazily.
type Item struct {
	// ID is the manifest id attribute.
	ID string

	// Name is the percent-decoded manifest href, relative to the OPF
	// directory (e.g. "Text/chapter 01.xhtml").
	Name string

	// Path is the archive path the href resolves to, or "" when the href
	// is absolute or escapes the archive root.
	Path string

	// MediaType is the declared MIME type.
	MediaType string

	book *Book
}

var documentTypes = map[string]bool{
	"application/xhtml+xml": true,
	"text/html":             true,
}

// IsDocument reports whether the item is an (X)HTML content document.
func (it Item) IsDocument() bool {
	return documentTypes[strings.ToLower(it.MediaType)]
}

// Content returns the raw item bytes with any UTF-8 BOM removed.
func (it Item) Content() ([]byte, error) {
	if it.book == nil {
		return nil, ErrInvalidItem
	}
	if it.Path == "" {
		return nil, ErrFileNotFound
	}
	data, err := it.book.ReadFile(it.Path)
	if err != nil {
		return nil, err
	}
	return trimBOM(data), nil
}
