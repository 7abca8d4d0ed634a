package extract

// Chapter is the extracted plain text of one chapter-like document item.
type Chapter struct {
	// Name is the item name as it appears in the container manifest.
	Name string
	Text string
}

// Book maps item names to chapter text, preserving container order.
// Setting an existing name replaces its text in place.
type Book struct {
	chapters []Chapter
	index    map[string]int
}

// NewBook returns an empty Book.
func NewBook() *Book {
	return &Book{index: make(map[string]int)}
}

// Set records text for name.
func (b *Book) Set(name, text string) {
	if i, ok := b.index[name]; ok {
		b.chapters[i].Text = text
		return
	}
	b.index[name] = len(b.chapters)
	b.chapters = append(b.chapters, Chapter{Name: name, Text: text})
}

// Get returns the text stored for name.
func (b *Book) Get(name string) (string, bool) {
	i, ok := b.index[name]
	if !ok {
		return "", false
	}
	return b.chapters[i].Text, true
}

// Len returns the number of chapters. A nil Book has none.
func (b *Book) Len() int {
	if b == nil {
		return 0
	}
	return len(b.chapters)
}

// Names returns the chapter names in order.
func (b *Book) Names() []string {
	if b == nil {
		return nil
	}
	names := make([]string, len(b.chapters))
	for i, c := range b.chapters {
		names[i] = c.Name
	}
	return names
}

// Chapters returns a copy of the chapters in order.
func (b *Book) Chapters() []Chapter {
	if b == nil {
		return nil
	}
	return append([]Chapter(nil), b.chapters...)
}
