package freq

import (
	"errors"

	"github.com/simp-lee/epubfreq/internal/extract"
	"github.com/simp-lee/epubfreq/internal/tokenize"
)

// ErrNoContent is returned when there are no chapters to analyze.
var ErrNoContent = errors.New("freq: no content to analyze")

// ChapterStats holds the analysis of one chapter.
type ChapterStats struct {
	Name   string
	Tokens int
	Table  *Table
}

// Analysis holds per-chapter tables and the book-wide table.
type Analysis struct {
	Chapters []ChapterStats
	Book     *Table
}

// Analyze tokenizes every chapter in order and counts words per chapter and
// across the whole book. The book-wide table is built from the chapters'
// tokens concatenated in chapter order. A nil or empty book yields
// ErrNoContent.
func Analyze(book *extract.Book) (*Analysis, error) {
	if book.Len() == 0 {
		return nil, ErrNoContent
	}

	a := &Analysis{Chapters: make([]ChapterStats, 0, book.Len())}
	var all []string
	for _, ch := range book.Chapters() {
		words := tokenize.Tokenize(ch.Text)
		a.Chapters = append(a.Chapters, ChapterStats{
			Name:   ch.Name,
			Tokens: len(words),
			Table:  Count(words),
		})
		all = append(all, words...)
	}
	a.Book = Count(all)
	return a, nil
}

// Consistent reports whether every book-wide count equals the sum of the
// per-chapter counts for that word.
func (a *Analysis) Consistent() bool {
	sums := make(map[string]int, a.Book.Len())
	for _, ch := range a.Chapters {
		for w, c := range ch.Table.counts {
			sums[w] += c
		}
	}
	if len(sums) != a.Book.Len() {
		return false
	}
	for w, c := range sums {
		if a.Book.Get(w) != c {
			return false
		}
	}
	return true
}
