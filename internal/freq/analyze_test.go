package freq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simp-lee/epubfreq/internal/extract"
)

func bookOf(pairs ...string) *extract.Book {
	b := extract.NewBook()
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Set(pairs[i], pairs[i+1])
	}
	return b
}

func TestAnalyze_NoContent(t *testing.T) {
	_, err := Analyze(nil)
	assert.ErrorIs(t, err, ErrNoContent)

	_, err = Analyze(extract.NewBook())
	assert.ErrorIs(t, err, ErrNoContent)
}

func TestAnalyze_SingleChapter(t *testing.T) {
	a, err := Analyze(bookOf("chapter1.xhtml", "The Cat sat. The CAT sat!"))
	require.NoError(t, err)

	require.Len(t, a.Chapters, 1)
	ch := a.Chapters[0]
	assert.Equal(t, "chapter1.xhtml", ch.Name)
	assert.Equal(t, 6, ch.Tokens)
	want := map[string]int{"the": 2, "cat": 2, "sat": 2}
	assert.Equal(t, want, ch.Table.Map())
	assert.Equal(t, want, a.Book.Map())
}

func TestAnalyze_SumsAcrossChapters(t *testing.T) {
	a, err := Analyze(bookOf(
		"chapter1.xhtml", strings.Repeat("owl ", 5)+"moon",
		"chapter2.xhtml", "Owl! owl, OWL.",
	))
	require.NoError(t, err)

	assert.Equal(t, 5, a.Chapters[0].Table.Get("owl"))
	assert.Equal(t, 3, a.Chapters[1].Table.Get("owl"))
	assert.Equal(t, 8, a.Book.Get("owl"))
	assert.True(t, a.Consistent())
}

func TestAnalyze_PreservesChapterOrder(t *testing.T) {
	a, err := Analyze(bookOf("chapter9.xhtml", "x", "chapter1.xhtml", "y", "chapter5.xhtml", ""))
	require.NoError(t, err)

	var names []string
	for _, ch := range a.Chapters {
		names = append(names, ch.Name)
	}
	assert.Equal(t, []string{"chapter9.xhtml", "chapter1.xhtml", "chapter5.xhtml"}, names)
	assert.Equal(t, 0, a.Chapters[2].Tokens)
}

func TestAnalyze_BookTiesFollowConcatenatedOrder(t *testing.T) {
	a, err := Analyze(bookOf(
		"chapter1.xhtml", "beta alpha",
		"chapter2.xhtml", "alpha beta gamma",
	))
	require.NoError(t, err)

	assert.Equal(t, []Entry{{"beta", 2}, {"alpha", 2}, {"gamma", 1}}, a.Book.Ranked())
}

func TestAnalysis_Consistent(t *testing.T) {
	texts := []string{
		"It was the best of times, it was the worst of times.",
		"It was the age of wisdom; it was the age of foolishness!",
		"",
		"TIMES times Times",
	}
	b := extract.NewBook()
	for i, text := range texts {
		b.Set(string(rune('a'+i))+".xhtml", text)
	}

	a, err := Analyze(b)
	require.NoError(t, err)
	assert.True(t, a.Consistent())

	total := 0
	for _, ch := range a.Chapters {
		total += ch.Tokens
	}
	assert.Equal(t, total, a.Book.Total())
}

func TestAnalysis_ConsistentDetectsDrift(t *testing.T) {
	a, err := Analyze(bookOf("chapter1.xhtml", "one two"))
	require.NoError(t, err)

	a.Book = Count([]string{"one", "two", "two"})
	assert.False(t, a.Consistent())
}
