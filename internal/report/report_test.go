package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simp-lee/epubfreq/internal/extract"
	"github.com/simp-lee/epubfreq/internal/freq"
)

func analysis(t *testing.T, pairs ...string) *freq.Analysis {
	t.Helper()
	b := extract.NewBook()
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Set(pairs[i], pairs[i+1])
	}
	a, err := freq.Analyze(b)
	require.NoError(t, err)
	return a
}

func TestWriter_Analysis(t *testing.T) {
	var buf bytes.Buffer
	a := analysis(t, "chapter1.xhtml", "The Cat sat. The CAT sat!", "chapter2.xhtml", "A cat.")

	require.NoError(t, New(&buf).Analysis(a))

	want := `Text extraction successful. Found 2 document items (potential chapters/sections).

--- Processing Item: chapter1.xhtml ---
  Extracted 6 words from this item.

--- Processing Item: chapter2.xhtml ---
  Extracted 2 words from this item.

--- Overall Book Word Counts ---
Total unique words in the book: 4
Most common words in the entire book:
  'cat': 3
  'the': 2
  'sat': 2
  'a': 1
`
	assert.Equal(t, want, buf.String())
}

func TestWriter_TopLimit(t *testing.T) {
	var words []string
	for i := 0; i < 30; i++ {
		words = append(words, fmt.Sprintf("w%02d", i))
	}
	a := analysis(t, "chapter1.xhtml", strings.Join(words, " "))

	var buf bytes.Buffer
	require.NoError(t, New(&buf).Analysis(a))
	assert.Equal(t, DefaultTop, strings.Count(buf.String(), "  'w"))
	assert.Contains(t, buf.String(), "Total unique words in the book: 30")

	buf.Reset()
	require.NoError(t, New(&buf, WithTop(3)).Analysis(a))
	assert.Equal(t, 3, strings.Count(buf.String(), "  'w"))
}

func TestWriter_ChapterTop(t *testing.T) {
	a := analysis(t, "chapter1.xhtml", "owl owl moon", "chapter2.xhtml", "sun")

	var buf bytes.Buffer
	require.NoError(t, New(&buf, WithChapterTop(1)).Analysis(a))

	out := buf.String()
	assert.Contains(t, out, "  Extracted 3 words from this item.\n    'owl': 2\n")
	assert.Contains(t, out, "  Extracted 1 words from this item.\n    'sun': 1\n")
}

func TestWriter_NoData(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).NoData(false))
	assert.Equal(t, NoTextMessage+"\n", buf.String())

	buf.Reset()
	require.NoError(t, New(&buf).NoData(true))
	assert.Equal(t, NoChapterMessage+"\n", buf.String())
}

type failingWriter struct{ n int }

func (f *failingWriter) Write(p []byte) (int, error) {
	f.n++
	return 0, errors.New("disk full")
}

func TestWriter_PropagatesWriteErrors(t *testing.T) {
	fw := &failingWriter{}
	err := New(fw).Analysis(analysis(t, "chapter1.xhtml", "x"))

	assert.EqualError(t, err, "disk full")
	assert.Equal(t, 1, fw.n, "writes after the first failure should be skipped")
}
