// Package tokenize splits text into normalized word tokens.
package tokenize

import (
	"strings"
	"unicode"
)

// Punctuation is the set of ASCII punctuation characters removed before
// splitting.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var stripPunctuation = strings.NewReplacer(punctuationPairs()...)

func punctuationPairs() []string {
	pairs := make([]string, 0, 2*len(Punctuation))
	for _, c := range Punctuation {
		pairs = append(pairs, string(c), "")
	}
	return pairs
}

// Normalize removes ASCII punctuation from text and lowercases the result.
func Normalize(text string) string {
	return strings.ToLower(stripPunctuation.Replace(text))
}

// isSeparator reports Unicode white space plus the ASCII information
// separators U+001C..U+001F, which unicode.IsSpace leaves out.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1C && r <= 0x1F)
}

// Tokenize normalizes text and splits it on runs of whitespace. Empty input
// yields an empty, non-nil slice. Hyphenated words and contractions are
// fused ("well-known" becomes "wellknown"); no stemming or stop-word
// removal is applied.
func Tokenize(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.FieldsFunc(Normalize(text), isSeparator)
}
