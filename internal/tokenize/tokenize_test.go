package tokenize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", []string{}},
		{"whitespace only", " \t\n ", []string{}},
		{"punctuation only", "?!... --", []string{}},
		{"sentence", "The Cat sat. The CAT sat!", []string{"the", "cat", "sat", "the", "cat", "sat"}},
		{"mixed whitespace", "one\ttwo\n\nthree   four", []string{"one", "two", "three", "four"}},
		{"leading and trailing", "  hi there  ", []string{"hi", "there"}},
		{"fused punctuation", "don't well-known e.g.", []string{"dont", "wellknown", "eg"}},
		{"unicode letters kept", "Żółw ŻÓŁW", []string{"żółw", "żółw"}},
		{"non-ascii punctuation kept", "„Hello” — world…", []string{"„hello”", "—", "world…"}},
		{"digits kept", "Room 101, floor 3", []string{"room", "101", "floor", "3"}},
		{"information separators", "a\x1cb\x1dc\x1ed\x1fe", []string{"a", "b", "c", "d", "e"}},
		{"unicode spaces", "a\u00a0b\u2003c\u0085d", []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenize_EmptyIsNonNil(t *testing.T) {
	assert.NotNil(t, Tokenize(""))
	assert.Empty(t, Tokenize(""))
}

var propertyInputs = []string{
	"",
	"The Cat sat. The CAT sat!",
	"  Mr. Dursley, of number four, Privet Drive -- was PROUD to say\n\tthat they were perfectly normal; thank you very much.  ",
	"a,b;c:d!e?f",
	"[brackets] {braces} (parens) <angles> `ticks` ~tilde~ |pipe| \\back\\",
	"ÀÉÎ õü ß İstanbul",
	" non breaking spaces",
	"unit\x1fseparated\x1crecords",
}

func TestTokenize_Properties(t *testing.T) {
	for _, in := range propertyInputs {
		tokens := Tokenize(in)
		for _, tok := range tokens {
			assert.NotEmpty(t, tok, "input %q", in)
			assert.False(t, strings.ContainsAny(tok, Punctuation), "token %q has punctuation", tok)
			assert.Equal(t, strings.ToLower(tok), tok, "token %q is not lowercase", tok)
			assert.False(t, strings.IndexFunc(tok, isSeparator) >= 0, "token %q has whitespace", tok)
		}
	}
}

func TestTokenize_StableUnderRetokenization(t *testing.T) {
	for _, in := range propertyInputs {
		once := Tokenize(in)
		twice := Tokenize(strings.Join(once, " "))
		assert.Equal(t, once, twice, "input %q", in)
	}
}

func TestTokenize_PreservesOrder(t *testing.T) {
	in := "Alpha, beta; GAMMA. delta"
	assert.Equal(t, strings.FieldsFunc(Normalize(in), isSeparator), Tokenize(in))
	assert.Equal(t, []string{"alpha", "beta", "gamma", "delta"}, Tokenize(in))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("Hello, World!"))
	assert.Equal(t, "", Normalize(Punctuation))
}
