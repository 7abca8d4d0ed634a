package epub

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// skipTags hold non-visible content.
var skipTags = map[atom.Atom]bool{
	atom.Script: true,
	atom.Style:  true,
}

// XHTML allows empty elements such as <title/> or <script/>, but the HTML
// tokenizer ignores the slash on raw-text and RCDATA elements and would
// swallow the rest of the document as text.
var selfClosingRawRe = regexp.MustCompile(`(?is)<(script|style|title|textarea|iframe|noembed|noframes|noscript|xmp)\b([^>]*)/>`)

func expandSelfClosingRawTags(data []byte) []byte {
	if !selfClosingRawRe.Match(data) {
		return data
	}
	return selfClosingRawRe.ReplaceAll(data, []byte(`<$1$2></$1>`))
}

// ExtractText returns the visible text of an (X)HTML document. Each text
// node is trimmed and its inner whitespace collapsed; non-empty nodes are
// joined with a single space. Script, style and comment content is dropped
// and character references are decoded.
func ExtractText(data []byte) (string, error) {
	z := html.NewTokenizer(bytes.NewReader(expandSelfClosingRawTags(data)))

	var parts []string
	skipDepth := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return strings.Join(parts, " "), nil

		case html.StartTagToken:
			name, _ := z.TagName()
			if skipTags[atom.Lookup(name)] {
				skipDepth++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if skipTags[atom.Lookup(name)] && skipDepth > 0 {
				skipDepth--
			}

		case html.TextToken:
			if skipDepth > 0 {
				continue
			}
			if s := strings.Join(strings.Fields(string(z.Text())), " "); s != "" {
				parts = append(parts, s)
			}
		}
	}
}
