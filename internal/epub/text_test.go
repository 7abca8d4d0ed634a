package epub

import "testing"

func TestExtractText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"paragraph", `<p>The Cat sat. The CAT sat!</p>`, "The Cat sat. The CAT sat!"},
		{"nodes joined by one space", `<h1>Title</h1><p>First</p><p>Second</p>`, "Title First Second"},
		{"inline elements", `<p>Hello <b>bold</b> world</p>`, "Hello bold world"},
		{"inner whitespace collapsed", "<p>a\n\t  b</p>", "a b"},
		{"script and style dropped", `<style>p{}</style><p>x</p><script>var a = 1;</script>`, "x"},
		{"self-closing script", `<script src="a.js"/><p>kept</p>`, "kept"},
		{"comments dropped", `<p>a<!-- hidden --> b</p>`, "a b"},
		{"entities decoded", `<p>caf&eacute; &amp; tea</p>`, "café & tea"},
		{"empty", ``, ""},
		{"whitespace only", "  <p>  </p>\n", ""},
		{"head title kept", `<html><head><title>T</title></head><body><p>b</p></body></html>`, "T b"},
		{"xml declaration ignored", `<?xml version="1.0"?><p>x</p>`, "x"},
		{"empty title element", `<html><head><title/></head><body><p>x</p></body></html>`, "x"},
		{"empty title with attributes", `<head><title lang="en" /></head><body><p>The Cat sat.</p></body>`, "The Cat sat."},
		{"empty textarea", `<p>a</p><textarea name="n"/><p>b</p>`, "a b"},
		{"empty iframe", `<iframe src="x.html"/><p>after</p>`, "after"},
		{"empty noscript", `<noscript/><p>kept</p>`, "kept"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractText([]byte(tt.in))
			if err != nil {
				t.Fatalf("ExtractText: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractText(%q) = %q; want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandSelfClosingRawTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<style type="text/css"/>`, `<style type="text/css"></style>`},
		{`<title/>`, `<title></title>`},
		{`<TEXTAREA rows="2"/>`, `<TEXTAREA rows="2"></TEXTAREA>`},
		{`<xmp/>`, `<xmp></xmp>`},
		{`<br/><p/>`, `<br/><p/>`},
		{`<titles/>`, `<titles/>`},
	}
	for _, tt := range tests {
		if got := string(expandSelfClosingRawTags([]byte(tt.in))); got != tt.want {
			t.Errorf("expandSelfClosingRawTags(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}
