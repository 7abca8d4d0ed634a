package epub

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"strings"
)

type opfPackage struct {
	XMLName  xml.Name `xml:"package"`
	Version  string   `xml:"version,attr"`
	Metadata struct {
		Titles    []dcElement `xml:"http://purl.org/dc/elements/1.1/ title"`
		Creators  []dcElement `xml:"http://purl.org/dc/elements/1.1/ creator"`
		Languages []dcElement `xml:"http://purl.org/dc/elements/1.1/ language"`
	} `xml:"metadata"`
	Manifest struct {
		Items []opfItem `xml:"item"`
	} `xml:"manifest"`
}

type dcElement struct {
	Value string `xml:",chardata"`
}

type opfItem struct {
	ID        string `xml:"id,attr"`
	Href      string `xml:"href,attr"`
	MediaType string `xml:"media-type,attr"`
}

// htmlEntities maps the HTML named entities that show up in real-world OPF
// files to numeric references, since encoding/xml only knows the five XML
// entities.
var htmlEntities = map[string]string{
	"nbsp": "&#160;", "mdash": "&#8212;", "ndash": "&#8211;", "hellip": "&#8230;",
	"lsquo": "&#8216;", "rsquo": "&#8217;", "ldquo": "&#8220;", "rdquo": "&#8221;",
	"copy": "&#169;", "reg": "&#174;", "trade": "&#8482;",
	"eacute": "&#233;", "egrave": "&#232;", "agrave": "&#224;", "ouml": "&#246;",
	"uuml": "&#252;", "auml": "&#228;", "ccedil": "&#231;", "ntilde": "&#241;",
	"laquo": "&#171;", "raquo": "&#187;",
}

var htmlEntityRe = regexp.MustCompile(`(?i)&([a-z]+);`)

func replaceHTMLEntities(data []byte) []byte {
	return htmlEntityRe.ReplaceAllFunc(data, func(m []byte) []byte {
		if r, ok := htmlEntities[strings.ToLower(string(m[1:len(m)-1]))]; ok {
			return []byte(r)
		}
		return m
	})
}

func parsePackage(data []byte) (*opfPackage, error) {
	var pkg opfPackage
	if err := xml.Unmarshal(replaceHTMLEntities(trimBOM(data)), &pkg); err != nil {
		return nil, fmt.Errorf("epub: parse OPF: %w", err)
	}
	if pkg.Version == "" {
		pkg.Version = "2.0"
	}
	return &pkg, nil
}

// Metadata is the subset of Dublin Core metadata used for diagnostics.
type Metadata struct {
	Version   string
	Titles    []string
	Authors   []string
	Languages []string
}

func (p *opfPackage) metadata() Metadata {
	return Metadata{
		Version:   p.Version,
		Titles:    dcValues(p.Metadata.Titles),
		Authors:   dcValues(p.Metadata.Creators),
		Languages: dcValues(p.Metadata.Languages),
	}
}

func dcValues(els []dcElement) []string {
	var out []string
	for _, e := range els {
		if v := strings.TrimSpace(e.Value); v != "" {
			out = append(out, v)
		}
	}
	return out
}
