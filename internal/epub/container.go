package epub

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"strings"
)

const (
	containerPath = "META-INF/container.xml"
	opfMediaType  = "application/oebps-package+xml"
)

type containerDoc struct {
	XMLName   xml.Name      `xml:"container"`
	RootFiles []rootFileRef `xml:"rootfiles>rootfile"`
}

type rootFileRef struct {
	FullPath  string `xml:"full-path,attr"`
	MediaType string `xml:"media-type,attr"`
}

// locatePackage returns the archive path of the OPF package document.
// container.xml is authoritative when present; otherwise the first ".opf"
// entry in the archive is used.
func locatePackage(zr *zip.Reader) (string, error) {
	if f := lookupEntry(zr, containerPath); f != nil {
		return packageFromContainer(f)
	}
	for _, f := range zr.File {
		if strings.HasSuffix(strings.ToLower(f.Name), ".opf") {
			return f.Name, nil
		}
	}
	return "", fmt.Errorf("epub: no OPF file found in archive: %w", ErrInvalidEPub)
}

// packageFromContainer picks the rootfile declared with the OPF media type,
// or the first non-empty rootfile when none declares it.
func packageFromContainer(f *zip.File) (string, error) {
	data, err := readEntry(f)
	if err != nil {
		return "", fmt.Errorf("epub: read container.xml: %w", err)
	}

	var doc containerDoc
	if err := xml.Unmarshal(trimBOM(data), &doc); err != nil {
		return "", fmt.Errorf("epub: parse container.xml: %w", err)
	}

	var first string
	for _, rf := range doc.RootFiles {
		p := strings.TrimSpace(rf.FullPath)
		if p == "" {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(rf.MediaType), opfMediaType) {
			return p, nil
		}
		if first == "" {
			first = p
		}
	}
	if first == "" {
		return "", fmt.Errorf("epub: container.xml names no rootfile: %w", ErrInvalidEPub)
	}
	return first, nil
}
