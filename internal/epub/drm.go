package epub

import (
	"archive/zip"
	"encoding/xml"
)

const (
	encryptionPath = "META-INF/encryption.xml"
	fairPlayPath   = "META-INF/sinf.xml"
)

// Font obfuscation algorithms. These scramble embedded fonts only and leave
// text documents readable.
var obfuscationAlgorithms = map[string]bool{
	"http://www.idpf.org/2008/embedding": true,
	"http://ns.adobe.com/pdf/enc#RC":     true,
}

type encryptionDoc struct {
	XMLName xml.Name `xml:"encryption"`
	Data    []struct {
		Method struct {
			Algorithm string `xml:"Algorithm,attr"`
		} `xml:"EncryptionMethod"`
	} `xml:"EncryptedData"`
}

// checkDRM reports whether the container only uses font obfuscation.
// Any other encryption entry, an unreadable encryption.xml, or a FairPlay
// marker yields ErrDRMProtected.
func checkDRM(zr *zip.Reader) (obfuscatedFonts bool, err error) {
	if lookupEntry(zr, fairPlayPath) != nil {
		return false, ErrDRMProtected
	}
	f := lookupEntry(zr, encryptionPath)
	if f == nil {
		return false, nil
	}

	data, err := readEntry(f)
	if err != nil {
		return false, err
	}
	var doc encryptionDoc
	if err := xml.Unmarshal(trimBOM(data), &doc); err != nil {
		return false, ErrDRMProtected
	}

	for _, d := range doc.Data {
		if !obfuscationAlgorithms[d.Method.Algorithm] {
			return false, ErrDRMProtected
		}
		obfuscatedFonts = true
	}
	return obfuscatedFonts, nil
}
