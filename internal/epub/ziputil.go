package epub

import (
	"archive/zip"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
)

// maxEntrySize caps the decompressed size of any single archive entry.
const maxEntrySize int64 = 256 * 1024 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// lookupEntry returns the entry named name, preferring an exact match and
// falling back to a case-insensitive one. It returns nil when nothing matches.
func lookupEntry(zr *zip.Reader, name string) *zip.File {
	var folded *zip.File
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
		if folded == nil && strings.EqualFold(f.Name, name) {
			folded = f
		}
	}
	return folded
}

// resolveHref resolves a manifest href against the directory of base
// (normally the OPF path). Percent-escapes are decoded. Absolute hrefs and
// hrefs that climb above the archive root resolve to "".
func resolveHref(base, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "/") {
		return ""
	}
	if i := strings.IndexByte(href, '#'); i >= 0 {
		href = href[:i]
	}
	p := path.Join(path.Dir(base), unescapeHref(href))
	if !insideArchive(p) {
		return ""
	}
	return p
}

// unescapeHref decodes percent-escapes, returning href unchanged when it is
// not validly escaped.
func unescapeHref(href string) string {
	if decoded, err := url.PathUnescape(href); err == nil {
		return decoded
	}
	return href
}

// insideArchive reports whether p stays below the archive root.
func insideArchive(p string) bool {
	p = path.Clean(p)
	if strings.HasPrefix(p, "/") {
		return false
	}
	return p != ".." && !strings.HasPrefix(p, "../")
}

func trimBOM(data []byte) []byte {
	if len(data) >= len(utf8BOM) && string(data[:len(utf8BOM)]) == string(utf8BOM) {
		return data[len(utf8BOM):]
	}
	return data
}

func readEntry(f *zip.File) ([]byte, error) {
	return readEntryLimit(f, maxEntrySize)
}

// readEntryLimit reads f fully, refusing unsafe names and entries whose
// declared or actual decompressed size exceeds limit.
func readEntryLimit(f *zip.File, limit int64) ([]byte, error) {
	if !insideArchive(f.Name) {
		return nil, fmt.Errorf("epub: unsafe zip entry path: %s", f.Name)
	}
	if f.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("epub: zip entry %s too large: %d bytes (max %d)", f.Name, f.UncompressedSize64, limit)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("epub: open zip entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	// The header size can lie, so read one byte past the limit to notice.
	data, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, fmt.Errorf("epub: read zip entry %s: %w", f.Name, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("epub: zip entry %s decompressed size exceeds limit (%d bytes)", f.Name, limit)
	}
	return data, nil
}
