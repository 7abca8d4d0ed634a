// Package epub reads the parts of an ePub container needed for text analysis.
//
// A Book exposes the OPF manifest as a list of [Item] values in container
// order. Document items (XHTML or HTML) are read lazily with [Item.Content]
// and reduced to visible text with [ExtractText]:
//
//	book, err := epub.Open("book.epub")
//	if err != nil {
//	    return err
//	}
//	defer book.Close()
//
//	for _, it := range book.Items() {
//	    if !it.IsDocument() {
//	        continue
//	    }
//	    data, err := it.Content()
//	    ...
//	    text, err := epub.ExtractText(data)
//	    ...
//	}
//
// DRM-encrypted containers are rejected with [ErrDRMProtected]. Structural
// failures wrap [ErrInvalidEPub].
package epub
