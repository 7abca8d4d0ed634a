package extract

import (
	"errors"
	"fmt"
)

// ErrInvalidUTF8 is the cause recorded when an item is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// NotFoundError reports that the input path does not name a readable file.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("EPUB file not found at %q", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExtractionError reports a failure to read the container or one of its
// items. Item is empty when the failure is not tied to a single item.
type ExtractionError struct {
	Path string
	Item string
	Err  error
}

func (e *ExtractionError) Error() string {
	if e.Item != "" {
		return fmt.Sprintf("error processing EPUB file %q: item %s: %v", e.Path, e.Item, e.Err)
	}
	return fmt.Sprintf("error processing EPUB file %q: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
