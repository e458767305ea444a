package extractor

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers. None of these are retriable with the
// same input except ErrDocumentTooLarge and ErrTimeoutExceeded, which a
// caller may retry with a smaller document or a longer deadline.
var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDocumentTooLarge  = errors.New("document exceeds size limit")
	ErrTimeoutExceeded   = errors.New("extraction timed out")
)

// ExtractionError wraps the underlying cause of a failed extraction
// (corrupt file, unreadable stream). Extraction is all-or-nothing: when this
// error is returned no partial text was produced.
type ExtractionError struct {
	Filename string
	Err      error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extract %s: %v", e.Filename, e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }
