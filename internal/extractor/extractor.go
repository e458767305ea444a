// Package extractor converts uploaded résumé documents into plain text.
// Formatting and layout are discarded; downstream matching only needs the
// visible text stream.
package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Extractor converts raw document bytes into plain text.
type Extractor interface {
	Extract(r io.Reader, filename string) (string, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
}

// ForFile returns the appropriate extractor for a filename.
func ForFile(filename string) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// Extract runs the extractor for filename over data, enforcing the byte
// limit (0 means unlimited) and honoring context cancellation. Pathological
// documents must not block a serving goroutine indefinitely, so the work
// runs on its own goroutine; on deadline the result is abandoned and
// ErrTimeoutExceeded returned.
func Extract(ctx context.Context, data []byte, filename string, maxBytes int64) (string, error) {
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: %d bytes (limit %d)", ErrDocumentTooLarge, len(data), maxBytes)
	}

	ex, err := ForFile(filename)
	if err != nil {
		return "", err
	}

	if ctx.Err() != nil {
		return "", fmt.Errorf("extract %s: %w", filename, ErrTimeoutExceeded)
	}

	type result struct {
		text string
		err  error
	}
	ch := make(chan result, 1)
	go func() {
		text, err := ex.Extract(bytes.NewReader(data), filename)
		ch <- result{text: text, err: err}
	}()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", &ExtractionError{Filename: filename, Err: res.err}
		}
		return res.text, nil
	case <-ctx.Done():
		return "", fmt.Errorf("extract %s: %w", filename, ErrTimeoutExceeded)
	}
}
