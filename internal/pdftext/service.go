// Package pdftext extracts the text layer from PDF invoices.
//
// It is the upstream collaborator of the extraction core: it supplies raw
// UTF-8 text for one document, with line structure preserved so the core's
// line-anchored cue patterns keep working. Extraction reads the embedded PDF
// text layer only; there is no OCR, so image-only scans surface
// ErrEmptyDocument rather than degraded text.
//
// Implementation Details:
//   - Text is read page by page in row order; words in a row are joined
//     with single spaces and rows are joined with newlines.
//   - Pages that fail to decode are skipped rather than failing the whole
//     document; partial text is better than none for rule-based extraction.
//   - Documents over MaxDocumentSizeBytes are rejected up front.
package pdftext

import (
	"context"
	"io"
)

// MaxDocumentSizeBytes is the upper bound for a single PDF document.
// Invoices are small; anything larger is almost certainly not one.
const MaxDocumentSizeBytes int64 = 50 * 1024 * 1024

// TextExtractor defines the interface for PDF text extraction services.
type TextExtractor interface {
	// ExtractText extracts the text content of a PDF document.
	// Returns the concatenated text of all pages in reading order.
	ExtractText(ctx context.Context, r io.Reader) (string, error)

	// ExtractFile extracts the text content of a PDF file on disk.
	ExtractFile(ctx context.Context, path string) (string, error)
}
