package pdftext

import (
	"errors"
	"fmt"
)

// Common text extraction errors
var (
	// ErrInvalidPDF is returned when the provided data is not a valid PDF
	// document.
	ErrInvalidPDF = errors.New("invalid or corrupted PDF document")

	// ErrExtractionFailed is returned when the PDF could be opened but its
	// text content could not be read.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrEmptyDocument is returned when the PDF contains no readable text.
	// Scanned image-only PDFs fall into this bucket; there is no OCR here.
	ErrEmptyDocument = errors.New("document contains no readable text")

	// ErrDocumentTooLarge is returned when the PDF exceeds the size limit.
	ErrDocumentTooLarge = errors.New("document exceeds maximum size limit")

	// ErrContextCanceled is returned when extraction is canceled via context.
	ErrContextCanceled = errors.New("text extraction was canceled")
)

// ExtractionError wraps errors with additional context about the extraction
// failure. Callers substitute a sentinel error record for the document when
// they receive one; extraction failures never abort a batch.
type ExtractionError struct {
	// Op is the operation that failed (e.g., "ExtractText", "OpenPDF").
	Op string

	// Err is the underlying error.
	Err error

	// Details provides additional context about the failure.
	Details string
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("pdftext: %s failed: %s: %v", e.Op, e.Details, e.Err)
	}
	return fmt.Sprintf("pdftext: %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is implements error matching for errors.Is chains.
func (e *ExtractionError) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// NewExtractionError creates a new ExtractionError with the specified
// operation and underlying error.
func NewExtractionError(op string, err error, details string) *ExtractionError {
	return &ExtractionError{
		Op:      op,
		Err:     err,
		Details: details,
	}
}

// WrapExtractionError wraps an error as an ExtractionError if it isn't
// already one.
func WrapExtractionError(op string, err error, details string) error {
	if err == nil {
		return nil
	}

	var extErr *ExtractionError
	if errors.As(err, &extErr) {
		return err
	}

	return NewExtractionError(op, err, details)
}
