package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/rs/zerolog"

	"invoicer/internal/logger"
)

// Reader extracts text from PDF documents using their embedded text layer.
// It is stateless apart from its logger and safe for concurrent use.
type Reader struct {
	log zerolog.Logger
}

// NewReader creates a PDF text reader.
func NewReader() *Reader {
	return &Reader{
		log: logger.WithComponent("pdftext"),
	}
}

// ExtractText reads all of r into memory and extracts the text of every page.
// The underlying parser can panic on malformed documents, so failures of any
// kind are contained here and surface as an ExtractionError.
func (rd *Reader) ExtractText(ctx context.Context, r io.Reader) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			rd.log.Warn().Interface("panic", rec).Msg("PDF parser panicked")
			text = ""
			err = NewExtractionError("ExtractText", ErrInvalidPDF, fmt.Sprintf("parser panic: %v", rec))
		}
	}()

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", NewExtractionError("ExtractText", ErrContextCanceled, ctxErr.Error())
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxDocumentSizeBytes+1))
	if err != nil {
		return "", NewExtractionError("ExtractText", ErrExtractionFailed, fmt.Sprintf("read input: %v", err))
	}
	if int64(len(data)) > MaxDocumentSizeBytes {
		return "", NewExtractionError("ExtractText", ErrDocumentTooLarge, "")
	}

	doc, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", NewExtractionError("ExtractText", ErrInvalidPDF, err.Error())
	}

	return rd.extractPages(ctx, doc)
}

// ExtractFile extracts the text of a PDF file on disk.
func (rd *Reader) ExtractFile(ctx context.Context, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", NewExtractionError("ExtractFile", ErrInvalidPDF, err.Error())
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			rd.log.Warn().Err(closeErr).Str("file", path).Msg("Failed to close PDF file")
		}
	}()

	return rd.ExtractText(ctx, f)
}

// extractPages walks the document page by page, joining words in a row with
// spaces and rows with newlines so the line structure the cue patterns anchor
// on survives. A page that fails to decode is skipped; partial text is better
// than none for rule-based extraction.
func (rd *Reader) extractPages(ctx context.Context, doc *pdf.Reader) (string, error) {
	var sb strings.Builder
	for i := 1; i <= doc.NumPage(); i++ {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", NewExtractionError("ExtractText", ErrContextCanceled, ctxErr.Error())
		}

		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}

		rows, rowErr := page.GetTextByRow()
		if rowErr != nil {
			rd.log.Debug().Int("page", i).Err(rowErr).Msg("Skipping unreadable page")
			continue
		}

		for _, row := range rows {
			for j, word := range row.Content {
				if j > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString(word.S)
			}
			sb.WriteString("\n")
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", NewExtractionError("ExtractText", ErrEmptyDocument, "")
	}

	return text, nil
}
