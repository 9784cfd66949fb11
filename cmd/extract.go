package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/extract"
	"invoicer/internal/logger"
	"invoicer/internal/pdftext"
	"invoicer/pkg/models"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract structured invoice data from a single PDF",
	Long: `Process one PDF invoice and extract structured data: vendor, invoice
number, date, total amount, currency (with display metadata), and spend
category. The extracted evidence is scored to classify the document as a
complete invoice, a partial one, or not an invoice at all.

Extraction is entirely rule-based and runs offline; the PDF's embedded
text layer is read directly (no OCR). The output is always a JSON record.`,
	Example: `  # Extract invoice data to stdout (JSON format)
  invoicer extract invoice.pdf

  # Save extracted data to a JSON file
  invoicer extract invoice.pdf -o invoice-data.json

  # Treat the input as plain text instead of a PDF
  invoicer extract invoice.txt --text

  # Process with a custom timeout
  invoicer extract large-invoice.pdf --timeout 60`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

// ExtractOutput is the JSON output structure for single-document extraction.
type ExtractOutput struct {
	// Invoice contains the extracted record.
	Invoice *models.InvoiceRecord `json:"invoice"`

	// Metadata contains processing information.
	Metadata ProcessingMetadata `json:"metadata"`
}

// ProcessingMetadata contains information about the processing operation.
type ProcessingMetadata struct {
	FileName           string        `json:"file_name"`
	FileSize           int64         `json:"file_size_bytes"`
	ProcessedAt        time.Time     `json:"processed_at"`
	ProcessingDuration time.Duration `json:"processing_duration"`
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().Bool("text", false, "Treat the input file as plain text, not PDF")
	extractCmd.Flags().Int("timeout", 30, "Processing timeout in seconds")
}

func runExtract(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("extract")

	outputPath, _ := cmd.Flags().GetString("output")
	plainText, _ := cmd.Flags().GetBool("text")
	timeoutSecs, _ := cmd.Flags().GetInt("timeout")

	inputPath := args[0]

	log.Info().
		Str("file", inputPath).
		Str("output", outputPath).
		Bool("text", plainText).
		Int("timeout", timeoutSecs).
		Msg("Starting invoice extraction")

	fileInfo, err := validateInputFile(inputPath, log)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(time.Duration(timeoutSecs)*time.Second, log)
	defer cancel()

	text, err := readDocumentText(ctx, inputPath, plainText, log)
	if err != nil {
		return handleExtractionError(err, log)
	}

	startTime := time.Now()
	record := newExtractor().Extract(text)
	record.Filename = filepath.Base(inputPath)
	processingDuration := time.Since(startTime)

	log.Info().
		Str("vendor", record.VendorName).
		Str("invoice_number", record.InvoiceNumber).
		Float64("amount", record.TotalAmount).
		Str("currency", record.Currency).
		Str("type", record.InvoiceType).
		Str("status", record.Status).
		Dur("duration", processingDuration).
		Msg("Invoice extraction completed")

	output := ExtractOutput{
		Invoice: record,
		Metadata: ProcessingMetadata{
			FileName:           filepath.Base(fileInfo.Name()),
			FileSize:           fileInfo.Size(),
			ProcessedAt:        time.Now(),
			ProcessingDuration: processingDuration,
		},
	}

	return outputJSON(output, outputPath, log)
}

// newExtractor builds the extractor with the configured default currency.
func newExtractor() *extract.Extractor {
	cfg, err := config.Load()
	if err != nil {
		return extract.NewExtractor()
	}
	return extract.NewExtractorWithConfig(extract.Config{
		DefaultCurrency: cfg.DefaultCurrency,
	})
}

// readDocumentText obtains the raw text for one document, either from the
// PDF text layer or directly from a plain text file.
func readDocumentText(ctx context.Context, path string, plainText bool, log zerolog.Logger) (string, error) {
	if plainText {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read text file: %w", err)
		}
		return string(data), nil
	}

	log.Debug().Str("file", path).Msg("Extracting PDF text layer")
	return pdftext.NewReader().ExtractFile(ctx, path)
}

// validateInputFile checks the input path before processing.
func validateInputFile(path string, log zerolog.Logger) (os.FileInfo, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Error().
				Str("file", path).
				Msg("Input file not found")
			return nil, fmt.Errorf("input file not found: %s", path)
		}
		if os.IsPermission(err) {
			log.Error().
				Str("file", path).
				Msg("Permission denied accessing input file")
			return nil, fmt.Errorf("permission denied accessing input file: %s", path)
		}
		return nil, fmt.Errorf("error accessing input file: %w", err)
	}

	if !fileInfo.Mode().IsRegular() {
		log.Error().
			Str("file", path).
			Msg("Path is not a regular file")
		return nil, fmt.Errorf("path is not a regular file: %s", path)
	}

	if fileInfo.Size() == 0 {
		log.Error().
			Str("file", path).
			Msg("Input file is empty")
		return nil, fmt.Errorf("input file is empty: %s", path)
	}

	if fileInfo.Size() > pdftext.MaxDocumentSizeBytes {
		log.Error().
			Str("file", path).
			Int64("size", fileInfo.Size()).
			Int64("max_size", pdftext.MaxDocumentSizeBytes).
			Msg("Input file exceeds maximum size limit")
		return nil, fmt.Errorf("input file too large (%d bytes), maximum size is %d bytes",
			fileInfo.Size(), pdftext.MaxDocumentSizeBytes)
	}

	return fileInfo, nil
}

// signalContext creates a context with timeout that is also canceled on
// SIGINT/SIGTERM.
func signalContext(timeout time.Duration, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			log.Info().
				Str("signal", sig.String()).
				Msg("Received interrupt signal, canceling processing")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// handleExtractionError provides user-friendly messages for extraction
// failures.
func handleExtractionError(err error, log zerolog.Logger) error {
	log.Error().Err(err).Msg("Text extraction failed")

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("extraction timed out. Try increasing --timeout")
	case errors.Is(err, context.Canceled), errors.Is(err, pdftext.ErrContextCanceled):
		return fmt.Errorf("extraction was canceled")
	case errors.Is(err, pdftext.ErrInvalidPDF):
		return fmt.Errorf("invalid or corrupted PDF file. Please check the file integrity")
	case errors.Is(err, pdftext.ErrDocumentTooLarge):
		return fmt.Errorf("PDF file is too large. Try compressing or splitting the file")
	case errors.Is(err, pdftext.ErrEmptyDocument):
		return fmt.Errorf("the PDF contains no readable text. Scanned image-only documents are not supported")
	default:
		return fmt.Errorf("text extraction failed: %w", err)
	}
}

// outputJSON marshals v and writes it to outputPath or stdout.
func outputJSON(v interface{}, outputPath string, log zerolog.Logger) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal output to JSON")
		return fmt.Errorf("failed to create JSON output: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			log.Error().
				Err(err).
				Str("output_file", outputPath).
				Msg("Failed to write output file")
			return fmt.Errorf("failed to write output file: %w", err)
		}

		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(jsonData)).
			Msg("Extraction results written to file")
		return nil
	}

	if _, err := os.Stdout.Write(jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to write to stdout")
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println()

	return nil
}
