package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"invoicer/internal/config"
	"invoicer/internal/export"
	"invoicer/internal/extract"
	"invoicer/internal/logger"
	"invoicer/internal/pdftext"
	"invoicer/internal/stats"
	"invoicer/pkg/models"
)

var batchCmd = &cobra.Command{
	Use:   "batch [folder-path]",
	Short: "Process all PDFs in a folder and generate CSV/XLSX reports",
	Long: `Process every PDF invoice in a folder, extract structured data from each,
and generate tabular outputs plus a statistics summary.

Each PDF yields exactly one record: documents whose text cannot be read
produce an error record instead of aborting the batch. Extraction runs in
parallel across documents with a worker pool.

Outputs written to the output directory:
  invoices.csv            flat record list
  invoices_dashboard.xlsx Invoices, Summary, and Monthly Spending sheets
  summary.json            batch statistics

Optional environment variables:
  BATCH_WORKERS    - Number of parallel workers (default: 12)
  DEFAULT_CURRENCY - Currency assumed when none is found (default: INR)`,
	Example: `  # Process a folder of invoices
  invoicer batch ./invoices

  # Write outputs to a specific directory with 4 workers
  invoicer batch ./invoices -o ./reports --workers 4

  # Dry run: extract and summarize without writing output files
  invoicer batch ./invoices --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

// batchJob is one PDF queued for a worker.
type batchJob struct {
	FilePath string
	Index    int
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("output", "o", "", "Output directory (default: ./invoicer-out/<batch-id>)")
	batchCmd.Flags().Int("workers", 0, "Number of parallel workers (default: BATCH_WORKERS env or 12)")
	batchCmd.Flags().Bool("dry-run", false, "Extract and summarize but don't write output files")
	batchCmd.Flags().Bool("verbose", false, "Show per-file processing information")
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("batch")

	folderPath := args[0]
	outputDir, _ := cmd.Flags().GetString("output")
	workers, _ := cmd.Flags().GetInt("workers")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	folderInfo, err := os.Stat(folderPath)
	if err != nil {
		return fmt.Errorf("folder not found: %s", folderPath)
	}
	if !folderInfo.IsDir() {
		return fmt.Errorf("path is not a directory: %s", folderPath)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if workers <= 0 {
		workers = cfg.BatchWorkers
	}

	batchID := uuid.New().String()
	if outputDir == "" {
		outputDir = filepath.Join("invoicer-out", batchID)
	}

	log = logger.WithBatchID(batchID)
	log.Info().
		Str("folder", folderPath).
		Str("output", outputDir).
		Int("workers", workers).
		Bool("dry_run", dryRun).
		Msg("Starting batch processing")

	pdfFiles, err := findPDFFiles(folderPath)
	if err != nil {
		return fmt.Errorf("failed to find PDF files: %w", err)
	}
	if len(pdfFiles) == 0 {
		fmt.Println("No PDF files found in folder.")
		return nil
	}

	fmt.Println(strings.Repeat("=", 70))
	fmt.Println("                      INVOICE BATCH PROCESSING")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("Folder: %s\n", folderPath)
	fmt.Printf("Batch ID: %s\n", batchID)
	fmt.Printf("Processing %d PDFs with %d parallel workers...\n", len(pdfFiles), workers)
	if dryRun {
		fmt.Println("Mode: dry run (no output files)")
	}
	fmt.Println()

	ctx, cancel := signalContext(30*time.Minute, log)
	defer cancel()

	extractor := extract.NewExtractorWithConfig(extract.Config{
		DefaultCurrency: cfg.DefaultCurrency,
	})
	records := processPDFsInParallel(ctx, pdfFiles, extractor, workers, log, verbose)

	summary := stats.Summarize(records)

	fmt.Println()
	printSummary(summary)

	if !dryRun {
		if err := writeBatchOutputs(records, summary, outputDir, log); err != nil {
			return err
		}
		fmt.Printf("Outputs written to %s\n", outputDir)
	}
	fmt.Println(strings.Repeat("=", 70))

	log.Info().
		Int("total", summary.TotalFiles).
		Int("valid_invoices", summary.ValidInvoices).
		Int("non_invoices", summary.NonInvoices).
		Float64("total_spend", summary.TotalSpend).
		Msg("Batch processing completed")

	return nil
}

// findPDFFiles finds all PDF files under the specified folder.
func findPDFFiles(folderPath string) ([]string, error) {
	var pdfFiles []string

	err := filepath.Walk(folderPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".pdf") {
			pdfFiles = append(pdfFiles, path)
		}

		return nil
	})

	return pdfFiles, err
}

// processSinglePDF extracts one record for one document. Text extraction
// failures yield an error record so the batch always produces one record per
// input file.
func processSinglePDF(ctx context.Context, reader pdftext.TextExtractor, extractor *extract.Extractor, pdfPath string) *models.InvoiceRecord {
	filename := filepath.Base(pdfPath)

	text, err := reader.ExtractFile(ctx, pdfPath)
	if err != nil {
		return models.ErrorRecord(filename, err)
	}

	record := extractor.Extract(text)
	record.Filename = filename
	return record
}

// processPDFsInParallel runs extraction over a worker pool. Results land at
// their input index, so record order matches file order regardless of which
// worker finishes first.
func processPDFsInParallel(ctx context.Context, pdfFiles []string, extractor *extract.Extractor, numWorkers int, log zerolog.Logger, verbose bool) []*models.InvoiceRecord {
	jobs := make(chan batchJob, len(pdfFiles))
	records := make([]*models.InvoiceRecord, len(pdfFiles))

	reader := pdftext.NewReader()

	var processedCount int
	var mu sync.Mutex

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for job := range jobs {
				log.Debug().
					Int("worker", workerID).
					Str("file", job.FilePath).
					Int("index", job.Index+1).
					Msg("Worker processing PDF")

				record := processSinglePDF(ctx, reader, extractor, job.FilePath)
				records[job.Index] = record

				mu.Lock()
				processedCount++
				fmt.Printf("[%d/%d] %s - %s", processedCount, len(pdfFiles), record.Filename, progressLabel(record))
				if record.Status != models.StatusError && record.TotalAmount > 0 {
					fmt.Printf(" (%s%.2f)", record.CurrencySymbol, record.TotalAmount)
				}
				fmt.Println()
				mu.Unlock()

				if verbose {
					log.Info().
						Str("file", record.Filename).
						Str("vendor", record.VendorName).
						Str("invoice_number", record.InvoiceNumber).
						Float64("amount", record.TotalAmount).
						Str("currency", record.Currency).
						Str("status", record.Status).
						Bool("incomplete", record.IsIncomplete).
						Msg("PDF processed")
				}
			}
		}(w)
	}

	for i, pdfFile := range pdfFiles {
		jobs <- batchJob{FilePath: pdfFile, Index: i}
	}
	close(jobs)

	wg.Wait()

	return records
}

// progressLabel summarizes a record's outcome for the progress line.
func progressLabel(rec *models.InvoiceRecord) string {
	switch {
	case rec.Status == models.StatusError:
		return fmt.Sprintf("error (%s)", rec.Error)
	case rec.InvoiceType == models.TypeNotInvoice:
		return "not an invoice"
	case rec.IsIncomplete:
		return "invoice (incomplete)"
	default:
		return "invoice"
	}
}

// printSummary writes the batch statistics block to stdout.
func printSummary(summary *stats.Summary) {
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("                   SUMMARY")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Total files:         %d\n", summary.TotalFiles)
	fmt.Printf("Valid invoices:      %d\n", summary.ValidInvoices)
	fmt.Printf("Complete invoices:   %d\n", summary.CompleteInvoices)
	fmt.Printf("Incomplete invoices: %d\n", summary.IncompleteInvoices)
	fmt.Printf("Non-invoices:        %d\n", summary.NonInvoices)
	fmt.Printf("Total spend:         %.2f\n", summary.TotalSpend)
	fmt.Printf("Top vendor:          %s\n", summary.TopVendor)
	for code, ct := range summary.CurrencyBreakdown {
		fmt.Printf("  %s (%s): %s%.2f across %d invoices\n", code, ct.Region, ct.Symbol, ct.Total, ct.Count)
	}
	fmt.Println()
}

// writeBatchOutputs writes the CSV, XLSX dashboard, and summary JSON.
func writeBatchOutputs(records []*models.InvoiceRecord, summary *stats.Summary, outputDir string, log zerolog.Logger) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	csvPath := filepath.Join(outputDir, "invoices.csv")
	if err := export.WriteCSV(records, csvPath); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	xlsxPath := filepath.Join(outputDir, "invoices_dashboard.xlsx")
	if err := export.WriteXLSX(records, summary, xlsxPath); err != nil {
		return fmt.Errorf("failed to write XLSX: %w", err)
	}

	summaryPath := filepath.Join(outputDir, "summary.json")
	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := os.WriteFile(summaryPath, summaryJSON, 0644); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	log.Info().
		Str("csv", csvPath).
		Str("xlsx", xlsxPath).
		Str("summary", summaryPath).
		Msg("Batch outputs written")

	return nil
}
