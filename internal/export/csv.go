// Package export writes extracted invoice records to the tabular output
// formats consumed downstream: a flat CSV and an XLSX dashboard workbook
// with summary and monthly-spending sheets.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"invoicer/pkg/models"
)

// csvHeader fixes the column order of the CSV output. Downstream consumers
// key on these names, so the order and spelling are part of the contract.
var csvHeader = []string{
	"filename",
	"vendor_name",
	"invoice_number",
	"date",
	"total_amount",
	"currency",
	"currency_symbol",
	"currency_name",
	"currency_region",
	"category",
	"invoice_type",
	"status",
	"is_incomplete",
}

// WriteCSV writes all records to a CSV file at path. An empty record list
// still produces a file with the header row.
func WriteCSV(records []*models.InvoiceRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.Filename,
			rec.VendorName,
			rec.InvoiceNumber,
			rec.Date,
			strconv.FormatFloat(rec.TotalAmount, 'f', 2, 64),
			rec.Currency,
			rec.CurrencySymbol,
			rec.CurrencyName,
			rec.CurrencyRegion,
			rec.Category,
			rec.InvoiceType,
			rec.Status,
			strconv.FormatBool(rec.IsIncomplete),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
