package export

import (
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"invoicer/internal/stats"
	"invoicer/pkg/models"
)

const (
	invoicesSheet = "Invoices"
	summarySheet  = "Summary"
	monthlySheet  = "Monthly Spending"
)

// WriteXLSX writes the dashboard workbook: an Invoices sheet with every
// record, a Summary sheet with the batch statistics, and a Monthly Spending
// sheet with per-month totals and a bar chart over them.
func WriteXLSX(records []*models.InvoiceRecord, summary *stats.Summary, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", invoicesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := writeInvoicesSheet(f, records); err != nil {
		return err
	}
	if err := writeSummarySheet(f, summary); err != nil {
		return err
	}
	if err := writeMonthlySheet(f, records); err != nil {
		return err
	}

	if idx, err := f.GetSheetIndex(invoicesSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("xlsx write: %w", err)
	}
	return nil
}

func writeInvoicesSheet(f *excelize.File, records []*models.InvoiceRecord) error {
	for i, h := range csvHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(invoicesSheet, cell, h); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}

	for r, rec := range records {
		values := []interface{}{
			rec.Filename,
			rec.VendorName,
			rec.InvoiceNumber,
			rec.Date,
			rec.TotalAmount,
			rec.Currency,
			rec.CurrencySymbol,
			rec.CurrencyName,
			rec.CurrencyRegion,
			rec.Category,
			rec.InvoiceType,
			rec.Status,
			rec.IsIncomplete,
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(invoicesSheet, cell, v); err != nil {
				return fmt.Errorf("write row %d: %w", r+2, err)
			}
		}
	}

	// Widen the text-heavy columns.
	_ = f.SetColWidth(invoicesSheet, "A", "B", 28)
	_ = f.SetColWidth(invoicesSheet, "C", "D", 16)
	_ = f.SetColWidth(invoicesSheet, "E", "I", 14)
	_ = f.SetColWidth(invoicesSheet, "J", "L", 16)

	return nil
}

func writeSummarySheet(f *excelize.File, summary *stats.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Total files", summary.TotalFiles},
		{"Valid invoices", summary.ValidInvoices},
		{"Complete invoices", summary.CompleteInvoices},
		{"Incomplete invoices", summary.IncompleteInvoices},
		{"Non-invoices", summary.NonInvoices},
		{"Total spend", summary.TotalSpend},
		{"Top vendor", summary.TopVendor},
		{"Biggest invoice", fmt.Sprintf("%s (%.2f)", summary.BiggestInvoice.Vendor, summary.BiggestInvoice.Amount)},
	}

	currencies := make([]string, 0, len(summary.CurrencyBreakdown))
	for code := range summary.CurrencyBreakdown {
		currencies = append(currencies, code)
	}
	sort.Strings(currencies)
	for _, code := range currencies {
		ct := summary.CurrencyBreakdown[code]
		rows = append(rows, []interface{}{
			fmt.Sprintf("Spend in %s (%s)", code, ct.Region),
			fmt.Sprintf("%s %.2f across %d invoices", ct.Symbol, ct.Total, ct.Count),
		})
	}

	for r, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+1)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("write summary: %w", err)
			}
		}
	}

	_ = f.SetColWidth(summarySheet, "A", "A", 28)
	_ = f.SetColWidth(summarySheet, "B", "B", 36)

	return nil
}

// writeMonthlySheet tabulates spend per calendar month over invoice records
// with a parseable date and charts the result. Records without a normalized
// date are left out, matching how the original dashboard handled them.
func writeMonthlySheet(f *excelize.File, records []*models.InvoiceRecord) error {
	if _, err := f.NewSheet(monthlySheet); err != nil {
		return fmt.Errorf("new sheet: %w", err)
	}

	totals := MonthlyTotals(records)

	_ = f.SetCellValue(monthlySheet, "A1", "Month")
	_ = f.SetCellValue(monthlySheet, "B1", "Total Amount")

	months := make([]string, 0, len(totals))
	for m := range totals {
		months = append(months, m)
	}
	sort.Strings(months)

	for i, m := range months {
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", i+2), m)
		_ = f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", i+2), totals[m])
	}

	_ = f.SetColWidth(monthlySheet, "A", "B", 16)

	if len(months) == 0 {
		return nil
	}

	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", monthlySheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", monthlySheet, len(months)+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", monthlySheet, len(months)+1),
		}},
		Title: []excelize.RichTextRun{{Text: "Monthly Spending"}},
	}
	if err := f.AddChart(monthlySheet, "D2", chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	return nil
}

// MonthlyTotals sums invoice amounts by YYYY-MM month key. Only records
// classified as invoices with a date in canonical form contribute.
func MonthlyTotals(records []*models.InvoiceRecord) map[string]float64 {
	totals := make(map[string]float64)
	for _, rec := range records {
		if rec.InvoiceType != models.TypeInvoice || rec.Date == models.NotAvailable {
			continue
		}
		t, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}
		totals[t.Format("2006-01")] += rec.TotalAmount
	}
	return totals
}
