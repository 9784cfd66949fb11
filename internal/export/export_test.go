package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"invoicer/internal/stats"
	"invoicer/pkg/models"
)

func sampleRecords() []*models.InvoiceRecord {
	return []*models.InvoiceRecord{
		{
			Filename:       "abc.pdf",
			VendorName:     "ABC Traders",
			InvoiceNumber:  "INV-2024-001",
			Date:           "2024-01-02",
			TotalAmount:    5000,
			Currency:       "INR",
			CurrencySymbol: "₹",
			CurrencyName:   "Indian Rupee",
			CurrencyRegion: "India",
			Category:       "Others",
			InvoiceType:    models.TypeInvoice,
			Status:         models.StatusComplete,
		},
		{
			Filename:       "uber.pdf",
			VendorName:     "Uber Rides",
			InvoiceNumber:  "UBR-77",
			Date:           "2024-01-20",
			TotalAmount:    420.5,
			Currency:       "USD",
			CurrencySymbol: "$",
			CurrencyName:   "US Dollar",
			CurrencyRegion: "United States",
			Category:       "Travel",
			InvoiceType:    models.TypeInvoice,
			Status:         models.StatusComplete,
		},
		{
			Filename:      "memo.pdf",
			VendorName:    models.NotAvailable,
			InvoiceNumber: models.NotAvailable,
			Date:          "31/31/2024",
			Currency:      models.NotAvailable,
			Category:      "Others",
			InvoiceType:   models.TypeNotInvoice,
			Status:        models.StatusNA,
			IsIncomplete:  true,
		},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoices.csv")
	require.NoError(t, WriteCSV(sampleRecords(), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "ABC Traders", rows[1][1])
	assert.Equal(t, "5000.00", rows[1][4])
	assert.Equal(t, "2024-01-02", rows[1][3])
	assert.Equal(t, "420.50", rows[2][4])
	assert.Equal(t, "true", rows[3][12])
}

func TestWriteCSVEmptyBatchKeepsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteCSV(nil, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}

func TestMonthlyTotals(t *testing.T) {
	records := sampleRecords()
	records = append(records, &models.InvoiceRecord{
		Date:        "2024-02-14",
		TotalAmount: 100,
		InvoiceType: models.TypeInvoice,
	})

	totals := MonthlyTotals(records)

	require.Len(t, totals, 2)
	assert.Equal(t, 5420.5, totals["2024-01"])
	assert.Equal(t, 100.0, totals["2024-02"])
}

func TestMonthlyTotalsSkipsUnparseableDates(t *testing.T) {
	records := []*models.InvoiceRecord{
		{Date: "31/31/2024", TotalAmount: 50, InvoiceType: models.TypeInvoice},
		{Date: models.NotAvailable, TotalAmount: 60, InvoiceType: models.TypeInvoice},
	}

	assert.Empty(t, MonthlyTotals(records))
}

func TestWriteXLSX(t *testing.T) {
	records := sampleRecords()
	summary := stats.Summarize(records)
	path := filepath.Join(t.TempDir(), "dashboard.xlsx")

	require.NoError(t, WriteXLSX(records, summary, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Invoices")
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Monthly Spending")

	vendor, err := f.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "ABC Traders", vendor)

	label, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Total files", label)

	month, err := f.GetCellValue("Monthly Spending", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-01", month)
}
