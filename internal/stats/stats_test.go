package stats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicer/pkg/models"
)

func invoiceRecord(vendor string, amount float64, currency string, incomplete bool) *models.InvoiceRecord {
	rec := &models.InvoiceRecord{
		VendorName:   vendor,
		TotalAmount:  amount,
		Currency:     currency,
		InvoiceType:  models.TypeInvoice,
		Status:       models.StatusComplete,
		IsIncomplete: incomplete,
	}
	if currency == "INR" {
		rec.CurrencySymbol = "₹"
		rec.CurrencyRegion = "India"
	}
	if currency == "USD" {
		rec.CurrencySymbol = "$"
		rec.CurrencyRegion = "United States"
	}
	return rec
}

func TestSummarizeMixedBatch(t *testing.T) {
	records := []*models.InvoiceRecord{
		invoiceRecord("ABC Traders", 5000, "INR", false),
		invoiceRecord("ABC Traders", 1200, "INR", false),
		invoiceRecord("Uber Rides", 4200, "USD", true),
		{
			VendorName:  models.NotAvailable,
			InvoiceType: models.TypeNotInvoice,
			Status:      models.StatusNA,
		},
		models.ErrorRecord("broken.pdf", errors.New("invalid or corrupted PDF document")),
	}

	s := Summarize(records)

	assert.Equal(t, 5, s.TotalFiles)
	assert.Equal(t, 3, s.ValidInvoices)
	assert.Equal(t, 2, s.CompleteInvoices)
	assert.Equal(t, 1, s.IncompleteInvoices)
	assert.Equal(t, 2, s.NonInvoices)
	assert.Equal(t, 10400.0, s.TotalSpend)

	assert.Equal(t, "ABC Traders", s.TopVendor)
	assert.Equal(t, "ABC Traders", s.BiggestInvoice.Vendor)
	assert.Equal(t, 5000.0, s.BiggestInvoice.Amount)

	require.Len(t, s.CurrencyBreakdown, 2)
	inr := s.CurrencyBreakdown["INR"]
	assert.Equal(t, 6200.0, inr.Total)
	assert.Equal(t, 2, inr.Count)
	assert.Equal(t, "₹", inr.Symbol)
	assert.Equal(t, "India", inr.Region)

	usd := s.CurrencyBreakdown["USD"]
	assert.Equal(t, 4200.0, usd.Total)
	assert.Equal(t, 1, usd.Count)
}

func TestSummarizeEmptyBatch(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.TotalFiles)
	assert.Equal(t, 0, s.ValidInvoices)
	assert.Equal(t, models.NotAvailable, s.TopVendor)
	assert.Equal(t, models.NotAvailable, s.BiggestInvoice.Vendor)
	assert.Empty(t, s.CurrencyBreakdown)
}

func TestSummarizeSkipsSentinelVendorAndCurrency(t *testing.T) {
	rec := invoiceRecord(models.NotAvailable, 300, models.NotAvailable, true)
	rec.Status = models.StatusPartial

	s := Summarize([]*models.InvoiceRecord{rec})

	assert.Equal(t, 1, s.ValidInvoices)
	assert.Equal(t, 300.0, s.TotalSpend)
	// spend still counts, but sentinel values never become a "top vendor"
	// or a currency bucket
	assert.Equal(t, models.NotAvailable, s.TopVendor)
	assert.Empty(t, s.CurrencyBreakdown)
	// the biggest invoice is tracked by amount even without a vendor name
	assert.Equal(t, 300.0, s.BiggestInvoice.Amount)
}

func TestSummarizeErrorRecordsAreNonInvoices(t *testing.T) {
	records := []*models.InvoiceRecord{
		models.ErrorRecord("a.pdf", errors.New("boom")),
		models.ErrorRecord("b.pdf", errors.New("boom")),
	}

	s := Summarize(records)

	assert.Equal(t, 2, s.TotalFiles)
	assert.Equal(t, 0, s.ValidInvoices)
	assert.Equal(t, 2, s.NonInvoices)
	assert.Equal(t, 0.0, s.TotalSpend)
	assert.Equal(t, models.NotAvailable, s.TopVendor)
}
