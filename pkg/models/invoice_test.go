package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorRecord(t *testing.T) {
	rec := ErrorRecord("broken.pdf", errors.New("invalid or corrupted PDF document"))

	assert.Equal(t, NotAvailable, rec.VendorName)
	assert.Equal(t, NotAvailable, rec.InvoiceNumber)
	assert.Equal(t, NotAvailable, rec.Date)
	assert.Equal(t, 0.0, rec.TotalAmount)
	assert.Equal(t, NotAvailable, rec.Currency)
	assert.Equal(t, "Unknown", rec.CurrencyRegion)
	assert.Equal(t, CategoryOthers, rec.Category)
	assert.Equal(t, TypeNotInvoice, rec.InvoiceType)
	assert.Equal(t, StatusError, rec.Status)
	assert.True(t, rec.IsIncomplete)
	assert.Equal(t, "broken.pdf", rec.Filename)
	assert.Equal(t, "invalid or corrupted PDF document", rec.Error)
}

func TestErrorRecordNilError(t *testing.T) {
	rec := ErrorRecord("broken.pdf", nil)
	assert.Empty(t, rec.Error)
}

func TestInvoiceRecordJSONFieldNames(t *testing.T) {
	rec := &InvoiceRecord{
		VendorName:  "ABC Traders",
		InvoiceType: TypeInvoice,
		Status:      StatusComplete,
	}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &m))

	for _, key := range []string{
		"vendor_name", "invoice_number", "date", "total_amount",
		"currency", "currency_symbol", "currency_name", "currency_region",
		"category", "invoice_type", "status", "is_incomplete",
	} {
		assert.Contains(t, m, key)
	}

	// empty filename and error stay out of the payload
	assert.NotContains(t, m, "filename")
	assert.NotContains(t, m, "error")
}
