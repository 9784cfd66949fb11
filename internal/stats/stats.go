// Package stats derives a batch-level summary from extracted invoice records.
// Everything here is a pure function over the finished records; it never
// mutates them and holds no state between batches.
package stats

import "invoicer/pkg/models"

// CurrencyTotal aggregates spend for one resolved currency.
type CurrencyTotal struct {
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
	Symbol string  `json:"symbol"`
	Region string  `json:"region"`
}

// BiggestInvoice identifies the largest single invoice of a batch.
type BiggestInvoice struct {
	Vendor string  `json:"vendor"`
	Amount float64 `json:"amount"`
}

// Summary is the statistics block consumed alongside the record list.
type Summary struct {
	TotalFiles         int                      `json:"total_files"`
	ValidInvoices      int                      `json:"valid_invoices"`
	CompleteInvoices   int                      `json:"complete_invoices"`
	IncompleteInvoices int                      `json:"incomplete_invoices"`
	NonInvoices        int                      `json:"non_invoices"`
	TotalSpend         float64                  `json:"total_spend"`
	TopVendor          string                   `json:"top_vendor"`
	BiggestInvoice     BiggestInvoice           `json:"biggest_invoice"`
	CurrencyBreakdown  map[string]CurrencyTotal `json:"currency_breakdown"`
}

// Summarize computes batch statistics over the given records. Only records
// classified as invoices contribute to spend figures; error records carry
// the not-an-invoice type and land in NonInvoices. Records with sentinel
// vendor or currency values are excluded from the top-vendor and
// per-currency aggregations.
func Summarize(records []*models.InvoiceRecord) *Summary {
	s := &Summary{
		TotalFiles:        len(records),
		TopVendor:         models.NotAvailable,
		BiggestInvoice:    BiggestInvoice{Vendor: models.NotAvailable},
		CurrencyBreakdown: make(map[string]CurrencyTotal),
	}

	vendorTotals := make(map[string]float64)

	for _, rec := range records {
		switch rec.InvoiceType {
		case models.TypeInvoice:
			s.ValidInvoices++
			if rec.IsIncomplete {
				s.IncompleteInvoices++
			} else {
				s.CompleteInvoices++
			}

			s.TotalSpend += rec.TotalAmount

			if rec.VendorName != models.NotAvailable {
				vendorTotals[rec.VendorName] += rec.TotalAmount
			}

			if rec.TotalAmount > s.BiggestInvoice.Amount {
				s.BiggestInvoice = BiggestInvoice{
					Vendor: rec.VendorName,
					Amount: rec.TotalAmount,
				}
			}

			if rec.Currency != models.NotAvailable {
				ct := s.CurrencyBreakdown[rec.Currency]
				if ct.Count == 0 {
					ct.Symbol = rec.CurrencySymbol
					ct.Region = rec.CurrencyRegion
				}
				ct.Total += rec.TotalAmount
				ct.Count++
				s.CurrencyBreakdown[rec.Currency] = ct
			}

		case models.TypeNotInvoice:
			s.NonInvoices++
		}
	}

	var topTotal float64
	for vendor, total := range vendorTotals {
		if total > topTotal || (total == topTotal && s.TopVendor == models.NotAvailable) {
			topTotal = total
			s.TopVendor = vendor
		}
	}

	return s
}
