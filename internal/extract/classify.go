package extract

import "invoicer/pkg/models"

// classifyInvoice scores the extracted evidence and decides whether the
// document is an invoice and how complete the extraction was. The score is a
// fixed linear rule over four signals:
//
//	+1  vendor resolved and longer than 2 characters
//	+2  invoice number resolved
//	+2  amount greater than zero
//	+1  any invoice keyword present in the text
//
// score >= 4 → (Invoice, Complete); score >= 2 → (Invoice, Partial data);
// otherwise (Not an invoice, N/A). The function never fails.
func classifyInvoice(text, vendor, invoiceNumber string, amount float64) (invoiceType, status string) {
	score := 0
	if vendor != models.NotAvailable && len(vendor) > 2 {
		score++
	}
	if invoiceNumber != models.NotAvailable {
		score += 2
	}
	if amount > 0 {
		score += 2
	}
	if invoiceKeywordPattern.MatchString(text) {
		score++
	}

	switch {
	case score >= 4:
		return models.TypeInvoice, models.StatusComplete
	case score >= 2:
		return models.TypeInvoice, models.StatusPartial
	default:
		return models.TypeNotInvoice, models.StatusNA
	}
}
