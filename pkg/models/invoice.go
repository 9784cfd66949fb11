package models

// Sentinel values shared by every consumer of an InvoiceRecord. Downstream
// writers (CSV, XLSX, statistics) match on these exact spellings, so they are
// defined once here rather than inlined at call sites.
const (
	// NotAvailable marks a text field that could not be determined.
	NotAvailable = "N/A"

	// Invoice types.
	TypeInvoice    = "Invoice"
	TypeNotInvoice = "Not an invoice"

	// Extraction statuses.
	StatusComplete = "Complete"
	StatusPartial  = "Partial data"
	StatusNA       = "N/A"
	StatusError    = "Error"
)

// Spend categories. CategoryOthers is the default when no keyword group
// matches.
const (
	CategoryFood     = "Food"
	CategoryShopping = "Shopping"
	CategoryBills    = "Bills"
	CategoryTravel   = "Travel"
	CategoryOthers   = "Others"
)

// InvoiceRecord is the single output entity produced for one document.
// A record is constructed once per input and never mutated afterwards.
type InvoiceRecord struct {
	// Core extracted fields. Text fields fall back to NotAvailable,
	// TotalAmount falls back to 0.0 ("not determined", never negative).
	VendorName    string  `json:"vendor_name"`
	InvoiceNumber string  `json:"invoice_number"`
	Date          string  `json:"date"` // YYYY-MM-DD, raw string when unparseable, or N/A
	TotalAmount   float64 `json:"total_amount"`

	// Currency and its display metadata are always jointly present:
	// either a resolved code with table metadata, or the N/A + "Unknown"
	// triple.
	Currency       string `json:"currency"`
	CurrencySymbol string `json:"currency_symbol"`
	CurrencyName   string `json:"currency_name"`
	CurrencyRegion string `json:"currency_region"`

	Category string `json:"category"`

	// InvoiceType is TypeInvoice or TypeNotInvoice. Status is StatusNA
	// exactly when InvoiceType is TypeNotInvoice (or StatusError for a
	// failed document).
	InvoiceType string `json:"invoice_type"`
	Status      string `json:"status"`

	// IsIncomplete is true when date, amount, or currency could not be
	// determined. It is independent of Status: a score-complete invoice
	// with a missing date is still incomplete.
	IsIncomplete bool `json:"is_incomplete"`

	// Filename identifies the source document in batch runs.
	Filename string `json:"filename,omitempty"`

	// Error carries the upstream failure message for error records.
	Error string `json:"error,omitempty"`
}

// ErrorRecord builds the sentinel record substituted when upstream text
// extraction fails for a document. A batch always yields one record per
// input file, so a failed file produces this instead of aborting the run.
func ErrorRecord(filename string, err error) *InvoiceRecord {
	rec := &InvoiceRecord{
		VendorName:     NotAvailable,
		InvoiceNumber:  NotAvailable,
		Date:           NotAvailable,
		TotalAmount:    0.0,
		Currency:       NotAvailable,
		CurrencySymbol: NotAvailable,
		CurrencyName:   NotAvailable,
		CurrencyRegion: "Unknown",
		Category:       CategoryOthers,
		InvoiceType:    TypeNotInvoice,
		Status:         StatusError,
		IsIncomplete:   true,
		Filename:       filename,
	}
	if err != nil {
		rec.Error = err.Error()
	}
	return rec
}
