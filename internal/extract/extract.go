// Package extract turns unstructured invoice text into structured records.
//
// The package is the analytical core of the pipeline: given raw UTF-8 text for
// one document (supplied by an upstream text extractor), it pulls out vendor,
// invoice number, date, amount, currency, and spend category using ordered
// regex cue tables, then scores the extracted evidence to decide whether the
// document is an invoice at all and how complete the extraction is.
//
// Design properties:
//   - Every step is a pure function of its input text. No component keeps
//     state between documents, so one Extractor can serve any number of
//     goroutines concurrently.
//   - Pattern tables are compiled once at package init and are immutable.
//   - Individual field failures degrade to sentinel values (models.NotAvailable,
//     0.0) instead of erroring; Extract never fails for any input text.
//   - Ordering inside each pattern table is a confidence policy: earlier
//     patterns are the more specific cues and must be tried first.
package extract

import (
	"regexp"
	"strings"

	"invoicer/pkg/models"
)

// Config holds the tunable policy points of the extractor.
type Config struct {
	// DefaultCurrency is assumed when no currency marker is found in the
	// text but a vendor was identified. This is a regional bias of the
	// original deployment (Indian invoices); keep it at INR unless the
	// document corpus says otherwise.
	DefaultCurrency string
}

// DefaultConfig returns the extractor configuration used in production.
func DefaultConfig() Config {
	return Config{
		DefaultCurrency: "INR",
	}
}

// Extractor extracts a structured InvoiceRecord from one document's text.
// The zero cost of construction and absence of mutable state make it safe to
// share across workers.
type Extractor struct {
	cfg Config
}

// NewExtractor creates an extractor with the default configuration.
func NewExtractor() *Extractor {
	return &Extractor{cfg: DefaultConfig()}
}

// NewExtractorWithConfig creates an extractor with a custom configuration.
func NewExtractorWithConfig(cfg Config) *Extractor {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = DefaultConfig().DefaultCurrency
	}
	return &Extractor{cfg: cfg}
}

// NormalizeText collapses runs of spaces and tabs to a single space while
// preserving newlines verbatim. Later cue matching relies on line-start
// anchors, so line structure must survive normalization. No case folding
// happens here; the patterns themselves match case-insensitively.
func NormalizeText(raw string) string {
	return horizontalSpacePattern.ReplaceAllString(raw, " ")
}

// firstMatch tries each pattern in order against the text and returns the
// first non-empty trimmed capture. ok is false when every pattern fails.
func firstMatch(text string, patterns []*regexp.Regexp) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v := strings.TrimSpace(m[1]); v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// Extract runs the full extraction sequence over one document's raw text and
// assembles the output record. It is safe for concurrent use and always
// returns a record, never an error.
func (e *Extractor) Extract(raw string) *models.InvoiceRecord {
	text := NormalizeText(raw)

	vendor, vendorFound := firstMatch(text, vendorPatterns)
	if !vendorFound {
		vendor = models.NotAvailable
	}

	invoiceNumber, numberFound := firstMatch(text, invoiceNumberPatterns)
	if !numberFound {
		invoiceNumber = models.NotAvailable
	}

	date := models.NotAvailable
	if rawDate, ok := firstMatch(text, datePatterns); ok {
		date = normalizeDate(rawDate)
	}

	var amount float64
	if rawAmount, ok := firstMatch(text, amountPatterns); ok {
		amount = parseAmount(rawAmount)
	} else if largest, ok := fallbackAmount(text); ok {
		amount = largest
	}

	currency, resolved := resolveCurrency(text)
	if !resolved && vendorFound {
		// No currency marker anywhere, but a vendor was identified:
		// assume the deployment's default currency.
		currency = e.cfg.DefaultCurrency
		resolved = true
	}
	if !resolved {
		currency = models.NotAvailable
	}
	info := currencyInfo(currency)

	category := detectCategory(text, vendor)

	invoiceType, status := classifyInvoice(text, vendor, invoiceNumber, amount)

	isIncomplete := date == models.NotAvailable ||
		amount == 0.0 ||
		currency == models.NotAvailable

	return &models.InvoiceRecord{
		VendorName:     vendor,
		InvoiceNumber:  invoiceNumber,
		Date:           date,
		TotalAmount:    amount,
		Currency:       currency,
		CurrencySymbol: info.Symbol,
		CurrencyName:   info.Name,
		CurrencyRegion: info.Region,
		Category:       category,
		InvoiceType:    invoiceType,
		Status:         status,
		IsIncomplete:   isIncomplete,
	}
}
