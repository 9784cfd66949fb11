package extract

import "regexp"

// All cue patterns are compiled once at package init and shared read-only
// across any number of concurrent extractions. Each pattern carries exactly
// one capturing group; order within a table is a precedence policy, not an
// optimization: earlier entries are the higher-confidence cues.

// vendorPatterns: a cue word ("from"/"vendor"/"company") followed by a
// capitalized run, else the first capitalized word-run at a line start.
var vendorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:from|vendor|company)[\s:]+([A-Z][A-Za-z\s&.,]+?)(?:\n|invoice)`),
	regexp.MustCompile(`(?im)^([A-Z][A-Za-z &.,]{3,30})`),
}

var invoiceNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)invoice\s*(?:number|#|no\.?)[\s:]*([A-Z0-9-]+)`),
	regexp.MustCompile(`(?im)(?:^|\n)(?:invoice|inv)[\s#:]*([A-Z0-9-]{3,})`),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:date|dated)[\s:]*(\d{1,2}[/-]\d{1,2}[/-]\d{2,4})`),
	regexp.MustCompile(`(?im)(?:date|dated)[\s:]*(\d{4}[/-]\d{1,2}[/-]\d{1,2})`),
	regexp.MustCompile(`(?im)(\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4})`),
}

// amountPatterns privilege semantically labelled totals over bare
// currency-tagged numbers over locale-specific Rs/INR tags.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)(?:grand\s*total|total\s*amount|amount\s*payable|net\s*amount|invoice\s*total)\s*[:\-]?\s*([₹$€£]?\s*[0-9,]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?im)(?:total|amount\s+due|balance)\s*[:\-]?\s*([₹$€£]?\s*[0-9,]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?im)[₹$€£]\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
	regexp.MustCompile(`(?im)(?:rs\.?|inr)\s*[:\-]?\s*([0-9,]+(?:\.[0-9]{1,2})?)`),
}

var currencyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)\b(USD|EUR|GBP|CAD|AUD|INR|SGD|AED|JPY|CNY|HKD|MYR|THB)\b`),
	regexp.MustCompile(`(?im)([\$€£₹¥])`),
	regexp.MustCompile(`(?im)\b(Rs\.?|INR|Rupees?)\b`),
}

// rupeeWordPattern backs the second step of the currency decision order:
// any whole-word rupee marker forces INR before the generic tables run.
var rupeeWordPattern = regexp.MustCompile(`(?i)\b(Rs\.?|Rupees?|INR)\b`)

// grouped-number shape for the fallback largest-number scan: 1-3 leading
// digits, optional thousands groups of 2-3 digits, optional 1-2 decimals.
var fallbackNumberPattern = regexp.MustCompile(`([0-9]{1,3}(?:,[0-9]{2,3})*(?:\.[0-9]{1,2})?)`)

// invoiceKeywordPattern contributes the keyword point of the completeness
// score.
var invoiceKeywordPattern = regexp.MustCompile(`(?i)(invoice|bill|receipt|payment|due|total|amount)`)

// amountCleanPattern strips currency symbols, separators, and whitespace
// before numeric parsing; amountTextPattern then removes embedded Rs/INR.
var (
	amountCleanPattern = regexp.MustCompile(`[₹$€£¥,\s]`)
	amountTextPattern  = regexp.MustCompile(`(?i)(Rs\.?|INR)`)
)

// horizontalSpacePattern backs text normalization: runs of spaces and tabs
// collapse to one space while newlines survive for the line-anchored cues.
var horizontalSpacePattern = regexp.MustCompile(`[ \t]+`)

// categoryPattern pairs are evaluated in declaration order; the first match
// wins when several categories' keywords co-occur.
type categoryPattern struct {
	category string
	pattern  *regexp.Regexp
}

var categoryPatterns = []categoryPattern{
	{"Food", regexp.MustCompile(`(?i)(swiggy|zomato|dominos|pizza|restaurant|cafe|food|uber\s*eats)`)},
	{"Shopping", regexp.MustCompile(`(?i)(amazon|flipkart|myntra|ajio|shopping|retail)`)},
	{"Bills", regexp.MustCompile(`(?i)(electricity|water|gas|internet|broadband|utility|bill)`)},
	{"Travel", regexp.MustCompile(`(?i)(uber|ola|flight|hotel|booking|airbnb|travel)`)},
}

// symbolToCode maps matched currency symbols and rupee spellings onto ISO
// codes. Anything not in the table is upper-cased and used as-is.
var symbolToCode = map[string]string{
	"$":      "USD",
	"€":      "EUR",
	"£":      "GBP",
	"₹":      "INR",
	"¥":      "JPY",
	"Rs":     "INR",
	"Rs.":    "INR",
	"Rupee":  "INR",
	"Rupees": "INR",
}

// CurrencyInfo is the display metadata paired with a resolved currency code.
type CurrencyInfo struct {
	Symbol string
	Name   string
	Region string
}

// currencyTable holds the 13 known currencies. Codes outside the table get
// code-as-symbol metadata with region "Unknown".
var currencyTable = map[string]CurrencyInfo{
	"INR": {Symbol: "₹", Name: "Indian Rupee", Region: "India"},
	"USD": {Symbol: "$", Name: "US Dollar", Region: "United States"},
	"EUR": {Symbol: "€", Name: "Euro", Region: "Europe"},
	"GBP": {Symbol: "£", Name: "British Pound", Region: "United Kingdom"},
	"CAD": {Symbol: "C$", Name: "Canadian Dollar", Region: "Canada"},
	"AUD": {Symbol: "A$", Name: "Australian Dollar", Region: "Australia"},
	"SGD": {Symbol: "S$", Name: "Singapore Dollar", Region: "Singapore"},
	"AED": {Symbol: "د.إ", Name: "UAE Dirham", Region: "UAE"},
	"JPY": {Symbol: "¥", Name: "Japanese Yen", Region: "Japan"},
	"CNY": {Symbol: "¥", Name: "Chinese Yuan", Region: "China"},
	"HKD": {Symbol: "HK$", Name: "Hong Kong Dollar", Region: "Hong Kong"},
	"MYR": {Symbol: "RM", Name: "Malaysian Ringgit", Region: "Malaysia"},
	"THB": {Symbol: "฿", Name: "Thai Baht", Region: "Thailand"},
}

// dateLayouts are tried in order against a raw matched date string:
// month-first, day-first, ISO, the dash variants, then the two textual
// month-name forms. The first layout that parses wins.
var dateLayouts = []string{
	"1/2/2006",
	"2/1/2006",
	"2006-1-2",
	"1-2-2006",
	"2-1-2006",
	"2 Jan 2006",
	"2 January 2006",
}
