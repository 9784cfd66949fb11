package extract

import "strconv"

// parseAmount converts a raw matched amount token to a number. Currency
// symbols, commas, whitespace, and embedded Rs/INR markers are stripped
// before parsing. A token that still fails to parse yields 0.0, a
// recoverable "not determined", not an error.
func parseAmount(raw string) float64 {
	cleaned := amountCleanPattern.ReplaceAllString(raw, "")
	cleaned = amountTextPattern.ReplaceAllString(cleaned, "")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0.0
	}
	return v
}

// fallbackAmount scans the whole document for grouped-number substrings and
// returns the largest positive value found. It runs only when no amount cue
// matched anywhere: invoices reliably carry their total as the largest
// money-like figure even when no recognizable label precedes it, so this is
// a low-precision, high-recall safety net rather than a primary strategy.
// ok is false when the text contains no positive candidate.
func fallbackAmount(text string) (float64, bool) {
	candidates := fallbackNumberPattern.FindAllString(text, -1)

	var largest float64
	found := false
	for _, c := range candidates {
		cleaned := amountCleanPattern.ReplaceAllString(c, "")
		v, err := strconv.ParseFloat(cleaned, 64)
		if err != nil || v <= 0 {
			continue
		}
		if !found || v > largest {
			largest = v
			found = true
		}
	}

	return largest, found
}
