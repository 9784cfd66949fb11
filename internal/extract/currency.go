package extract

import "strings"

// resolveCurrency determines a currency code from the document text. The
// decision order is fixed and independent of amount extraction:
//
//  1. ₹ anywhere in the text → INR.
//  2. Any whole-word rupee marker (Rs, Rs., Rupee, Rupees, INR) → INR.
//  3. The generic pattern list: ISO-like codes first, then currency symbols
//     mapped through the symbol table.
//
// ok is false when none of the steps produce a code; the caller decides the
// default policy in that case.
func resolveCurrency(text string) (string, bool) {
	if strings.Contains(text, "₹") {
		return "INR", true
	}

	if rupeeWordPattern.MatchString(text) {
		return "INR", true
	}

	if match, ok := firstMatch(text, currencyPatterns); ok {
		if code, known := symbolToCode[match]; known {
			return code, true
		}
		return strings.ToUpper(match), true
	}

	return "", false
}

// currencyInfo looks up display metadata for a resolved code. Codes outside
// the known table (including models.NotAvailable) get the code itself as
// symbol and name with region "Unknown", keeping the metadata triple jointly
// present with the code.
func currencyInfo(code string) CurrencyInfo {
	if info, ok := currencyTable[code]; ok {
		return info
	}
	return CurrencyInfo{Symbol: code, Name: code, Region: "Unknown"}
}
