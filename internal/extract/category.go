package extract

import (
	"strings"

	"invoicer/pkg/models"
)

// detectCategory classifies the document into a spend category from its text
// and vendor name combined. The category tables are tried in a fixed order
// (Food, Shopping, Bills, Travel) and the first match wins, which is the
// tie-break when keywords from several categories co-occur.
func detectCategory(text, vendor string) string {
	combined := strings.ToLower(text + " " + vendor)

	for _, cp := range categoryPatterns {
		if cp.pattern.MatchString(combined) {
			return cp.category
		}
	}

	return models.CategoryOthers
}
