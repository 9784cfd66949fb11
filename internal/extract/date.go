package extract

import "time"

// normalizeDate reformats a raw matched date string to YYYY-MM-DD by trying
// each source layout in order. Ambiguous numeric dates resolve month-first
// because that layout is tried first. When no layout parses, the raw string
// is returned unchanged; the caller keeps it rather than degrading to N/A,
// so a recognizably-shaped but unparseable date still reaches the output.
func normalizeDate(raw string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return raw
}
