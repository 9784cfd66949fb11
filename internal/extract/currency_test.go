package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveCurrency(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		want     string
		resolved bool
	}{
		{"rupee sign beats foreign code", "Charged in USD, total ₹500", "INR", true},
		{"rupee word beats symbol table", "Amount Rs. 1200 (approx $15)", "INR", true},
		{"rupees spelled out", "Five hundred Rupees only", "INR", true},
		{"iso code", "Total 120 USD net", "USD", true},
		{"dollar symbol", "Total: $99.50", "USD", true},
		{"euro symbol", "Betrag: €40", "EUR", true},
		{"pound symbol", "Due £12.00", "GBP", true},
		{"yen symbol", "合計 ¥8000", "JPY", true},
		{"rs embedded in word ignored", "Traders quarterly report", "", false},
		{"nothing", "plain text with numbers 123", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolveCurrency(tt.text)
			assert.Equal(t, tt.resolved, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencyInfoKnownCodes(t *testing.T) {
	info := currencyInfo("INR")
	assert.Equal(t, "₹", info.Symbol)
	assert.Equal(t, "Indian Rupee", info.Name)
	assert.Equal(t, "India", info.Region)

	info = currencyInfo("SGD")
	assert.Equal(t, "S$", info.Symbol)
	assert.Equal(t, "Singapore", info.Region)
}

func TestCurrencyInfoUnknownCode(t *testing.T) {
	info := currencyInfo("XYZ")
	require.Equal(t, "XYZ", info.Symbol)
	require.Equal(t, "XYZ", info.Name)
	require.Equal(t, "Unknown", info.Region)
}
