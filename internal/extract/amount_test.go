package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"rupee symbol with grouping", "₹ 4,339.00", 4339.0},
		{"rs prefix", "Rs. 1200", 1200.0},
		{"inr prefix", "INR 250.50", 250.5},
		{"dollar", "$42.50", 42.5},
		{"euro with grouping", "€ 1,234.56", 1234.56},
		{"plain number", "999", 999.0},
		{"malformed", "abc", 0.0},
		{"empty", "", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseAmount(tt.in))
		})
	}
}

func TestFallbackAmountPicksLargest(t *testing.T) {
	text := "Ref 4,128.82 shipped qty 200 on dock 3"

	got, ok := fallbackAmount(text)
	require.True(t, ok)
	assert.Equal(t, 4128.82, got)
}

func TestFallbackAmountNoCandidates(t *testing.T) {
	_, ok := fallbackAmount("no numbers here")
	assert.False(t, ok)
}

func TestFallbackAmountIgnoresZero(t *testing.T) {
	got, ok := fallbackAmount("qty 0 plus 17 units")
	require.True(t, ok)
	assert.Equal(t, 17.0, got)
}

func TestAmountCuePriority(t *testing.T) {
	// A labelled grand total outranks a bare currency-prefixed number even
	// when the bare number is larger.
	text := "Deposit $9,999\nGrand Total: $120.00\n"

	raw, ok := firstMatch(text, amountPatterns)
	require.True(t, ok)
	assert.Equal(t, 120.0, parseAmount(raw))
}
