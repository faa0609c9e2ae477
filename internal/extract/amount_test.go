package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "indian comma grouping", raw: "₹1,25,000", want: "125000"},
		{name: "lakh suffix short", raw: "2.5L", want: "250000"},
		{name: "crore suffix word", raw: "1 crore", want: "10000000"},
		{name: "plain rupee symbol", raw: "₹500", want: "500"},
		{name: "rs prefix", raw: "rs 500", want: "500"},
		{name: "rupees suffix", raw: "500 rupees", want: "500"},
		{name: "thousand suffix", raw: "12k", want: "12000"},
		{name: "lakh plural", raw: "2 lakhs", want: "200000"},
		{name: "crore short suffix", raw: "3cr", want: "30000000"},
		{name: "decimal with symbol", raw: "₹99.50", want: "99.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.raw)
			require.True(t, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_Dropped(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "bare symbol", raw: "₹"},
		{name: "not a number", raw: "abc"},
		{name: "zero is unknown not zero", raw: "₹0"},
		{name: "empty", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := parseAmount(tt.raw)
			assert.False(t, ok, "malformed amounts must be dropped, never propagated")
		})
	}
}
