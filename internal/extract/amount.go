package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Indian numbering-system multipliers, checked longest suffix first so
// "lakhs" is not consumed as a bare "l".
var unitSuffixes = []struct {
	suffix     string
	multiplier decimal.Decimal
}{
	{"crores", decimal.NewFromInt(10_000_000)},
	{"crore", decimal.NewFromInt(10_000_000)},
	{"cr", decimal.NewFromInt(10_000_000)},
	{"lakhs", decimal.NewFromInt(100_000)},
	{"lakh", decimal.NewFromInt(100_000)},
	{"l", decimal.NewFromInt(100_000)},
	{"k", decimal.NewFromInt(1_000)},
}

// Currency markers stripped before numeric parsing. These carry no
// multiplier; they only anchor the matcher.
var currencyMarkers = []string{"rupees", "rupee", "rs.", "rs", "inr", "₹"}

var amountCleaner = strings.NewReplacer(",", "", " ", "", " ", "")

// parseAmount normalizes one matched amount substring into base currency
// units. Malformed or zero numerals report ok=false and the match is
// dropped; a missing amount must never surface as zero.
func parseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.ToLower(amountCleaner.Replace(raw))

	for _, marker := range currencyMarkers {
		cleaned = strings.TrimPrefix(cleaned, marker)
		cleaned = strings.TrimSuffix(cleaned, marker)
	}

	multiplier := decimal.NewFromInt(1)
	for _, unit := range unitSuffixes {
		if strings.HasSuffix(cleaned, unit.suffix) {
			cleaned = strings.TrimSuffix(cleaned, unit.suffix)
			multiplier = unit.multiplier
			break
		}
	}

	if cleaned == "" {
		return decimal.Decimal{}, false
	}

	value, err := decimal.NewFromString(cleaned)
	if err != nil || value.IsZero() {
		return decimal.Decimal{}, false
	}

	return value.Mul(multiplier), true
}
