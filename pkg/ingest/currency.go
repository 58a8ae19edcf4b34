package ingest

import (
	"strconv"
	"strings"
)

// coerceAmount parses a currency-formatted cell into a number: thousands
// separators, currency codes and symbols, and surrounding whitespace are
// stripped before parsing. Returns ok == false for values that still do
// not parse; callers treat those as missing rather than zero.
func coerceAmount(value string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			return r
		default:
			// Commas, spaces, currency codes like "AED", symbols like "$".
			return -1
		}
	}, value)

	if cleaned == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
