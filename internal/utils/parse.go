package utils

import (
	"strconv" // String to number conversion
)

// CoerceInt normalizes a decoded JSON value into an int64.
// Amounts and balances arrive as JSON numbers or strings depending on
// the client form; anything unparseable becomes 0 so a bad value never
// reaches the stored balance. Fractional input truncates toward zero.
func CoerceInt(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n) // JSON numbers decode as float64, truncate toward zero
	case int64:
		return n // Already an integer
	case int:
		return int64(n) // Plain int from internal callers
	case string:
		// Try integer form first, then fall back to float so "12.9" truncates to 12
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return int64(f) // Truncate toward zero
		}
	}
	return 0 // Missing or unparseable input defaults to zero
}
