package utils

import (
	"fmt"
	"strings"
)

// FormatCurrencyTRY formats an integer lira amount with thousands
// separators, e.g. 12500 -> "12.500₺". Menu prices are whole lira.
func FormatCurrencyTRY(amount int) string {
	digits := fmt.Sprintf("%d", amount)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var groups []string
	for i := len(digits); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{digits[start:i]}, groups...)
	}

	out := strings.Join(groups, ".") + "₺"
	if neg {
		out = "-" + out
	}
	return out
}
