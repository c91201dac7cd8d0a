package tui

import (
	"fmt"
	"unicode/utf8"

	"github.com/souqlabs/souq/pkg/domain"
)

// formatPrice renders a product price with its currency code.
func formatPrice(p domain.Product) string {
	currency := p.Currency
	if currency == "" {
		currency = "SAR"
	}
	return fmt.Sprintf("%.2f %s", p.Price, currency)
}

// truncStr truncates a string to maxLen runes, appending an ellipsis if needed.
func truncStr(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:maxLen-1]) + "…"
}

// truncateToHeight limits output to maxLines newline-delimited lines.
// Returns the original string if it fits or maxLines is <= 0.
func truncateToHeight(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
			if n >= maxLines {
				return s[:i+1]
			}
		}
	}
	return s
}
