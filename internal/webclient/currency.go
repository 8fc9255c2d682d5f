package webclient

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatLKR renders an LKR amount for display: "Rs. 16,000", or "Free" for
// zero. Amounts are rounded to whole rupees.
func FormatLKR(amount decimal.Decimal) string {
	if amount.IsZero() {
		return "Free"
	}
	whole := amount.Round(0).String()

	neg := strings.HasPrefix(whole, "-")
	if neg {
		whole = whole[1:]
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "Rs. " + b.String()
	if neg {
		out = "Rs. -" + b.String()
	}
	return out
}
