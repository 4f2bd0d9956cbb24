package pdf

import (
	"strings"

	"github.com/shopspring/decimal"
)

// formatDecimal renders a quantity or rate as a plain decimal with trailing
// fractional zeros dropped and no grouping: 10.00 -> "10", 2.50 -> "2.5".
func formatDecimal(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// formatMoney renders a monetary amount with exactly two decimal places and
// the literal currency symbol: 1428 -> "1428.00 €".
func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(2) + " €"
}
