package core

import (
	"strconv"
	"strings"
)

// FormatValue renders a value rounded to two decimal places.
// Rounding happens only here; Amount.Value keeps full precision.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatAmount renders "Protein: 5.00 g" or "Energy: 260.00 kcal".
func FormatAmount(a Amount) string {
	return string(a.Nutrient) + ": " + FormatValue(a.Value) + " " + a.Unit
}

// FormatQuantity renders a quantity without trailing zeros: 200, 12.5.
func FormatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

// Heading renders the line shown above a result:
// "For 200g of Rice (Code: A001):".
func Heading(r Result) string {
	return "For " + FormatQuantity(r.Quantity) + "g of " + r.Name + " (Code: " + r.Code + "):"
}

// ParseOptionLabel recovers the food code from a "<code> - <name>" label.
// A value without the separator is returned trimmed, so a bare code works too.
func ParseOptionLabel(label string) string {
	code, _, _ := strings.Cut(label, " - ")
	return strings.TrimSpace(code)
}
