package utils

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var currencyPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatCurrency renders v as US dollars, e.g. $1,234.50 or -$5.00.
// NaN and infinities carry no currency symbol.
func FormatCurrency(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}

	cents := math.Round(v * 100)
	switch {
	case cents == 0:
		// also folds negative zero
		return "$0.00"
	case cents < 0:
		return "-$" + currencyPrinter.Sprintf("%.2f", -cents/100)
	default:
		return "$" + currencyPrinter.Sprintf("%.2f", cents/100)
	}
}
