package utils

import (
	"fmt"
	"math"
)

// RoundCurrency rounds to two decimals. Settlement amounts are kept at full
// precision mid-calculation; rounding happens only at presentation.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatBRL renders an amount the way the admin screens display it.
func FormatBRL(amount float64) string {
	return fmt.Sprintf("R$ %.2f", RoundCurrency(amount))
}
