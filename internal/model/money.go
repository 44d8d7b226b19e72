package model

import (
	"math"

	money "github.com/Rhymond/go-money"
)

// Dollars converts a float dollar amount into a money value for display.
// All internal arithmetic stays float64; money is a formatting boundary.
func Dollars(v float64) *money.Money {
	return money.New(int64(math.Round(v*100)), money.USD)
}

// FormatDollars renders a float dollar amount as a currency string.
func FormatDollars(v float64) string {
	return Dollars(v).Display()
}
