// Package currency renders amounts for display using the signed-in
// user's currency code. Formatting is presentation only; all arithmetic
// stays in decimal form elsewhere.
package currency

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shopspring/decimal"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Format renders amount with the symbol for the given ISO 4217 code.
// Unknown or empty codes fall back to USD.
func Format(amount decimal.Decimal, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	value, _ := amount.Float64()

	return printer.Sprintf("%v", currency.Symbol(unit.Amount(value)))
}
