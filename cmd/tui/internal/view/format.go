package view

import (
	"time"

	"github.com/shopspring/decimal"

	"spendo/internal/currency"
	"spendo/internal/export"
)

// FormatAmount renders an amount with the user's currency symbol.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	return currency.Format(amount, currencyCode)
}

// FormatDate renders a date the way exports do, e.g. "Oct 27, 2025".
func FormatDate(t time.Time) string {
	return export.FormatDate(t)
}
