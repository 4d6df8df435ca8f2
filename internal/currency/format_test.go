package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"spendo/internal/currency"
)

func TestFormat(t *testing.T) {
	type testCase struct {
		name   string
		amount string
		code   string
		want   string
	}

	tests := []testCase{
		{name: "USD", amount: "25", code: "USD", want: "$ 25.00"},
		{name: "EUR", amount: "12.5", code: "EUR", want: "€ 12.50"},
		{name: "UnknownFallsBackToUSD", amount: "3", code: "???", want: "$ 3.00"},
		{name: "EmptyFallsBackToUSD", amount: "3", code: "", want: "$ 3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := currency.Format(decimal.RequireFromString(tt.amount), tt.code)
			assert.Equal(t, tt.want, got)
		})
	}
}
