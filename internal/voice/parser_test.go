package voice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/category"
	"spendo/internal/transaction"
	"spendo/internal/voice"
)

func TestParse(t *testing.T) {
	type testCase struct {
		name         string
		transcript   string
		wantAmount   string
		wantType     transaction.Type
		wantCategory category.ID
	}

	tests := []testCase{
		{
			name:         "ExpenseWithFood",
			transcript:   "I spent 25 dollars on food",
			wantAmount:   "25",
			wantType:     transaction.TypeExpense,
			wantCategory: category.Food,
		},
		{
			name:       "IncomeNoCategory",
			transcript: "Made 100 dollars from a client",
			wantAmount: "100",
			wantType:   transaction.TypeIncome,
		},
		{
			name:       "NothingRecognized",
			transcript: "hello",
		},
		{
			name:       "EmptyTranscript",
			transcript: "",
		},
		{
			name:         "CaseInsensitive",
			transcript:   "PAID 12 USD FOR UBER",
			wantAmount:   "12",
			wantType:     transaction.TypeExpense,
			wantCategory: category.Transport,
		},
		{
			name:         "FirstNumberWins",
			transcript:   "spent 30 dollars on 2 movie tickets",
			wantAmount:   "30",
			wantType:     transaction.TypeExpense,
			wantCategory: category.Entertainment,
		},
		{
			name:       "IncomeWinsWhenBothFamiliesMatch",
			transcript: "got paid 500 dollars",
			wantAmount: "500",
			wantType:   transaction.TypeIncome,
		},
		{
			name:         "CategoryOrderIsFixed",
			transcript:   "paid 60 for the gas bill",
			wantAmount:   "60",
			wantType:     transaction.TypeExpense,
			wantCategory: category.Transport, // "gas" matches before "bill"
		},
		{
			name:         "AmountWithoutUnit",
			transcript:   "bought groceries for 45",
			wantAmount:   "45",
			wantType:     transaction.TypeExpense,
			wantCategory: category.Food,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := voice.Parse(tt.transcript)

			if tt.wantAmount == "" {
				assert.Nil(t, res.Amount)
			} else {
				require.NotNil(t, res.Amount)
				assert.Equal(t, tt.wantAmount, res.Amount.String())
			}

			if tt.wantType == "" {
				assert.Nil(t, res.Type)
			} else {
				require.NotNil(t, res.Type)
				assert.Equal(t, tt.wantType, *res.Type)
			}

			if tt.wantCategory == "" {
				assert.Nil(t, res.Category)
			} else {
				require.NotNil(t, res.Category)
				assert.Equal(t, tt.wantCategory, *res.Category)
			}
		})
	}
}
