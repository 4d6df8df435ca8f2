package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendo/internal/category"
	"spendo/internal/report"
	"spendo/internal/transaction"
)

func tx(amount string, typ transaction.Type, cat category.ID, date time.Time) transaction.Transaction {
	return transaction.Transaction{
		UserID:   "user-1",
		Amount:   decimal.RequireFromString(amount),
		Type:     typ,
		Category: cat,
		Date:     date,
	}
}

func TestGenerate_Totals(t *testing.T) {
	now := time.Date(2025, 7, 15, 18, 0, 0, 0, time.UTC)

	txs := []transaction.Transaction{
		tx("100", transaction.TypeIncome, category.Other, now.AddDate(0, 0, -1)),
		tx("40.25", transaction.TypeExpense, category.Food, now.AddDate(0, 0, -2)),
		tx("9.75", transaction.TypeExpense, category.Food, now.AddDate(0, 0, -3)),
		tx("20", transaction.TypeExpense, category.Transport, now.AddDate(0, 0, -4)),
		// Outside the weekly window, must be ignored.
		tx("500", transaction.TypeExpense, category.Shopping, now.AddDate(0, 0, -10)),
	}

	data := report.Generate(txs, report.PeriodWeekly, now)

	assert.True(t, data.Income.Equal(decimal.RequireFromString("100")), "income = %s", data.Income)
	assert.True(t, data.Expense.Equal(decimal.RequireFromString("70")), "expense = %s", data.Expense)
	assert.True(t, data.Balance.Equal(data.Income.Sub(data.Expense)))
	assert.Len(t, data.Transactions, 4)

	require.Len(t, data.ByCategory, 2)
	assert.Equal(t, "Food & Dining", data.ByCategory[0].Category)
	assert.True(t, data.ByCategory[0].Amount.Equal(decimal.RequireFromString("50")))
	assert.Equal(t, "#FF9800", data.ByCategory[0].Color)
	assert.Equal(t, "Transport", data.ByCategory[1].Category)
}

func TestGenerate_IncomeNeverContributesToCategories(t *testing.T) {
	now := time.Date(2025, 7, 15, 18, 0, 0, 0, time.UTC)

	txs := []transaction.Transaction{
		tx("300", transaction.TypeIncome, category.Food, now),
	}

	data := report.Generate(txs, report.PeriodDaily, now)

	assert.True(t, data.Income.Equal(decimal.RequireFromString("300")))
	assert.True(t, data.Expense.IsZero())
	assert.Empty(t, data.ByCategory, "income must not produce category totals")
}

func TestGenerate_WindowBoundaries(t *testing.T) {
	now := time.Date(2025, 7, 15, 18, 0, 0, 0, time.UTC)
	start, end := report.Range(report.PeriodWeekly, now)

	txs := []transaction.Transaction{
		tx("1", transaction.TypeExpense, category.Food, start),
		tx("1", transaction.TypeExpense, category.Food, end),
		tx("1", transaction.TypeExpense, category.Food, start.Add(-time.Millisecond)),
		tx("1", transaction.TypeExpense, category.Food, end.Add(time.Millisecond)),
	}

	data := report.Generate(txs, report.PeriodWeekly, now)

	assert.Len(t, data.Transactions, 2, "exact bounds are inclusive, one ms outside is excluded")
	assert.True(t, data.Expense.Equal(decimal.RequireFromString("2")))
}

func TestGenerate_Empty(t *testing.T) {
	now := time.Now()

	for _, period := range []report.Period{
		report.PeriodDaily, report.PeriodWeekly, report.PeriodMonthly, report.PeriodYearly,
	} {
		data := report.Generate(nil, period, now)

		assert.True(t, data.Income.IsZero())
		assert.True(t, data.Expense.IsZero())
		assert.True(t, data.Balance.IsZero())
		assert.Empty(t, data.ByCategory)
		assert.Empty(t, data.Transactions)
	}
}

func TestGenerate_ZeroTotalCategoriesExcluded(t *testing.T) {
	now := time.Date(2025, 7, 15, 18, 0, 0, 0, time.UTC)

	data := report.Generate([]transaction.Transaction{
		tx("10", transaction.TypeExpense, category.Entertainment, now),
	}, report.PeriodDaily, now)

	require.Len(t, data.ByCategory, 1)
	assert.Equal(t, "Entertainment", data.ByCategory[0].Category)

	for _, ct := range data.ByCategory {
		assert.True(t, ct.Amount.IsPositive())
	}
}

func TestRange(t *testing.T) {
	now := time.Date(2025, 3, 31, 14, 45, 30, 0, time.UTC)

	type testCase struct {
		name      string
		period    report.Period
		wantStart time.Time
	}

	tests := []testCase{
		{
			name:      "DailyStartsAtMidnight",
			period:    report.PeriodDaily,
			wantStart: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "WeeklyGoesBackSevenDays",
			period:    report.PeriodWeekly,
			wantStart: time.Date(2025, 3, 24, 14, 45, 30, 0, time.UTC),
		},
		{
			name:   "MonthlyUsesCalendarArithmetic",
			period: report.PeriodMonthly,
			// Feb 31 normalizes to Mar 3 in a non-leap year.
			wantStart: time.Date(2025, 3, 3, 14, 45, 30, 0, time.UTC),
		},
		{
			name:      "YearlyGoesBackOneYear",
			period:    report.PeriodYearly,
			wantStart: time.Date(2024, 3, 31, 14, 45, 30, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := report.Range(tt.period, now)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, now, end)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := report.ParsePeriod("monthly")
	require.NoError(t, err)
	assert.Equal(t, report.PeriodMonthly, p)

	_, err = report.ParsePeriod("quarterly")
	assert.Error(t, err)
}
