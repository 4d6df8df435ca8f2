// Package report computes on-demand aggregate views over a transaction
// list. Reports are derived data and never persisted.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"spendo/internal/category"
	"spendo/internal/transaction"
)

// Period selects the aggregation window length, ending at the current
// instant.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	}

	return "", fmt.Errorf("unknown period %q", s)
}

// CategoryTotal is one slice of the expense breakdown, labeled with the
// registry display name and color.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Color    string          `json:"color"`
}

// Data is the aggregate view for one period.
type Data struct {
	Income       decimal.Decimal           `json:"income"`
	Expense      decimal.Decimal           `json:"expense"`
	Balance      decimal.Decimal           `json:"balance"`
	ByCategory   []CategoryTotal           `json:"by_category"`
	Transactions []transaction.Transaction `json:"transactions"`
}

// Range returns the inclusive [start, end] window for a period, ending
// at now. Monthly and yearly use calendar arithmetic, so e.g. a monthly
// window on March 31 starts at the normalized "February 31".
func Range(period Period, now time.Time) (time.Time, time.Time) {
	var start time.Time

	switch period {
	case PeriodDaily:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeekly:
		start = now.AddDate(0, 0, -7)
	case PeriodMonthly:
		start = now.AddDate(0, -1, 0)
	case PeriodYearly:
		start = now.AddDate(-1, 0, 0)
	default:
		start = now
	}

	return start, now
}

// Generate filters txs to the period window and walks the result once,
// summing income and expense and accumulating per-category expense
// totals. Income never contributes to a category total. Empty input
// yields zero totals and an empty breakdown.
func Generate(txs []transaction.Transaction, period Period, now time.Time) Data {
	start, end := Range(period, now)
	filtered := filterByDate(txs, start, end)

	income := decimal.Zero
	expense := decimal.Zero

	totals := make(map[category.ID]decimal.Decimal, len(category.All()))
	for _, e := range category.All() {
		totals[e.ID] = decimal.Zero
	}

	for _, tx := range filtered {
		if tx.Type == transaction.TypeIncome {
			income = income.Add(tx.Amount)
			continue
		}

		expense = expense.Add(tx.Amount)
		totals[tx.Category] = totals[tx.Category].Add(tx.Amount)
	}

	byCategory := make([]CategoryTotal, 0, len(totals))

	for _, e := range category.All() {
		total := totals[e.ID]
		if !total.IsPositive() {
			continue
		}

		byCategory = append(byCategory, CategoryTotal{
			Category: e.Name,
			Amount:   total,
			Color:    e.Color,
		})
	}

	return Data{
		Income:       income,
		Expense:      expense,
		Balance:      income.Sub(expense),
		ByCategory:   byCategory,
		Transactions: filtered,
	}
}

// filterByDate keeps transactions dated within [start, end], inclusive
// of both bounds, preserving input order.
func filterByDate(txs []transaction.Transaction, start, end time.Time) []transaction.Transaction {
	filtered := make([]transaction.Transaction, 0, len(txs))

	for _, tx := range txs {
		if tx.Date.Before(start) || tx.Date.After(end) {
			continue
		}

		filtered = append(filtered, tx)
	}

	return filtered
}
