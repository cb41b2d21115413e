package report

import (
	"sort"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/shopspring/decimal"
)

// CategoryAmount is an amount aggregated by category name
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// CategoryTotals sums expenses per category, in the order categories first appear
func CategoryTotals(entries []ledger.Entry) []CategoryAmount {
	var totals []CategoryAmount
	index := make(map[string]int)
	for _, e := range entries {
		if e.Kind != ledger.Expense {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryAmount{Category: e.Category, Amount: decimal.Zero})
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
	}
	return totals
}

// DailyFlow is the income and expense totals for one date
type DailyFlow struct {
	Date     time.Time
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// CashFlow sums income and expenses per date, sorted by date.
// Dates with only one kind of entry report zero for the other.
func CashFlow(entries []ledger.Entry) []DailyFlow {
	byDate := make(map[time.Time]*DailyFlow)
	for _, e := range entries {
		day := e.Date.UTC()
		flow, ok := byDate[day]
		if !ok {
			flow = &DailyFlow{Date: day, Income: decimal.Zero, Expenses: decimal.Zero}
			byDate[day] = flow
		}
		switch e.Kind {
		case ledger.Income:
			flow.Income = flow.Income.Add(e.Amount)
		case ledger.Expense:
			flow.Expenses = flow.Expenses.Add(e.Amount)
		}
	}

	flows := make([]DailyFlow, 0, len(byDate))
	for _, flow := range byDate {
		flows = append(flows, *flow)
	}
	sort.Slice(flows, func(a, b int) bool {
		return flows[a].Date.Before(flows[b].Date)
	})
	return flows
}

// Overview is total income against total expenses
type Overview struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// Summarize totals income and expenses
func Summarize(entries []ledger.Entry) Overview {
	o := Overview{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, e := range entries {
		switch e.Kind {
		case ledger.Income:
			o.Income = o.Income.Add(e.Amount)
		case ledger.Expense:
			o.Expenses = o.Expenses.Add(e.Amount)
		}
	}
	o.Balance = o.Income.Sub(o.Expenses)
	return o
}
