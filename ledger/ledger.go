package ledger

import (
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/budget"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Ledger records entries by category and checks expenses against per-category budgets.
// A Ledger is not safe for concurrent use.
type Ledger struct {
	entries    []Entry
	categories []string
	buckets    map[string][]Entry
	limits     budget.Limits
	logger     *zap.Logger
}

// New returns an empty ledger. A nil logger disables logging.
func New(logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		buckets: make(map[string][]Entry),
		limits:  budget.New(),
		logger:  logger,
	}
}

func (l *Ledger) post(entry Entry) {
	if _, exists := l.buckets[entry.Category]; !exists {
		l.categories = append(l.categories, entry.Category)
	}
	l.buckets[entry.Category] = append(l.buckets[entry.Category], entry)
	l.entries = append(l.entries, entry)
}

// RecordIncome adds an income entry to category
func (l *Ledger) RecordIncome(amount decimal.Decimal, date, category string) (Entry, error) {
	entry, err := NewEntry(Income, amount, date, category)
	if err != nil {
		return Entry{}, err
	}
	l.post(entry)
	return entry, nil
}

// RecordExpense adds an expense entry to category, capturing the category's current budget.
// Returns a transaction alert if the expense alone exceeds that budget.
func (l *Ledger) RecordExpense(amount decimal.Decimal, date, category string) (Entry, *budget.Alert, error) {
	entry, err := NewEntry(Expense, amount, date, category)
	if err != nil {
		return Entry{}, nil, err
	}
	entry.Limit = l.limits.Snapshot(category)
	l.post(entry)

	if !entry.OverBudget() {
		return entry, nil, nil
	}
	alert := &budget.Alert{
		Scope:    budget.TransactionScope,
		Category: category,
		Limit:    *entry.Limit,
		Amount:   entry.Amount,
	}
	l.logAlert(*alert)
	return entry, alert, nil
}

// SetBudget sets category's budget. Only expenses recorded afterward capture the new value.
func (l *Ledger) SetBudget(category string, limit decimal.Decimal) {
	l.limits.Set(category, limit)
}

// RemoveBudget makes category unconstrained. Expenses already recorded keep their captured budget.
func (l *Ledger) RemoveBudget(category string) {
	l.limits.Remove(category)
}

// Budget returns category's current budget and whether one is set
func (l *Ledger) Budget(category string) (decimal.Decimal, bool) {
	return l.limits.Get(category)
}

// EvaluateBudgets compares each category's total expenses against its current budget.
// Returns one alert per over-budget category, in the order categories were first used.
func (l *Ledger) EvaluateBudgets() []budget.Alert {
	var alerts []budget.Alert
	for _, category := range l.categories {
		total := sumKind(l.buckets[category], Expense)
		if l.limits.Exceeds(category, total) {
			limit, _ := l.limits.Get(category)
			alert := budget.Alert{
				Scope:    budget.CategoryScope,
				Category: category,
				Limit:    limit,
				Amount:   total,
			}
			l.logAlert(alert)
			alerts = append(alerts, alert)
		}
	}
	return alerts
}

func (l *Ledger) logAlert(alert budget.Alert) {
	l.logger.Warn("Budget exceeded",
		zap.String("scope", string(alert.Scope)),
		zap.String("category", alert.Category),
		zap.Stringer("limit", alert.Limit),
		zap.Stringer("amount", alert.Amount),
		zap.Stringer("over", alert.Over()),
	)
}

func sumKind(entries []Entry, kind Kind) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Kind == kind {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// Categories returns every category in the order it was first used
func (l *Ledger) Categories() []string {
	return append([]string(nil), l.categories...)
}

// Entries returns category's entries in the order they were recorded
func (l *Ledger) Entries(category string) []Entry {
	return append([]Entry(nil), l.buckets[category]...)
}

// All returns every entry in the order it was recorded
func (l *Ledger) All() []Entry {
	return append([]Entry(nil), l.entries...)
}

// Incomes returns all income entries
func (l *Ledger) Incomes() []Entry {
	return l.filter(func(e Entry) bool { return e.Kind == Income })
}

// Expenses returns all expense entries
func (l *Ledger) Expenses() []Entry {
	return l.filter(func(e Entry) bool { return e.Kind == Expense })
}

// OnDate returns every entry recorded for date's calendar day
func (l *Ledger) OnDate(date time.Time) []Entry {
	y, m, d := date.Date()
	return l.filter(func(e Entry) bool {
		ey, em, ed := e.Date.Date()
		return ey == y && em == m && ed == d
	})
}

func (l *Ledger) filter(keep func(Entry) bool) []Entry {
	var entries []Entry
	for _, e := range l.entries {
		if keep(e) {
			entries = append(entries, e)
		}
	}
	return entries
}
