package budget

import (
	"github.com/shopspring/decimal"
)

// Limits is a mapping from category names to budget ceilings.
// A category without an entry is unconstrained.
type Limits map[string]decimal.Decimal

// New returns an empty set of limits
func New() Limits {
	return make(Limits)
}

// Set inserts or replaces the ceiling for category
func (l Limits) Set(category string, limit decimal.Decimal) {
	l[category] = limit
}

// Remove drops category's ceiling, making it unconstrained
func (l Limits) Remove(category string) {
	delete(l, category)
}

// Get returns category's ceiling and whether one is set
func (l Limits) Get(category string) (decimal.Decimal, bool) {
	limit, ok := l[category]
	return limit, ok
}

// Snapshot returns a copy of category's current ceiling, or nil if unconstrained
func (l Limits) Snapshot(category string) *decimal.Decimal {
	limit, ok := l[category]
	if !ok {
		return nil
	}
	return &limit
}

// Exceeds returns true if amount is strictly greater than category's ceiling
func (l Limits) Exceeds(category string, amount decimal.Decimal) bool {
	limit, ok := l[category]
	return ok && amount.GreaterThan(limit)
}
