package goal

import (
	"github.com/shopspring/decimal"
)

// Progress is a goal's status as plain data
type Progress struct {
	Name        string
	Target      decimal.Decimal
	Accumulated decimal.Decimal
	// Percentage is invalid when Target is zero
	Percentage decimal.NullDecimal
	Completed  bool
}

// Progress returns every goal's status in the order goals were added
func (t *Tracker) Progress() []Progress {
	results := make([]Progress, 0, len(t.goals))
	for _, g := range t.goals {
		p := Progress{
			Name:        g.Name,
			Target:      g.Target,
			Accumulated: g.Accumulated,
			Completed:   g.Completed(),
		}
		if pct, err := g.Percentage(); err == nil {
			p.Percentage = decimal.NullDecimal{Decimal: pct, Valid: true}
		}
		results = append(results, p)
	}
	return results
}

// Summary totals all goals
type Summary struct {
	Count     int
	Needed    decimal.Decimal
	Saved     decimal.Decimal
	Remaining decimal.Decimal
}

// Summary adds up every goal's target and accumulated amounts
func (t *Tracker) Summary() Summary {
	s := Summary{
		Count:  len(t.goals),
		Needed: decimal.Zero,
		Saved:  decimal.Zero,
	}
	for _, g := range t.goals {
		s.Needed = s.Needed.Add(g.Target)
		s.Saved = s.Saved.Add(g.Accumulated)
	}
	s.Remaining = s.Needed.Sub(s.Saved)
	return s
}
