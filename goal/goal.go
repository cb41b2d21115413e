package goal

import (
	"fmt"
	"iter"
	"strings"
	"time"

	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/shopspring/decimal"
)

const kind = "goal"

var hundred = decimal.NewFromInt(100)

// Goal is a named target amount with contributions toward it
type Goal struct {
	Name        string
	Target      decimal.Decimal
	Accumulated decimal.Decimal
	Type        string `json:",omitempty"`
	Start       time.Time
	End         time.Time
}

// Percentage returns Accumulated as a percentage of Target, rounded to 2 decimal places
func (g Goal) Percentage() (decimal.Decimal, error) {
	if g.Target.Sign() == 0 {
		return decimal.Zero, &sErrors.DivideByZeroError{Name: g.Name}
	}
	return g.Accumulated.Div(g.Target).Mul(hundred).Round(2), nil
}

// Completed returns true once Accumulated reaches Target
func (g Goal) Completed() bool {
	return g.Accumulated.GreaterThanOrEqual(g.Target)
}

// Remaining returns how much is left to reach Target, or zero if completed
func (g Goal) Remaining() decimal.Decimal {
	if g.Completed() {
		return decimal.Zero
	}
	return g.Target.Sub(g.Accumulated)
}

// Tracker holds goals in the order they were added. A Tracker is not safe for concurrent use.
type Tracker struct {
	clamp bool
	goals []*Goal
	names map[string]*Goal
}

// New creates a Tracker. By default contributions are not capped at a goal's target.
func New(opts ...TrackerOpt) *Tracker {
	t := &Tracker{
		names: make(map[string]*Goal),
	}
	for _, opt := range opts {
		opt.do(t)
	}
	return t
}

// Clamped returns true if contributions are capped at each goal's target
func (t *Tracker) Clamped() bool {
	return t.clamp
}

// Add creates a goal with nothing accumulated. Names must be unique.
func (t *Tracker) Add(name string, target decimal.Decimal, opts ...Opt) error {
	if _, exists := t.names[name]; exists {
		return &sErrors.DuplicateError{Kind: "Goal", Name: name}
	}
	g := &Goal{
		Name:        name,
		Target:      target,
		Accumulated: decimal.Zero,
	}
	for _, opt := range opts {
		if err := opt.do(g); err != nil {
			return err
		}
	}
	t.goals = append(t.goals, g)
	t.names[name] = g
	return nil
}

func (t *Tracker) find(name string) (*Goal, error) {
	g, ok := t.names[name]
	if !ok {
		return nil, &sErrors.NotFoundError{Kind: kind, Name: name}
	}
	return g, nil
}

// Get returns a copy of the named goal
func (t *Tracker) Get(name string) (Goal, error) {
	g, err := t.find(name)
	if err != nil {
		return Goal{}, err
	}
	return *g, nil
}

// Goals returns copies of all goals in the order they were added
func (t *Tracker) Goals() []Goal {
	goals := make([]Goal, 0, len(t.goals))
	for _, g := range t.goals {
		goals = append(goals, *g)
	}
	return goals
}

// Contribute adds amount to the named goal's accumulated amount
func (t *Tracker) Contribute(name string, amount decimal.Decimal) error {
	g, err := t.find(name)
	if err != nil {
		return err
	}
	g.Accumulated = g.Accumulated.Add(amount)
	if t.clamp && g.Accumulated.GreaterThan(g.Target) {
		g.Accumulated = g.Target
	}
	return nil
}

// Reset sets the named goal's accumulated amount back to zero
func (t *Tracker) Reset(name string) error {
	g, err := t.find(name)
	if err != nil {
		return err
	}
	g.Accumulated = decimal.Zero
	return nil
}

// ProgressPercentage returns the named goal's progress as a percentage rounded to 2 decimal places
func (t *Tracker) ProgressPercentage(name string) (decimal.Decimal, error) {
	g, err := t.find(name)
	if err != nil {
		return decimal.Zero, err
	}
	return g.Percentage()
}

// IsCompleted returns true if the named goal has reached its target
func (t *Tracker) IsCompleted(name string) (bool, error) {
	g, err := t.find(name)
	if err != nil {
		return false, err
	}
	return g.Completed(), nil
}

// ProgressReport yields one line per goal, computed as the sequence is consumed
func (t *Tracker) ProgressReport() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, g := range t.goals {
			if !yield(progressLine(*g)) {
				return
			}
		}
	}
}

func progressLine(g Goal) string {
	if g.Completed() {
		return fmt.Sprintf("%s: completed!", g.Name)
	}
	pct, err := g.Percentage()
	if err != nil {
		// only reachable with a zero target and a negative accumulated amount
		return fmt.Sprintf("%s: no target set", g.Name)
	}
	return fmt.Sprintf("%s: %s%% complete", g.Name, FormatPercentage(pct))
}

// FormatPercentage always prints at least one decimal place, i.e. 75.0 or 33.33
func FormatPercentage(pct decimal.Decimal) string {
	s := pct.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
