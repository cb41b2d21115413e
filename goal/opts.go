package goal

import (
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/pkg/errors"
)

// TrackerOpt configures the Tracker built by New
type TrackerOpt interface {
	do(*Tracker)
}

type trackerOpt func(*Tracker)

func (opt trackerOpt) do(t *Tracker) {
	opt(t)
}

// ClampToTarget caps every goal's accumulated amount at its target
func ClampToTarget() TrackerOpt {
	return trackerOpt(func(t *Tracker) {
		t.clamp = true
	})
}

// Opt configures a goal added with Tracker.Add
type Opt interface {
	do(*Goal) error
}

type goalOpt func(*Goal) error

func (opt goalOpt) do(g *Goal) error {
	return opt(g)
}

// Between sets the goal's start and end dates, formatted YYYY-MM-DD
func Between(start, end string) Opt {
	return goalOpt(func(g *Goal) error {
		startDate, err := ledger.ParseDate(start)
		if err != nil {
			return errors.Wrap(err, "Invalid start date")
		}
		endDate, err := ledger.ParseDate(end)
		if err != nil {
			return errors.Wrap(err, "Invalid end date")
		}
		g.Start, g.End = startDate, endDate
		return nil
	})
}

// OfType labels the goal, i.e. "savings" or "debt"
func OfType(goalType string) Opt {
	return goalOpt(func(g *Goal) error {
		g.Type = goalType
		return nil
	})
}
