package reminder

import (
	"fmt"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
)

// Reminder is a labeled bill or payment due date
type Reminder struct {
	Label string
	Due   time.Time
}

func (r Reminder) String() string {
	return fmt.Sprintf("%s is due on %s", r.Label, r.Due.Format(ledger.DateFormat))
}

// Scheduler holds reminders in the order they were set. Reminders are never removed.
type Scheduler struct {
	reminders []Reminder
	getTime   func() time.Time
}

// New returns an empty Scheduler
func New() *Scheduler {
	return &Scheduler{getTime: time.Now}
}

// Set adds a reminder due on the YYYY-MM-DD date 'due'
func (s *Scheduler) Set(label, due string) error {
	dueDate, err := ledger.ParseDate(due)
	if err != nil {
		return err
	}
	s.reminders = append(s.reminders, Reminder{Label: label, Due: dueDate})
	return nil
}

// All returns every reminder in the order it was set
func (s *Scheduler) All() []Reminder {
	return append([]Reminder(nil), s.reminders...)
}

// Check returns reminders due on or after today, in the order they were set.
// Returns false if there are none.
func (s *Scheduler) Check(today time.Time) ([]Reminder, bool) {
	today = startOfDay(today)
	var upcoming []Reminder
	for _, r := range s.reminders {
		if !r.Due.Before(today) {
			upcoming = append(upcoming, r)
		}
	}
	return upcoming, len(upcoming) > 0
}

// CheckNow runs Check for the current UTC date
func (s *Scheduler) CheckNow() ([]Reminder, bool) {
	return s.Check(s.getTime().UTC())
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
