package ledger

import (
	"fmt"
	"time"

	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/shopspring/decimal"
)

const (
	// DateFormat is the layout for every date accepted by the ledger
	DateFormat = "2006-01-02"
	// dateFormatDescription is DateFormat as shown to people
	dateFormatDescription = "YYYY-MM-DD"
)

// Kind is the direction of money in an Entry
type Kind int

const (
	Income Kind = iota
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Entry is a single income or expense. Entries are values and never change after creation.
type Entry struct {
	Kind     Kind
	Amount   decimal.Decimal
	Date     time.Time
	Category string
	// Limit is the category's budget when an expense was recorded. Nil for incomes and unconstrained expenses.
	Limit *decimal.Decimal `json:",omitempty"`
}

// ParseDate parses an ISO YYYY-MM-DD date
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateFormat, date)
	if err != nil {
		return time.Time{}, &sErrors.ParseError{Value: date, Layout: dateFormatDescription, Cause: err}
	}
	return t, nil
}

// NewEntry creates an entry, parsing date as YYYY-MM-DD
func NewEntry(kind Kind, amount decimal.Decimal, date, category string) (Entry, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Kind:     kind,
		Amount:   amount,
		Date:     d,
		Category: category,
	}, nil
}

// OverBudget returns true if this is an expense larger than the limit captured when it was recorded
func (e Entry) OverBudget() bool {
	return e.Kind == Expense && e.Limit != nil && e.Amount.GreaterThan(*e.Limit)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s %s", e.Date.Format(DateFormat), e.Kind, e.Category, e.Amount)
}
