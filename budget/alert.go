package budget

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Scope distinguishes a single over-budget expense from a category whose total is over budget
type Scope string

const (
	// TransactionScope alerts compare one expense against the limit captured when it was recorded
	TransactionScope Scope = "transaction"
	// CategoryScope alerts compare all of a category's expenses against the current limit
	CategoryScope Scope = "category"
)

// Alert reports an amount over a category's budget
type Alert struct {
	Scope    Scope
	Category string
	Limit    decimal.Decimal
	Amount   decimal.Decimal
}

// Over returns how far Amount exceeds Limit
func (a Alert) Over() decimal.Decimal {
	return a.Amount.Sub(a.Limit)
}

func (a Alert) String() string {
	return fmt.Sprintf("You have exceeded your budget of %s for %s expenses.", a.Limit, a.Category)
}
