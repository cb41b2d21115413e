package report

import (
	"github.com/shopspring/decimal"
)

// Tax is net income for a set of transactions. No tax brackets are applied.
type Tax struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Net      decimal.Decimal
	// Positive is false when Net is a loss
	Positive bool
}

// TaxSummary subtracts expense transactions from income transactions. Other types are ignored.
func TaxSummary(txns []Transaction) Tax {
	tax := Tax{Income: decimal.Zero, Expenses: decimal.Zero}
	for _, txn := range txns {
		switch txn.Type {
		case IncomeType:
			tax.Income = tax.Income.Add(txn.Amount)
		case ExpenseType:
			tax.Expenses = tax.Expenses.Add(txn.Amount)
		}
	}
	tax.Net = tax.Income.Sub(tax.Expenses)
	tax.Positive = tax.Net.Sign() >= 0
	return tax
}
