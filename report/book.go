package report

import (
	"sort"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/shopspring/decimal"
)

// TransactionType is a free-form transaction label. Only IncomeType and ExpenseType count toward taxes.
type TransactionType string

const (
	IncomeType  TransactionType = "income"
	ExpenseType TransactionType = "expense"

	// DefaultCurrency is used when a transaction has no currency
	DefaultCurrency = "USD"
)

// Transaction is a dated amount in a currency. Currencies are labels only and never converted.
type Transaction struct {
	Date     time.Time
	Type     TransactionType
	Amount   decimal.Decimal
	Currency string
}

// Book is a named collection of transactions and investments
type Book struct {
	Name         string
	transactions []Transaction
	holdings     []Holding
	currencies   map[string]bool
}

// NewBook returns an empty book
func NewBook(name string) *Book {
	return &Book{
		Name:       name,
		currencies: make(map[string]bool),
	}
}

// AddTransaction records a transaction dated YYYY-MM-DD. An empty currency defaults to USD.
func (b *Book) AddTransaction(date string, txnType TransactionType, amount decimal.Decimal, currency string) (Transaction, error) {
	d, err := ledger.ParseDate(date)
	if err != nil {
		return Transaction{}, err
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	txn := Transaction{
		Date:     d,
		Type:     txnType,
		Amount:   amount,
		Currency: currency,
	}
	b.transactions = append(b.transactions, txn)
	b.currencies[currency] = true
	return txn, nil
}

// AddInvestment records a holding
func (b *Book) AddInvestment(h Holding) {
	b.holdings = append(b.holdings, h)
}

// Transactions returns every transaction in the order it was added
func (b *Book) Transactions() []Transaction {
	return append([]Transaction(nil), b.transactions...)
}

// Holdings returns every holding in the order it was added
func (b *Book) Holdings() []Holding {
	return append([]Holding(nil), b.holdings...)
}

// ByType returns transactions with the given type
func (b *Book) ByType(txnType TransactionType) []Transaction {
	return b.filter(func(t Transaction) bool { return t.Type == txnType })
}

// ByCurrency returns transactions in the given currency
func (b *Book) ByCurrency(currency string) []Transaction {
	return b.filter(func(t Transaction) bool { return t.Currency == currency })
}

// OnDate returns transactions on date's calendar day
func (b *Book) OnDate(date time.Time) []Transaction {
	y, m, d := date.Date()
	return b.filter(func(t Transaction) bool {
		ty, tm, td := t.Date.Date()
		return ty == y && tm == m && td == d
	})
}

func (b *Book) filter(keep func(Transaction) bool) []Transaction {
	var txns []Transaction
	for _, t := range b.transactions {
		if keep(t) {
			txns = append(txns, t)
		}
	}
	return txns
}

// Currencies returns every currency used, sorted
func (b *Book) Currencies() []string {
	currencies := make([]string, 0, len(b.currencies))
	for c := range b.currencies {
		currencies = append(currencies, c)
	}
	sort.Strings(currencies)
	return currencies
}

// Tax summarizes all transactions
func (b *Book) Tax() Tax {
	return TaxSummary(b.transactions)
}

// Investments summarizes all holdings
func (b *Book) Investments() Investments {
	return InvestmentSummary(b.holdings)
}

// FromLedger converts ledger entries into USD transactions
func FromLedger(entries []ledger.Entry) []Transaction {
	txns := make([]Transaction, 0, len(entries))
	for _, e := range entries {
		txnType := IncomeType
		if e.Kind == ledger.Expense {
			txnType = ExpenseType
		}
		txns = append(txns, Transaction{
			Date:     e.Date,
			Type:     txnType,
			Amount:   e.Amount,
			Currency: DefaultCurrency,
		})
	}
	return txns
}
