package report

import (
	"io"
	"iter"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/budget"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/reminder"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	lossAdvice     = "You had a loss this year. Consider consulting a tax professional to see if you are eligible for any deductions or credits."
	positiveAdvice = "Congratulations on your positive net income! Consider consulting a tax professional to see if you are eligible for any deductions or credits."
)

// Text writes reports for people to read on a console
type Text struct {
	w       io.Writer
	printer *message.Printer
	title   cases.Caser
}

// NewText returns a Text writing to w with US English number formatting
func NewText(w io.Writer) *Text {
	return &Text{
		w:       w,
		printer: message.NewPrinter(language.AmericanEnglish),
		title:   cases.Title(language.English),
	}
}

func (t *Text) printf(format string, args ...interface{}) {
	t.printer.Fprintf(t.w, format, args...)
}

// money formats d with exactly two decimal places
func money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Tax writes income, expenses, and net income with advice for the result
func (t *Text) Tax(tax Tax) {
	t.printf("Income: %s\n", money(tax.Income))
	t.printf("Expenses: %s\n", money(tax.Expenses))
	t.printf("Net Income: %s\n", money(tax.Net))
	if tax.Positive {
		t.printf("%s\n", positiveAdvice)
	} else {
		t.printf("%s\n", lossAdvice)
	}
}

// Investments writes each holding's value followed by totals
func (t *Text) Investments(inv Investments) {
	for _, h := range inv.Holdings {
		t.printf("%s (%s)\n", h.Name, h.Symbol)
		t.printf("Investment value: %s\n", money(h.Cost))
		t.printf("Current value: %s\n", money(h.MarketValue))
		t.printf("Gain/loss: %s\n", money(h.Gain))
	}
	t.printf("\nTotal investment value: %s\n", money(inv.TotalCost))
	t.printf("Total current value: %s\n", money(inv.TotalMarketValue))
	t.printf("Overall gain/loss: %s\n", money(inv.Gain))
}

// Overview writes income, expenses, and the balance between them
func (t *Text) Overview(o Overview) {
	t.printf("Income: %s\n", money(o.Income))
	t.printf("Expenses: %s\n", money(o.Expenses))
	t.printf("Balance: %s\n", money(o.Balance))
}

// CategoryTotals writes one line per category with a title-cased name
func (t *Text) CategoryTotals(totals []CategoryAmount) {
	t.printf("Total expenses by category\n")
	for _, c := range totals {
		t.printf("  %s: %s\n", t.title.String(c.Category), money(c.Amount))
	}
}

// CashFlow writes income and expenses per date
func (t *Text) CashFlow(flows []DailyFlow) {
	t.printf("Income vs. expenses\n")
	for _, f := range flows {
		t.printf("  %s  income %s  expenses %s\n", f.Date.Format(ledger.DateFormat), money(f.Income), money(f.Expenses))
	}
}

// Alerts writes one line per budget alert
func (t *Text) Alerts(alerts []budget.Alert) {
	for _, a := range alerts {
		t.printf("Alert: %s\n", a.String())
	}
}

// Goals writes each goal progress line
func (t *Text) Goals(lines iter.Seq[string]) {
	for line := range lines {
		t.printf("%s\n", line)
	}
}

// Reminders writes upcoming reminders, or a note that there are none
func (t *Text) Reminders(upcoming []reminder.Reminder, ok bool) {
	if !ok {
		t.printf("No reminders today.\n")
		return
	}
	t.printf("Upcoming reminders:\n")
	for _, r := range upcoming {
		t.printf("- %s\n", r.String())
	}
}

// Currencies writes the currencies used in a book
func (t *Text) Currencies(currencies []string) {
	t.printf("Available currencies: %v\n", currencies)
}
