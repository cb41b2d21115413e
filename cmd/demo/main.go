package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/budget"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/goal"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/importer"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/pipe"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/reminder"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/report"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/rules"
	"github.com/aclindsa/ofxgo"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const demoRules = `
# generated statement payees
if
payroll
  category Salary

if
grocer
whole foods
deli
  category Groceries

if
burger
spoon
bar and grill
  category Dining

if
energy
cleaners
  category Utilities
`

var dec = decimal.NewFromFloat

// prints an example of every report, then imports a generated statement
func main() {
	ofxOut := flag.String("ofx-out", "", "Also write the generated statement to this OFX file")
	month := flag.String("month", "2023-04", "Month of the generated statement, formatted YYYY-MM")
	flag.Parse()

	if err := run(os.Stdout, *month, *ofxOut); err != nil {
		fmt.Fprintln(os.Stderr, "Error running demo:", err.Error())
		os.Exit(1)
	}
}

func run(w io.Writer, month, ofxOut string) error {
	text := report.NewText(w)
	return pipe.Ops{
		pipe.Step("track budgets", func() error { return ledgerDemo(w, text) }),
		pipe.Step("track goals", func() error { return goalDemo(w, text) }),
		pipe.Step("check reminders", func() error { return reminderDemo(w, text) }),
		pipe.Step("summarize taxes and investments", func() error { return bookDemo(w, text) }),
		pipe.Step("import a statement", func() error { return statementDemo(w, text, month, ofxOut) }),
	}.Do()
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func ledgerDemo(w io.Writer, text *report.Text) error {
	heading(w, "Budget")
	ldg := ledger.New(nil)
	ldg.SetBudget("Food", dec(1000))
	if _, err := ldg.RecordIncome(dec(5000), "2022-03-15", "Salary"); err != nil {
		return err
	}
	if _, err := ldg.RecordIncome(dec(2000), "2022-03-20", "Bonus"); err != nil {
		return err
	}
	for _, expense := range []struct {
		amount   float64
		date     string
		category string
	}{
		{1500, "2022-03-17", "Food"},
		{300, "2022-03-18", "Transportation"},
		{200, "2022-03-20", "Food"},
	} {
		_, alert, err := ldg.RecordExpense(dec(expense.amount), expense.date, expense.category)
		if err != nil {
			return err
		}
		if alert != nil {
			text.Alerts([]budget.Alert{*alert})
		}
	}
	text.Alerts(ldg.EvaluateBudgets())

	entries := ldg.All()
	text.Overview(report.Summarize(entries))
	text.CategoryTotals(report.CategoryTotals(entries))
	text.CashFlow(report.CashFlow(entries))
	return nil
}

func goalDemo(w io.Writer, text *report.Text) error {
	heading(w, "Goals")
	tracker := goal.New()
	if err := tracker.Add("Vacation", dec(5000), goal.OfType("savings"), goal.Between("2023-01-01", "2023-12-31")); err != nil {
		return err
	}
	if err := tracker.Add("Emergency Fund", dec(1000)); err != nil {
		return err
	}
	for _, contribution := range []struct {
		name   string
		amount float64
	}{
		{"Vacation", 1000},
		{"Vacation", 2000},
		{"Emergency Fund", 1000},
	} {
		if err := tracker.Contribute(contribution.name, dec(contribution.amount)); err != nil {
			return err
		}
	}
	text.Goals(tracker.ProgressReport())
	return nil
}

func reminderDemo(w io.Writer, text *report.Text) error {
	heading(w, "Reminders")
	scheduler := reminder.New()
	if err := scheduler.Set("Rent", "2023-05-01"); err != nil {
		return err
	}
	if err := scheduler.Set("Phone bill", "2023-03-01"); err != nil {
		return err
	}
	today := time.Date(2023, time.April, 15, 0, 0, 0, 0, time.UTC)
	text.Reminders(scheduler.Check(today))
	return nil
}

func bookDemo(w io.Writer, text *report.Text) error {
	heading(w, "Taxes and investments")
	book := report.NewBook("Household")
	for _, txn := range []struct {
		date     string
		txnType  report.TransactionType
		amount   float64
		currency string
	}{
		{"2022-01-01", report.IncomeType, 5000, ""},
		{"2022-01-05", report.ExpenseType, 1500, ""},
		{"2022-01-10", report.ExpenseType, 300, "EUR"},
	} {
		if _, err := book.AddTransaction(txn.date, txn.txnType, dec(txn.amount), txn.currency); err != nil {
			return err
		}
	}
	book.AddInvestment(report.Holding{
		Symbol:        "AAPL",
		Name:          "Apple Inc.",
		Quantity:      dec(10),
		PurchasePrice: dec(200),
		CurrentPrice:  dec(250),
	})
	text.Tax(book.Tax())
	fmt.Fprintln(w)
	text.Investments(book.Investments())
	text.Currencies(book.Currencies())
	return nil
}

func statementDemo(w io.Writer, text *report.Text, month, ofxOut string) error {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return errors.Wrapf(err, "Invalid month %q", month)
	}
	end := start.AddDate(0, 1, 0)
	heading(w, "Imported statement for "+start.Format("January 2006"))

	generator := StatementGenerator{
		Org:           "Demo Bank",
		FID:           "1234",
		AccountID:     "0001",
		RoutingNumber: "012345678",
	}
	resp, err := generator.Statement(start, end)
	if err != nil {
		return err
	}
	if ofxOut != "" {
		if err := writeStatement(resp, ofxOut); err != nil {
			return err
		}
	}

	categories, err := rules.Read(strings.NewReader(demoRules))
	if err != nil {
		return err
	}
	ldg := ledger.New(zap.NewNop())
	ldg.SetBudget("Dining", dec(200))
	result, err := importer.Import(&resp, ldg, categories, nil)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Recorded %d transactions\n", len(result.Entries))
	entries := ldg.All()
	text.Overview(report.Summarize(entries))
	text.CategoryTotals(report.CategoryTotals(entries))
	text.Alerts(ldg.EvaluateBudgets())
	return nil
}

func writeStatement(resp ofxgo.Response, fileName string) error {
	buf, err := resp.Marshal()
	if err != nil {
		return errors.Wrap(err, "Error encoding OFX statement")
	}
	f, err := os.OpenFile(fileName, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = buf.WriteTo(f)
	return err
}
