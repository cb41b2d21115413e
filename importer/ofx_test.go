package importer

import (
	"math/big"
	"strings"
	"testing"
	"time"

	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/rules"
	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var dec = decimal.NewFromFloat

func makeOFXAmount(f float64) ofxgo.Amount {
	rat, _ := big.NewFloat(f).Rat(nil)
	return ofxgo.Amount{Rat: *rat}
}

func makeOFXTxn(id, payee, date string, amount float64) ofxgo.Transaction {
	d, err := time.Parse(ledger.DateFormat, date)
	if err != nil {
		panic(err)
	}
	return ofxgo.Transaction{
		FiTID:    ofxgo.String(id),
		Name:     ofxgo.String(payee),
		DtPosted: ofxgo.Date{Time: d},
		TrnAmt:   makeOFXAmount(amount),
	}
}

func someRules(t *testing.T) rules.Rules {
	r, err := rules.Read(strings.NewReader(`
if
payroll
  category Salary

if
whole foods
  category Groceries
`))
	require.NoError(t, err)
	return r
}

func TestImportNoMessages(t *testing.T) {
	_, err := Import(&ofxgo.Response{}, ledger.New(nil), nil, nil)
	assert.EqualError(t, err, "No messages received")
}

func TestImport(t *testing.T) {
	resp := &ofxgo.Response{
		Bank: []ofxgo.Message{
			&ofxgo.StatementResponse{
				BankAcctFrom: ofxgo.BankAcct{
					AcctID:   ofxgo.String("1234"),
					AcctType: ofxgo.AcctTypeChecking,
				},
				BankTranList: &ofxgo.TransactionList{
					Transactions: []ofxgo.Transaction{
						makeOFXTxn("1", "ACME PAYROLL", "2023-04-01", 1000),
						makeOFXTxn("2", "Whole Foods #10", "2023-04-08", -50.25),
					},
				},
			},
			&ofxgo.StatementResponse{}, // no transaction list
		},
		CreditCard: []ofxgo.Message{
			&ofxgo.CCStatementResponse{
				CCAcctFrom: ofxgo.CCAcct{AcctID: ofxgo.String("5678")},
				BankTranList: &ofxgo.TransactionList{
					Transactions: []ofxgo.Transaction{
						{
							FiTID:    ofxgo.String("3"),
							Payee:    &ofxgo.Payee{Name: ofxgo.String("Corner Store")},
							DtPosted: ofxgo.Date{Time: time.Date(2023, time.April, 9, 0, 0, 0, 0, time.UTC)},
							TrnAmt:   makeOFXAmount(-120),
						},
					},
				},
			},
		},
	}

	ldg := ledger.New(nil)
	ldg.SetBudget("Uncategorized", dec(100))
	core, logs := observer.New(zapcore.DebugLevel)
	result, err := Import(resp, ldg, someRules(t), zap.New(core))
	require.NoError(t, err)

	statementLogs := logs.FilterMessage("Reading bank statement").All()
	require.Len(t, statementLogs, 2)
	assert.Equal(t, "****", statementLogs[0].ContextMap()["account"])
	ccLogs := logs.FilterMessage("Reading credit card statement").All()
	require.Len(t, ccLogs, 1)
	assert.Equal(t, "****", ccLogs[0].ContextMap()["account"])
	assert.Equal(t, 1, logs.FilterMessage("Imported OFX transactions").Len())
	require.Len(t, result.Entries, 3)

	assert.Equal(t, ledger.Income, result.Entries[0].Kind)
	assert.Equal(t, "Salary", result.Entries[0].Category)
	assert.True(t, dec(1000).Equal(result.Entries[0].Amount))

	assert.Equal(t, ledger.Expense, result.Entries[1].Kind)
	assert.Equal(t, "Groceries", result.Entries[1].Category)
	assert.True(t, dec(50.25).Equal(result.Entries[1].Amount), "expenses are recorded as positive amounts")

	assert.Equal(t, rules.Uncategorized, result.Entries[2].Category)
	require.Len(t, result.Alerts, 1)
	assert.Equal(t, rules.Uncategorized, result.Alerts[0].Category)

	assert.Equal(t, []string{"Salary", "Groceries", "Uncategorized"}, ldg.Categories())
}

func TestImportInvalidStatement(t *testing.T) {
	resp := &ofxgo.Response{
		Bank: []ofxgo.Message{&ofxgo.InvStatementResponse{}},
	}
	_, err := Import(resp, ledger.New(nil), nil, nil)
	assert.EqualError(t, err, "Invalid statement type: *ofxgo.InvStatementResponse")
}

func TestImportBadDate(t *testing.T) {
	resp := &ofxgo.Response{
		Bank: []ofxgo.Message{
			&ofxgo.StatementResponse{
				BankTranList: &ofxgo.TransactionList{
					Transactions: []ofxgo.Transaction{
						{FiTID: ofxgo.String("bad"), DtPosted: ofxgo.Date{Time: time.Date(-1, time.January, 1, 0, 0, 0, 0, time.UTC)}, TrnAmt: makeOFXAmount(1)},
						makeOFXTxn("good", "Payroll", "2023-04-01", 1),
					},
				},
			},
		},
	}
	ldg := ledger.New(nil)
	result, err := Import(resp, ldg, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Transaction "bad"`)
	assert.Len(t, result.Entries, 1, "later transactions are still recorded")
	assert.Len(t, ldg.All(), 1)
	_, isAggregate := err.(sErrors.Errors)
	assert.False(t, isAggregate, "a single failure is returned directly")
}

func TestReadOFXInvalid(t *testing.T) {
	_, err := ReadOFX(strings.NewReader("not ofx"), ledger.New(nil), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error parsing OFX statement")
}
