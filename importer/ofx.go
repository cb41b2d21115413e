package importer

import (
	"io"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/budget"
	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/redactor"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/rules"
	"github.com/aclindsa/ofxgo"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Result is everything recorded by an import
type Result struct {
	Entries []ledger.Entry
	Alerts  []budget.Alert
}

// ReadOFX parses an OFX statement from r and records its transactions in ldg
func ReadOFX(r io.Reader, ldg *ledger.Ledger, categories rules.Rules, logger *zap.Logger) (Result, error) {
	resp, err := ofxgo.ParseResponse(r)
	if err != nil {
		return Result{}, errors.Wrap(err, "Error parsing OFX statement")
	}
	return Import(resp, ldg, categories, logger)
}

// Import records every bank and credit card transaction in resp.
// Credits become income and debits become expenses, categorized by 'categories'.
// Transactions that fail to record are skipped and returned together as an errors.Errors.
func Import(resp *ofxgo.Response, ldg *ledger.Ledger, categories rules.Rules, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	messages := make([]ofxgo.Message, 0, len(resp.Bank)+len(resp.CreditCard))
	messages = append(messages, resp.Bank...)
	messages = append(messages, resp.CreditCard...)
	if len(messages) == 0 {
		return Result{}, errors.New("No messages received")
	}

	var ofxTxns []ofxgo.Transaction
	for _, message := range messages {
		switch statement := message.(type) {
		case *ofxgo.StatementResponse:
			logger.Debug("Reading bank statement", redactor.Account("account", string(statement.BankAcctFrom.AcctID)))
			if statement.BankTranList != nil {
				ofxTxns = append(ofxTxns, statement.BankTranList.Transactions...)
			}
		case *ofxgo.CCStatementResponse:
			logger.Debug("Reading credit card statement", redactor.Account("account", string(statement.CCAcctFrom.AcctID)))
			if statement.BankTranList != nil {
				ofxTxns = append(ofxTxns, statement.BankTranList.Transactions...)
			}
		default:
			return Result{}, errors.Errorf("Invalid statement type: %T", message)
		}
	}

	var result Result
	var errs sErrors.Errors
	for _, txn := range ofxTxns {
		line, err := parseLine(txn)
		if err != nil {
			errs.Add(errors.Wrapf(err, "Transaction %q", string(txn.FiTID)))
			continue
		}
		category := categories.Categorize(line)
		date := line.Date.Format(ledger.DateFormat)

		var entry ledger.Entry
		var alert *budget.Alert
		if line.Amount.Sign() >= 0 {
			entry, err = ldg.RecordIncome(line.Amount, date, category)
		} else {
			entry, alert, err = ldg.RecordExpense(line.Amount.Abs(), date, category)
		}
		if err != nil {
			errs.Add(errors.Wrapf(err, "Transaction %q", string(txn.FiTID)))
			continue
		}
		result.Entries = append(result.Entries, entry)
		if alert != nil {
			result.Alerts = append(result.Alerts, *alert)
		}
	}
	logger.Info("Imported OFX transactions",
		zap.Int("recorded", len(result.Entries)),
		zap.Int("failed", len(errs)),
		zap.Int("alerts", len(result.Alerts)),
	)
	return result, errs.Err()
}

func parseLine(txn ofxgo.Transaction) (rules.Line, error) {
	payee := string(txn.Name)
	if payee == "" && txn.Payee != nil {
		payee = string(txn.Payee.Name)
	}
	amountStr := txn.TrnAmt.String()
	amount, err := decimal.NewFromString(amountStr)
	if err != nil {
		return rules.Line{}, &sErrors.ParseError{Value: amountStr, Cause: err}
	}
	return rules.Line{
		Date:   txn.DtPosted.Time,
		Payee:  normalizePayee(payee),
		Amount: amount,
	}, nil
}
