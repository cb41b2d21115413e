package main

import (
	"bytes"
	"encoding/binary"
	"strconv"
	"time"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/rand"
	"golang.org/x/text/currency"
)

const (
	ofxVersion   = "220"
	statementUID = ofxgo.UID("0f94ce83-13b7-7568-e4fc-c02c7b47e7ab")
	payday       = 15
)

var payroll = decimal.NewFromInt(2500)

// StatementGenerator deterministically generates a bank statement for an account
type StatementGenerator struct {
	Org           string
	FID           string
	AccountID     string
	RoutingNumber string
	seed          uint64
}

func (s *StatementGenerator) getSeed() uint64 {
	if s.seed == 0 {
		s.seed = seedStringToInt(s.FID + "-" + s.AccountID)
	}
	return s.seed
}

func seedStringToInt(seed string) uint64 {
	buf := bytes.NewBufferString(seed)
	var reducedVal uint64 = 1
	for val, err := binary.ReadUvarint(buf); err == nil; val, err = binary.ReadUvarint(buf) {
		reducedVal = (reducedVal ^ val) * (val | 1)
	}
	return reducedVal
}

// Statement returns a response with one bank statement, or one credit card statement if RoutingNumber is empty
func (s *StatementGenerator) Statement(start, end time.Time) (ofxgo.Response, error) {
	version, err := ofxgo.NewOfxVersion(ofxVersion)
	if err != nil {
		return ofxgo.Response{}, err
	}
	successStatus := ofxgo.Status{
		Code:     0,
		Severity: ofxgo.String("INFO"),
		Message:  ofxgo.String("Success"),
	}
	response := ofxgo.Response{
		Version: version,
		Signon: ofxgo.SignonResponse{
			Status:   successStatus,
			DtServer: ofxgo.Date{Time: end},
			Language: ofxgo.String("ENG"),
			Org:      ofxgo.String(s.Org),
			Fid:      ofxgo.String(s.FID),
		},
	}
	txnList := &ofxgo.TransactionList{
		DtStart:      ofxgo.Date{Time: start},
		DtEnd:        ofxgo.Date{Time: end},
		Transactions: s.transactions(start, end),
	}

	if s.RoutingNumber != "" {
		response.Bank = append(response.Bank, &ofxgo.StatementResponse{
			TrnUID: statementUID,
			Status: successStatus,
			CurDef: ofxgo.CurrSymbol{Unit: currency.USD},
			DtAsOf: ofxgo.Date{Time: end},
			BankAcctFrom: ofxgo.BankAcct{
				BankID:   ofxgo.String(s.RoutingNumber),
				AcctID:   ofxgo.String(s.AccountID),
				AcctType: ofxgo.AcctTypeChecking,
			},
			BankTranList: txnList,
		})
	} else {
		response.CreditCard = append(response.CreditCard, &ofxgo.CCStatementResponse{
			TrnUID: statementUID,
			Status: successStatus,
			CurDef: ofxgo.CurrSymbol{Unit: currency.USD},
			DtAsOf: ofxgo.Date{Time: end},
			CCAcctFrom: ofxgo.CCAcct{
				AcctID: ofxgo.String(s.AccountID),
			},
			BankTranList: txnList,
		})
	}
	return response, nil
}

// transactions makes one payroll credit on each payday and up to one purchase every other day
func (s *StatementGenerator) transactions(start, end time.Time) []ofxgo.Transaction {
	var txns []ofxgo.Transaction
	for date := startOfDay(start); date.Before(end); date = date.AddDate(0, 0, 1) {
		daySeed := s.getSeed() * uint64(date.Year()) * uint64(date.YearDay())
		var src rand.PCGSource
		src.Seed(daySeed)
		random := rand.New(&src)

		if date.Day() == payday {
			txns = append(txns, newTransaction(strconv.FormatUint(random.Uint64(), 10), date, "ACME PAYROLL "+date.Format("20060102"), payroll))
		}
		if random.Intn(2) == 0 {
			continue
		}
		amount := decimal.NewFromFloat(1 + random.Float64()*float64(random.Intn(150))).Round(2).Neg()
		payee := payeeChoices[random.Intn(len(payeeChoices))]
		txns = append(txns, newTransaction(strconv.FormatUint(random.Uint64(), 10), date, payee, amount))
	}
	return txns
}

func newTransaction(id string, date time.Time, payee string, amount decimal.Decimal) ofxgo.Transaction {
	txn := ofxgo.Transaction{
		Name:     ofxgo.String(payee),
		DtPosted: ofxgo.Date{Time: date},
		TrnAmt:   ofxgo.Amount{Rat: *amount.Rat()},
		FiTID:    ofxgo.String(id),
		Currency: &ofxgo.Currency{CurSym: ofxgo.CurrSymbol{Unit: currency.USD}},
	}
	if amount.IsNegative() {
		txn.TrnType = ofxgo.TrnTypeDebit
	} else {
		txn.TrnType = ofxgo.TrnTypeCredit
	}
	return txn
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var (
	payeeChoices = []string{
		"Green Grape Grocer #12",
		"Whole Foods #10",
		"Hamstrung Deli",
		"Burger Palace",
		"Roaring Spoon",
		"Luna Tick's Bar and Grill",
		"Half Life Energy",
		"Lightship Travel",
		"Home Despot",
		"Snowball Cleaners",
		"Screech Sound Systems",
		"Yesterday's News",
	}
)
