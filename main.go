package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/config"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/goal"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/importer"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/report"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/rules"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/server"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// budgetFlags collects repeated -budget Category=amount flags
type budgetFlags map[string]decimal.Decimal

func (b budgetFlags) String() string {
	pairs := make([]string, 0, len(b))
	for category, limit := range b {
		pairs = append(pairs, category+"="+limit.String())
	}
	return strings.Join(pairs, ",")
}

func (b budgetFlags) Set(value string) error {
	i := strings.LastIndex(value, "=")
	if i <= 0 {
		return errors.Errorf("Budget must be formatted as Category=amount: %q", value)
	}
	limit, err := decimal.NewFromString(value[i+1:])
	if err != nil {
		return errors.Wrapf(err, "Invalid budget amount for %q", value[:i])
	}
	b[value[:i]] = limit
	return nil
}

func loadRules(fileName string) (rules.Rules, error) {
	if fileName == "" {
		return nil, nil
	}
	rulesFile, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrapf(err, "Error opening rules file '%s'", fileName)
	}
	defer rulesFile.Close()
	r, err := rules.Read(rulesFile)
	return r, errors.Wrapf(err, "Error reading rules from file '%s'", fileName)
}

func newLogger(development bool) (*zap.Logger, error) {
	if development {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// importStatement records the OFX file's transactions and writes a text report of the results to w
func importStatement(w io.Writer, fileName string, books *server.Books, logger *zap.Logger) error {
	ofxFile, err := os.Open(fileName)
	if err != nil {
		return errors.Wrapf(err, "Error opening OFX file '%s'", fileName)
	}
	defer ofxFile.Close()

	result, importErr := importer.ReadOFX(ofxFile, books.Ledger, books.Rules, logger)
	if importErr != nil && len(result.Entries) == 0 {
		return importErr
	}

	entries := books.Ledger.All()
	text := report.NewText(w)
	text.Overview(report.Summarize(entries))
	fmt.Fprintln(w)
	text.CategoryTotals(report.CategoryTotals(entries))
	fmt.Fprintln(w)
	text.CashFlow(report.CashFlow(entries))
	fmt.Fprintln(w)
	text.Alerts(result.Alerts)
	text.Alerts(books.Ledger.EvaluateBudgets())
	text.Tax(report.TaxSummary(report.FromLedger(entries)))
	return importErr
}

func usage(flagSet *flag.FlagSet) string {
	oldOutput := flagSet.Output()
	buf := bytes.NewBuffer(nil)
	flagSet.SetOutput(buf)
	flagSet.Usage()
	flagSet.SetOutput(oldOutput)
	return buf.String()
}

func handleErrors(args []string, stdout io.Writer) (usageErr bool, err error) {
	flagSet := flag.NewFlagSet("finance", flag.ContinueOnError)
	isServer := flagSet.Bool("server", false, "Starts the http server until terminated")
	serverPort := flagSet.Uint("port", 0, "Sets the port the server listens on. Defaults to $PORT or 8080. Implies -server")
	ofxFileName := flagSet.String("ofx", "", "Path to an OFX statement to import and report on. Required unless running the server")
	rulesFileName := flagSet.String("rules", "", "Path to an hledger-style rules file for categorizing imports. Defaults to $RULES_FILE")
	clamp := flagSet.Bool("clamp", false, "Caps goal contributions at each goal's target. Defaults to $CLAMP_GOALS")
	envFileName := flagSet.String("env", config.DefaultEnvFile, "Path to an environment file")
	budgets := make(budgetFlags)
	flagSet.Var(budgets, "budget", "Sets a category's budget, i.e. -budget Food=500. May be repeated")
	if err := flagSet.Parse(args); err != nil {
		return true, err
	}

	cfg, err := config.Load(*envFileName)
	if err != nil {
		return false, err
	}
	if *serverPort != 0 {
		cfg.Port = fmt.Sprintf("%d", *serverPort)
	}
	if *rulesFileName != "" {
		cfg.RulesFile = *rulesFileName
	}
	if *clamp {
		cfg.ClampGoals = "true"
	}
	if err := cfg.Validate(); err != nil {
		return true, errors.Errorf("%s\n%s", err.Error(), usage(flagSet))
	}

	*isServer = *isServer || *serverPort != 0
	if !*isServer && *ofxFileName == "" {
		return true, errors.Errorf("Missing required flags: [ofx]\n%s", usage(flagSet))
	}

	logger, err := newLogger(cfg.IsDevelopment())
	if err != nil {
		return false, err
	}
	defer logger.Sync()

	categories, err := loadRules(cfg.RulesFile)
	if err != nil {
		return false, err
	}
	var goalOpts []goal.TrackerOpt
	if cfg.Clamp() {
		goalOpts = append(goalOpts, goal.ClampToTarget())
	}
	books := server.NewBooks(logger, categories, goalOpts...)
	for category, limit := range budgets {
		books.Ledger.SetBudget(category, limit)
	}

	if !*isServer {
		return false, importStatement(stdout, *ofxFileName, books, logger)
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	err = server.Run(cfg.Addr(), books, logger)
	if err != nil {
		logger.Error("Server run failed", zap.Error(err))
	}
	return false, err
}

func main() {
	usageErr, err := handleErrors(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if usageErr {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
