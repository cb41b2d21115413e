package server

import (
	"sync"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/goal"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/reminder"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/rules"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	reportCacheExpiration = 5 * time.Minute
	importsPerMinute      = 6
)

// Books is the state served over HTTP. Handlers hold mu for every access.
type Books struct {
	mu        sync.Mutex
	revision  *atomic.Uint64
	Ledger    *ledger.Ledger
	Goals     *goal.Tracker
	Reminders *reminder.Scheduler
	Rules     rules.Rules
}

// NewBooks returns empty books
func NewBooks(logger *zap.Logger, categories rules.Rules, goalOpts ...goal.TrackerOpt) *Books {
	return &Books{
		revision:  atomic.NewUint64(0),
		Ledger:    ledger.New(logger),
		Goals:     goal.New(goalOpts...),
		Reminders: reminder.New(),
		Rules:     categories,
	}
}

func (b *Books) lock() func() {
	b.mu.Lock()
	return b.mu.Unlock
}

// Revision increases each time the ledger changes
func (b *Books) Revision() uint64 {
	return b.revision.Load()
}

func (b *Books) changed() {
	b.revision.Inc()
}

// Run serves books on addr until the server fails
func Run(addr string, books *Books, logger *zap.Logger) error {
	engine := New(books, logger)
	logger.Info("Starting server", zap.String("addr", addr))
	return engine.Run(addr)
}

// New creates the HTTP handler for books
func New(books *Books, logger *zap.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		recovery(logger, true),
	)
	setupAPI(engine.Group("/api/v1"), books, logger)
	return engine
}

func setupAPI(router gin.IRouter, books *Books, logger *zap.Logger) {
	reports := newReportCache(books, reportCacheExpiration)
	importLimiter := rate.NewLimiter(rate.Every(time.Minute/importsPerMinute), importsPerMinute)

	router.POST("/incomes", recordIncome(books))
	router.POST("/expenses", recordExpense(books))
	router.GET("/categories", getCategories(books))
	router.PUT("/budgets/:category", setBudget(books))
	router.DELETE("/budgets/:category", removeBudget(books))
	router.GET("/budgets/alerts", getBudgetAlerts(books))
	router.POST("/import", rateLimit(importLimiter), importOFX(books, logger))

	router.GET("/reports/categories", reports.handler(categoryTotals))
	router.GET("/reports/cashflow", reports.handler(cashFlow))
	router.GET("/reports/overview", reports.handler(overview))
	router.GET("/reports/tax", reports.handler(tax))

	router.GET("/goals", getGoals(books))
	router.POST("/goals", addGoal(books))
	router.GET("/goals/report", getGoalReport(books))
	router.POST("/goals/:name/contributions", contribute(books))
	router.POST("/goals/:name/reset", resetGoal(books))

	router.GET("/reminders", getReminders(books))
	router.POST("/reminders", setReminder(books))
}
