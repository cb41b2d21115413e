package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/goal"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var dec = decimal.NewFromFloat

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(opts ...goal.TrackerOpt) (*gin.Engine, *Books) {
	logger := zap.NewNop()
	books := NewBooks(logger, nil, opts...)
	return New(books, logger), books
}

func do(t *testing.T, engine http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func decode(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), v), resp.Body.String())
}

func TestRecordEntries(t *testing.T) {
	engine, books := newTestServer()

	resp := do(t, engine, http.MethodPost, "/api/v1/incomes", `{"Amount": 5000, "Date": "2022-03-15", "Category": "Salary"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = do(t, engine, http.MethodPut, "/api/v1/budgets/Food", `{"Limit": 1000}`)
	require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())

	resp = do(t, engine, http.MethodPost, "/api/v1/expenses", `{"Amount": 1500, "Date": "2022-03-17", "Category": "Food"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var expense struct {
		Entry struct {
			Kind     string
			Amount   decimal.Decimal
			Category string
		}
		Alert *struct {
			Scope    string
			Category string
			Limit    decimal.Decimal
		}
	}
	decode(t, resp, &expense)
	assert.Equal(t, "expense", expense.Entry.Kind)
	assert.True(t, dec(1500).Equal(expense.Entry.Amount))
	require.NotNil(t, expense.Alert)
	assert.Equal(t, "transaction", expense.Alert.Scope)
	assert.True(t, dec(1000).Equal(expense.Alert.Limit))

	resp = do(t, engine, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var categories struct{ Categories []string }
	decode(t, resp, &categories)
	assert.Equal(t, []string{"Salary", "Food"}, categories.Categories)

	resp = do(t, engine, http.MethodGet, "/api/v1/categories?search=fo", "")
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &categories)
	assert.Equal(t, []string{"Food"}, categories.Categories)

	resp = do(t, engine, http.MethodGet, "/api/v1/categories?category=Food", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var entries struct{ Entries []interface{} }
	decode(t, resp, &entries)
	assert.Len(t, entries.Entries, 1)

	resp = do(t, engine, http.MethodGet, "/api/v1/budgets/alerts", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var alerts struct{ Messages []string }
	decode(t, resp, &alerts)
	assert.Equal(t, []string{"You have exceeded your budget of 1000 for Food expenses."}, alerts.Messages)

	resp = do(t, engine, http.MethodDelete, "/api/v1/budgets/Food", "")
	require.Equal(t, http.StatusNoContent, resp.Code)
	resp = do(t, engine, http.MethodGet, "/api/v1/budgets/alerts", "")
	require.Equal(t, http.StatusOK, resp.Code)
	alerts.Messages = nil
	decode(t, resp, &alerts)
	assert.Empty(t, alerts.Messages)

	assert.Len(t, books.Ledger.All(), 2)
}

func TestRecordEntryErrors(t *testing.T) {
	for _, tc := range []struct {
		description string
		path        string
		body        string
		status      int
	}{
		{
			description: "malformed body",
			path:        "/api/v1/incomes",
			body:        `{"Amount": `,
			status:      http.StatusBadRequest,
		},
		{
			description: "missing category",
			path:        "/api/v1/expenses",
			body:        `{"Amount": 1, "Date": "2022-03-15"}`,
			status:      http.StatusBadRequest,
		},
		{
			description: "invalid date",
			path:        "/api/v1/expenses",
			body:        `{"Amount": 1, "Date": "03/15/2022", "Category": "Food"}`,
			status:      http.StatusBadRequest,
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			engine, books := newTestServer()
			resp := do(t, engine, http.MethodPost, tc.path, tc.body)
			assert.Equal(t, tc.status, resp.Code)
			var body struct{ Error string }
			decode(t, resp, &body)
			assert.NotEmpty(t, body.Error)
			assert.Empty(t, books.Ledger.All())
		})
	}
}

func TestSetBudgetRequiresLimit(t *testing.T) {
	engine, _ := newTestServer()
	resp := do(t, engine, http.MethodPut, "/api/v1/budgets/Food", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReports(t *testing.T) {
	engine, books := newTestServer()
	_, err := books.Ledger.RecordIncome(dec(5000), "2022-03-15", "Salary")
	require.NoError(t, err)
	_, _, err = books.Ledger.RecordExpense(dec(1500), "2022-03-17", "Food")
	require.NoError(t, err)
	_, _, err = books.Ledger.RecordExpense(dec(200), "2022-03-15", "Food")
	require.NoError(t, err)

	resp := do(t, engine, http.MethodGet, "/api/v1/reports/overview", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var overview struct{ Income, Expenses, Balance decimal.Decimal }
	decode(t, resp, &overview)
	assert.True(t, dec(5000).Equal(overview.Income))
	assert.True(t, dec(1700).Equal(overview.Expenses))
	assert.True(t, dec(3300).Equal(overview.Balance))

	resp = do(t, engine, http.MethodGet, "/api/v1/reports/categories", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var totals struct {
		Categories []struct {
			Category string
			Amount   decimal.Decimal
		}
	}
	decode(t, resp, &totals)
	require.Len(t, totals.Categories, 1)
	assert.Equal(t, "Food", totals.Categories[0].Category)
	assert.True(t, dec(1700).Equal(totals.Categories[0].Amount))

	resp = do(t, engine, http.MethodGet, "/api/v1/reports/cashflow", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var flow struct{ Days []interface{} }
	decode(t, resp, &flow)
	assert.Len(t, flow.Days, 2)

	resp = do(t, engine, http.MethodGet, "/api/v1/reports/tax", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var tax struct {
		Net      decimal.Decimal
		Positive bool
	}
	decode(t, resp, &tax)
	assert.True(t, dec(3300).Equal(tax.Net))
	assert.True(t, tax.Positive)
}

func TestGoals(t *testing.T) {
	engine, _ := newTestServer()

	resp := do(t, engine, http.MethodPost, "/api/v1/goals", `{"Name": "Vacation", "Target": 1000, "Type": "savings", "Start": "2023-01-01", "End": "2023-12-31"}`)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = do(t, engine, http.MethodPost, "/api/v1/goals", `{"Name": "Vacation", "Target": 5}`)
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = do(t, engine, http.MethodPost, "/api/v1/goals/Vacation/contributions", `{"Amount": 600}`)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var progress struct {
		Completed  bool
		Percentage decimal.Decimal
	}
	decode(t, resp, &progress)
	assert.False(t, progress.Completed)
	assert.True(t, dec(60).Equal(progress.Percentage))

	resp = do(t, engine, http.MethodGet, "/api/v1/goals/report", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var report struct{ Report []string }
	decode(t, resp, &report)
	assert.Equal(t, []string{"Vacation: 60.0% complete"}, report.Report)

	resp = do(t, engine, http.MethodPost, "/api/v1/goals/Vacation/reset", "")
	require.Equal(t, http.StatusOK, resp.Code)

	resp = do(t, engine, http.MethodGet, "/api/v1/goals", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var goals struct {
		Goals   []struct{ Name string }
		Summary struct{ Count int }
	}
	decode(t, resp, &goals)
	assert.Equal(t, 1, goals.Summary.Count)
	require.Len(t, goals.Goals, 1)
	assert.Equal(t, "Vacation", goals.Goals[0].Name)
}

func TestGoalErrors(t *testing.T) {
	engine, _ := newTestServer()

	resp := do(t, engine, http.MethodPost, "/api/v1/goals/Missing/contributions", `{"Amount": 1}`)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	var body struct{ Error string }
	decode(t, resp, &body)
	assert.Equal(t, `No goal found with name "Missing"`, body.Error)

	resp = do(t, engine, http.MethodPost, "/api/v1/goals", `{"Name": "Trip", "Target": 1, "Start": "soon", "End": "2023-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = do(t, engine, http.MethodPost, "/api/v1/goals", `{"Target": 1}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestClampedGoals(t *testing.T) {
	engine, books := newTestServer(goal.ClampToTarget())
	require.NoError(t, books.Goals.Add("Fund", dec(100)))

	resp := do(t, engine, http.MethodPost, "/api/v1/goals/Fund/contributions", `{"Amount": 150}`)
	require.Equal(t, http.StatusOK, resp.Code)
	g, err := books.Goals.Get("Fund")
	require.NoError(t, err)
	assert.True(t, dec(100).Equal(g.Accumulated))

	resp = do(t, engine, http.MethodGet, "/api/v1/goals", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var goals struct{ Clamped bool }
	decode(t, resp, &goals)
	assert.True(t, goals.Clamped)
}

func TestReminders(t *testing.T) {
	engine, _ := newTestServer()

	for _, body := range []string{
		`{"Label": "Rent", "Due": "2023-05-01"}`,
		`{"Label": "Phone", "Due": "2023-03-01"}`,
	} {
		resp := do(t, engine, http.MethodPost, "/api/v1/reminders", body)
		require.Equal(t, http.StatusNoContent, resp.Code, resp.Body.String())
	}

	resp := do(t, engine, http.MethodPost, "/api/v1/reminders", `{"Label": "Bad", "Due": "May 1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = do(t, engine, http.MethodGet, "/api/v1/reminders?today=2023-04-15", "")
	require.Equal(t, http.StatusOK, resp.Code)
	var upcoming struct{ Messages []string }
	decode(t, resp, &upcoming)
	assert.Equal(t, []string{"Rent is due on 2023-05-01"}, upcoming.Messages)

	resp = do(t, engine, http.MethodGet, "/api/v1/reminders?today=2024-01-01", "")
	require.Equal(t, http.StatusOK, resp.Code)
	decode(t, resp, &upcoming)
	assert.Empty(t, upcoming.Messages)

	resp = do(t, engine, http.MethodGet, "/api/v1/reminders?today=tomorrow", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestImportInvalidOFX(t *testing.T) {
	engine, _ := newTestServer()
	resp := do(t, engine, http.MethodPost, "/api/v1/import", "not ofx")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	engine := gin.New()
	engine.Use(recovery(zap.NewNop(), true))
	engine.GET("/panic", func(c *gin.Context) {
		panic("oops")
	})
	resp := do(t, engine, http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestReportCacheFollowsRevision(t *testing.T) {
	engine, books := newTestServer()

	resp := do(t, engine, http.MethodGet, "/api/v1/reports/overview", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "0", resp.Header().Get(revisionHeader))
	var overview struct{ Income decimal.Decimal }
	decode(t, resp, &overview)
	assert.True(t, overview.Income.IsZero())

	resp = do(t, engine, http.MethodPost, "/api/v1/incomes", `{"Amount": 250, "Date": "2023-04-01", "Category": "Gift"}`)
	require.Equal(t, http.StatusCreated, resp.Code)
	assert.Equal(t, uint64(1), books.Revision())

	for i := 0; i < 2; i++ {
		resp = do(t, engine, http.MethodGet, "/api/v1/reports/overview", "")
		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "1", resp.Header().Get(revisionHeader))
		decode(t, resp, &overview)
		assert.True(t, dec(250).Equal(overview.Income))
	}
}

func TestRateLimit(t *testing.T) {
	engine := gin.New()
	engine.GET("/limited", rateLimit(rate.NewLimiter(rate.Every(time.Hour), 1)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, do(t, engine, http.MethodGet, "/limited", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, engine, http.MethodGet, "/limited", "").Code)
}

func TestImportRateLimit(t *testing.T) {
	engine, _ := newTestServer()
	for i := 0; i < importsPerMinute; i++ {
		resp := do(t, engine, http.MethodPost, "/api/v1/import", "not ofx")
		require.Equal(t, http.StatusBadRequest, resp.Code, "request %d", i)
	}
	resp := do(t, engine, http.MethodPost, "/api/v1/import", "not ofx")
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
}

func TestReportCacheHitHeaderMatchesBody(t *testing.T) {
	_, books := newTestServer()
	reports := newReportCache(books, time.Minute)
	reports.cache.Set(cacheKey("/overview", 0), map[string]bool{"Cached": true}, time.Minute)
	engine := gin.New()
	engine.GET("/overview", reports.handler(overview))

	resp := do(t, engine, http.MethodGet, "/overview", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "0", resp.Header().Get(revisionHeader))
	assert.JSONEq(t, `{"Cached": true}`, resp.Body.String())

	books.changed()
	resp = do(t, engine, http.MethodGet, "/overview", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "1", resp.Header().Get(revisionHeader))
	assert.NotContains(t, resp.Body.String(), "Cached")
}
