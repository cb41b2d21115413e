package server

import (
	"net/http"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/budget"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/importer"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/search"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type entryRequest struct {
	Amount   decimal.Decimal
	Date     string
	Category string
}

func (r entryRequest) validate() error {
	if r.Category == "" {
		return errors.New("Category is required")
	}
	return nil
}

func bindEntry(c *gin.Context) (entryRequest, bool) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithClientError(c, http.StatusBadRequest, err)
		return req, false
	}
	if err := req.validate(); err != nil {
		abortWithClientError(c, http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

func recordIncome(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindEntry(c)
		if !ok {
			return
		}
		defer books.lock()()
		entry, err := books.Ledger.RecordIncome(req.Amount, req.Date, req.Category)
		if err != nil {
			abortWithError(c, err)
			return
		}
		books.changed()
		c.JSON(http.StatusCreated, map[string]interface{}{
			"Entry": entry,
		})
	}
}

func recordExpense(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		req, ok := bindEntry(c)
		if !ok {
			return
		}
		defer books.lock()()
		entry, alert, err := books.Ledger.RecordExpense(req.Amount, req.Date, req.Category)
		if err != nil {
			abortWithError(c, err)
			return
		}
		books.changed()
		c.JSON(http.StatusCreated, struct {
			Entry ledger.Entry
			Alert *budget.Alert `json:",omitempty"`
		}{
			Entry: entry,
			Alert: alert,
		})
	}
}

func getCategories(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		category := c.Query("category")
		if category == "" {
			c.JSON(http.StatusOK, map[string]interface{}{
				"Categories": search.Categories(books.Ledger.Categories(), c.Query("search")),
			})
			return
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"Entries": books.Ledger.Entries(category),
		})
	}
}

func setBudget(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := c.Param("category")
		var req struct {
			Limit *decimal.Decimal
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithClientError(c, http.StatusBadRequest, err)
			return
		}
		if req.Limit == nil {
			abortWithClientError(c, http.StatusBadRequest, errors.New("Limit is required"))
			return
		}
		defer books.lock()()
		books.Ledger.SetBudget(category, *req.Limit)
		c.Status(http.StatusNoContent)
	}
}

func removeBudget(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		books.Ledger.RemoveBudget(c.Param("category"))
		c.Status(http.StatusNoContent)
	}
}

func getBudgetAlerts(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		alerts := books.Ledger.EvaluateBudgets()
		messages := make([]string, 0, len(alerts))
		for _, alert := range alerts {
			messages = append(messages, alert.String())
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"Alerts":   alerts,
			"Messages": messages,
		})
	}
}

func importOFX(books *Books, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		result, err := importer.ReadOFX(c.Request.Body, books.Ledger, books.Rules, logger)
		if len(result.Entries) > 0 {
			books.changed()
		}
		if err != nil && len(result.Entries) == 0 {
			abortWithClientError(c, http.StatusBadRequest, err)
			return
		}
		response := map[string]interface{}{
			"Entries": result.Entries,
			"Alerts":  result.Alerts,
		}
		if err != nil {
			response["Error"] = err.Error()
		}
		c.JSON(http.StatusOK, response)
	}
}
