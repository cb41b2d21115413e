package server

import (
	"net/http"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/goal"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

func getGoals(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		c.JSON(http.StatusOK, map[string]interface{}{
			"Goals":   books.Goals.Progress(),
			"Summary": books.Goals.Summary(),
			"Clamped": books.Goals.Clamped(),
		})
	}
}

func addGoal(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name   string
			Target decimal.Decimal
			Type   string
			Start  string
			End    string
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithClientError(c, http.StatusBadRequest, err)
			return
		}
		if req.Name == "" {
			abortWithClientError(c, http.StatusBadRequest, errors.New("Goal name is required"))
			return
		}

		var opts []goal.Opt
		if req.Type != "" {
			opts = append(opts, goal.OfType(req.Type))
		}
		if req.Start != "" || req.End != "" {
			opts = append(opts, goal.Between(req.Start, req.End))
		}

		defer books.lock()()
		if err := books.Goals.Add(req.Name, req.Target, opts...); err != nil {
			abortWithError(c, err)
			return
		}
		g, _ := books.Goals.Get(req.Name)
		c.JSON(http.StatusCreated, g)
	}
}

func contribute(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		var req struct {
			Amount *decimal.Decimal
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithClientError(c, http.StatusBadRequest, err)
			return
		}
		if req.Amount == nil {
			abortWithClientError(c, http.StatusBadRequest, errors.New("Amount is required"))
			return
		}

		defer books.lock()()
		if err := books.Goals.Contribute(name, *req.Amount); err != nil {
			abortWithError(c, err)
			return
		}
		respondWithGoal(c, books.Goals, name)
	}
}

func resetGoal(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name")
		defer books.lock()()
		if err := books.Goals.Reset(name); err != nil {
			abortWithError(c, err)
			return
		}
		respondWithGoal(c, books.Goals, name)
	}
}

func respondWithGoal(c *gin.Context, tracker *goal.Tracker, name string) {
	g, err := tracker.Get(name)
	if err != nil {
		abortWithError(c, err)
		return
	}
	response := map[string]interface{}{
		"Goal":      g,
		"Completed": g.Completed(),
	}
	if pct, err := g.Percentage(); err == nil {
		response["Percentage"] = pct
	}
	c.JSON(http.StatusOK, response)
}

func getGoalReport(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		lines := []string{}
		for line := range books.Goals.ProgressReport() {
			lines = append(lines, line)
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"Report": lines,
		})
	}
}
