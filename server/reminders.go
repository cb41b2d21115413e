package server

import (
	"net/http"

	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/ledger"
	"github.com/ArianeUwase1/DS5010-Final-Project-Team8/reminder"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func setReminder(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Label string
			Due   string
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithClientError(c, http.StatusBadRequest, err)
			return
		}
		if req.Label == "" {
			abortWithClientError(c, http.StatusBadRequest, errors.New("Reminder label is required"))
			return
		}
		defer books.lock()()
		if err := books.Reminders.Set(req.Label, req.Due); err != nil {
			abortWithError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// getReminders returns reminders due on or after 'today', defaulting to the current date
func getReminders(books *Books) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer books.lock()()
		var (
			upcoming []reminder.Reminder
			ok       bool
		)
		if today := c.Query("today"); today != "" {
			date, err := ledger.ParseDate(today)
			if err != nil {
				abortWithError(c, err)
				return
			}
			upcoming, ok = books.Reminders.Check(date)
		} else {
			upcoming, ok = books.Reminders.CheckNow()
		}

		messages := make([]string, 0, len(upcoming))
		for _, r := range upcoming {
			messages = append(messages, r.String())
		}
		if !ok {
			upcoming = []reminder.Reminder{}
		}
		c.JSON(http.StatusOK, map[string]interface{}{
			"Reminders": upcoming,
			"Messages":  messages,
		})
	}
}
