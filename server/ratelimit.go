package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

func rateLimit(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			abortWithClientError(c, http.StatusTooManyRequests, errors.New("Too many requests, try again later"))
			return
		}
		c.Next()
	}
}
