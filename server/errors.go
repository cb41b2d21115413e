package server

import (
	"net/http"

	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func abortWithClientError(c *gin.Context, status int, err error) {
	c.Error(err)
	body := map[string]interface{}{
		"Error": err.Error(),
	}
	if errs, ok := err.(sErrors.Errors); ok {
		body["Errors"] = errs.Messages()
	}
	c.AbortWithStatusJSON(status, body)
}

// abortWithError responds with the status matching err's kind
func abortWithError(c *gin.Context, err error) {
	abortWithClientError(c, statusFor(err), err)
}

func statusFor(err error) int {
	var (
		parseErr     *sErrors.ParseError
		notFoundErr  *sErrors.NotFoundError
		duplicateErr *sErrors.DuplicateError
		divideErr    *sErrors.DivideByZeroError
	)
	switch {
	case errors.As(err, &parseErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &duplicateErr):
		return http.StatusConflict
	case errors.As(err, &divideErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
