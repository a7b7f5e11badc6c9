// Package errors defines the error type handlers hand to the response
// writer. An Error carries the HTTP status the boundary should answer with.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
)

type Error struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(message string, status int) *Error {
	return &Error{
		Message: message,
		Status:  status,
	}
}

var (
	ErrBadRequest          = New("bad request", http.StatusBadRequest)
	ErrNotFound            = New("not found", http.StatusNotFound)
	ErrInternalServerError = New("internal server error", http.StatusInternalServerError)
)

// Status unwraps the HTTP status carried by err, falling back when err is
// not an *Error.
func Status(err error, fallback int) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Status
	}
	return fallback
}

// ErrorHandler answers requests rejected by the rate limiter.
func ErrorHandler(c *gin.Context, info ratelimit.Info) {
	c.JSON(http.StatusTooManyRequests, gin.H{
		"message": fmt.Sprintf("Too many requests. Try again in %s", time.Until(info.ResetTime).Round(time.Second)),
		"status":  http.StatusText(http.StatusTooManyRequests),
	})
}
