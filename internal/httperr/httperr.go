package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string, details any) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// Abort maps err onto its HTTP status and writes the error body. Errors
// outside the taxonomy are attached to the context for the request logger
// and answered with a generic 500.
func Abort(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		Write(c, e.Kind.Status(), e.Code, e.Message, e.Details)
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", "Internal server error.")
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message, nil)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message, nil)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message, nil)
}
