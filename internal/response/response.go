// Package response writes the JSON envelope shared by every HTTP endpoint.
package response

import (
	"net/http"
	"time"

	"github.com/Naveenravi07/ecommerce-backend/internal/apperr"
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key holding the request id.
const RequestIDKey = "request_id"

const (
	CodeBadRequest = "BAD_REQUEST"
	CodeInternal   = "INTERNAL_ERROR"
)

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorBody  `json:"error,omitempty"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp"`
	Path      string      `json:"path,omitempty"`
}

func OK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Envelope{
		Success:   true,
		Data:      data,
		RequestID: c.GetString(RequestIDKey),
		Timestamp: now(),
	})
}

// Fail writes an error envelope with an explicit status and code.
func Fail(c *gin.Context, status int, code, message string, details interface{}) {
	c.AbortWithStatusJSON(status, Envelope{
		Success:   false,
		Error:     &ErrorBody{Code: code, Message: message, Details: details},
		RequestID: c.GetString(RequestIDKey),
		Timestamp: now(),
		Path:      c.Request.URL.Path,
	})
}

// Error maps err to its status and code. Untyped errors never leak their
// message to the client.
func Error(c *gin.Context, err error) {
	e, ok := apperr.As(err)
	if !ok {
		Fail(c, http.StatusInternalServerError, CodeInternal, "internal server error", nil)
		return
	}
	Fail(c, apperr.HTTPStatus(err), string(e.Kind), e.Message, e.Details)
}

func now() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
