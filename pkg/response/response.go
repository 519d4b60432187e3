package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Envelope is the wire shape of every API reply. Data carries the
// payload on success; Errors carries field details on validation
// failures.
type Envelope struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

func Success(c *gin.Context, status int, message string, data any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, Envelope{
		Status:    StatusSuccess,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Data:      data,
	})
}

func Error(c *gin.Context, status int, message string, errs any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, Envelope{
		Status:    StatusError,
		Message:   message,
		RequestID: c.GetString("request_id"),
		Errors:    errs,
	})
}
