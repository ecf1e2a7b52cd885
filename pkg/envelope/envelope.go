// Package envelope defines the uniform response wrapper every backend
// endpoint uses. The client decodes it; the mock backend writes it.
package envelope

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// StatusSuccess is the only status value the client treats as success; any
// other status is a logical failure even on HTTP 200.
const StatusSuccess = "success"

// Envelope is the wire-level response wrapper.
type Envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// OK reports whether the envelope carries a successful result.
func (e Envelope) OK() bool {
	return e.Status == StatusSuccess
}

// ErrorCode returns the machine-readable error code, falling back to the
// human message when the backend sent none.
func (e Envelope) ErrorCode() string {
	return e.Error
}

// writing side, used by the mock backend

type outgoing struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Write sends a success envelope with the given HTTP status.
func Write(c *gin.Context, httpStatus int, message string, data interface{}) {
	c.JSON(httpStatus, outgoing{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error envelope with the given HTTP status and error code.
func Fail(c *gin.Context, httpStatus int, code, message string) {
	c.JSON(httpStatus, outgoing{
		Status:  "error",
		Message: message,
		Error:   code,
	})
}
