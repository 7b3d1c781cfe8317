package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the standard API envelope.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// respondOK sends a successful response with a message and optional data.
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondError sends a standardized error response.
func respondError(c *gin.Context, code int, message string, err error, data ...any) {
	c.Abort()

	resp := Response{
		Success: false,
		Message: message,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	if len(data) > 0 {
		resp.Data = data[0]
	}

	c.JSON(code, resp)
}

// validationError sends a 400 Bad Request for invalid input.
func validationError(c *gin.Context, message string, err error) {
	respondError(c, http.StatusBadRequest, message, err)
}
