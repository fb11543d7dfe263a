// internal/utils/response.go
package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope the JSON endpoints under /api use.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequestResponse(c *gin.Context, message string, details interface{}) {
	if message == "" {
		message = "Invalid request"
	}
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message, details)
}

func BadGatewayResponse(c *gin.Context, message string) {
	if message == "" {
		message = "Backend unavailable"
	}
	ErrorResponse(c, http.StatusBadGateway, "BACKEND_ERROR", message, nil)
}
