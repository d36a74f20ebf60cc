package apperrors

import (
	"log"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body every failed request gets. The API contract
// uses a flat {success:false, message} shape rather than a nested error
// object.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Code    ErrorCode `json:"code,omitempty"`
}

// HandleError writes an AppError to the Gin response.
func HandleError(c *gin.Context, err *AppError) {
	if err.HTTPCode >= 500 {
		log.Printf("server error: %v", err)
	}

	c.JSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
	})
}

// AbortWithError is HandleError for middleware: it also stops the chain so
// the handler never runs.
func AbortWithError(c *gin.Context, err *AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, ErrorResponse{
		Success: false,
		Message: err.Message,
		Code:    err.Code,
	})
}
