package handlers

import (
	"github.com/gin-gonic/gin"

	"figimap/internal/middleware"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.RespondWithError(c, err)
}

// strictRequested reports whether the caller asked for strict job checks.
func strictRequested(c *gin.Context) bool {
	switch c.Query("strict") {
	case "1", "true", "yes":
		return true
	}
	return false
}
