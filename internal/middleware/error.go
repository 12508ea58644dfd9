package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "figimap/internal/errors"
	"figimap/internal/logger"
)

// ErrorHandler returns a Gin middleware that renders the last error attached
// to the context with RespondWithError.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondWithError(c, c.Errors.Last().Err)
	}
}

// RespondWithError writes {"error":{"code","message"}}. An *AppError keeps its
// status, code and message; anything else is logged and masked as an internal
// error so details never reach the client.
func RespondWithError(c *gin.Context, err error) {
	requestID := c.GetString(requestIDKey)

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", requestID,
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Get().Errorw("app error",
			"code", appErr.Code,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", requestID,
		)
	}

	c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
