package middleware

import (
	"github.com/gin-gonic/gin"

	apperrors "catalog/internal/errors"
	"catalog/internal/logger"
)

// ErrorHandler returns a Gin middleware that renders the last error set on
// the Gin context as the standard error envelope, unless a handler already
// wrote a response.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr, known := apperrors.From(err)
		switch {
		case !known:
			logger.Get().Errorw("unexpected error",
				"error", err.Error(),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
			)
		case appErr.Internal != nil:
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{"error": appErr})
	}
}

// NotFound answers unknown routes with the standard error envelope.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Route not found"))
	}
}
