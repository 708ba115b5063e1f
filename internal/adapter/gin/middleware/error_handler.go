package middleware

import (
	"net/http"

	"user-rest-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InternalServerErrorMessage is the body message for every unhandled failure.
const InternalServerErrorMessage = "Internal Server Error"

// ErrorHandler logs errors attached to the context by handlers and, unless a
// response was already written, answers 500 with a fixed message.
// Errors are not classified: anything that reaches this point is internal.
func ErrorHandler(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		reqLog := logger.WithContext(c.Request.Context(), log)
		for _, ginErr := range c.Errors {
			reqLog.Error("Unhandled request error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(ginErr.Err),
			)
		}

		if c.Writer.Written() {
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"message": InternalServerErrorMessage,
		})
	}
}
