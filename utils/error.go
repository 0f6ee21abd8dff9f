package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler recovers panics and converts them into a structured 500
// so a handler bug never leaks a stack trace to a client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger().Error("panic recovered",
					zap.Any("error", r),
					zap.String("path", c.FullPath()))

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Message: "internal server error",
					Details: "Something went wrong on our side. Please retry shortly.",
				})
			}
		}()
		c.Next()
	}
}

// JSONError logs and writes a standardized error body, aborting the chain.
func JSONError(c *gin.Context, status int, message, details string) {
	GetLogger().Warn(message, zap.Int("status", status), zap.String("details", details))
	c.AbortWithStatusJSON(status, ErrorResponse{Message: message, Details: details})
}
