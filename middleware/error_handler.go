package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/mailguard-live/mailguard-backend/errors"
	"github.com/mailguard-live/mailguard-backend/logger"
	"github.com/mailguard-live/mailguard-backend/types"
)

// ErrorHandler converts errors attached to the gin context into the API's
// {message} JSON body. Validation errors carry the first violated rule;
// everything else is sanitized to a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		if appError, ok := err.(*apperrors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			logFields := []interface{}{
				"error_type", string(appError.Type),
				"path", c.Request.URL.Path,
				"method", c.Request.Method,
				"client_ip", c.ClientIP(),
				"request_id", c.GetString(RequestIDKey),
			}
			if statusCode >= http.StatusInternalServerError {
				log.Errorw(appError.Error(), logFields...)
			} else {
				log.Infow(appError.Error(), logFields...)
			}

			c.JSON(statusCode, types.ErrorResponse{Message: appError.Message})
			return
		}

		log.Errorw("Unexpected server error",
			"error", err,
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		c.JSON(http.StatusInternalServerError, types.ErrorResponse{Message: "Internal server error"})
	}
}
