package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-tipping-ledger/internal/logger"
	"github.com/feral-file/ff-tipping-ledger/internal/metrics"
)

// errorBody matches the error envelope written by the REST handlers
func errorBody(code, message, details string) gin.H {
	detail := gin.H{"code": code, "message": message}
	if details != "" {
		detail["details"] = details
	}
	return gin.H{"error": detail}
}

// HEADER_REQUEST_ID carries the request id; a caller-supplied value is kept
const HEADER_REQUEST_ID = "X-Request-ID"

// Logger returns a gin middleware for structured request logging and HTTP metrics.
// Every *Ctx log line written while serving the request carries its request id.
func Logger(m *metrics.LedgerMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		requestID := c.GetHeader(HEADER_REQUEST_ID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Header(HEADER_REQUEST_ID, requestID)
		c.Request = c.Request.WithContext(logger.WithFields(c.Request.Context(), zap.String("request_id", requestID)))

		c.Next()

		duration := time.Since(start)

		m.ObserveHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), duration)

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					errorBody("internal_error", "Internal server error", ""))
			}
		}()
		c.Next()
	}
}
