package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Naveenravi07/ecommerce-backend/internal/logger"
	"github.com/Naveenravi07/ecommerce-backend/internal/response"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLogger logs one line per request once the handler chain returns.
func RequestLogger(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(response.RequestIDKey)),
		}

		switch status := c.Writer.Status(); {
		case status >= http.StatusInternalServerError:
			log.Error("request failed", fields...)
		case status >= http.StatusBadRequest:
			log.Warn("request rejected", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

// Recovery turns a handler panic into a 500 envelope.
func Recovery(log logger.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered",
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(response.RequestIDKey)),
					zap.String("panic", fmt.Sprint(rec)),
					zap.Stack("stack"),
				)
				response.Fail(c, http.StatusInternalServerError, response.CodeInternal, "internal server error", nil)
			}
		}()
		c.Next()
	}
}
