package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/dealflow-backend/internal/domain/ports"
)

// RequestLogger registra método, rota, status e latência de cada requisição
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if user := CurrentUser(c); user != nil {
			args = append(args, "user_id", user.ID)
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("request failed", append(args, "errors", c.Errors.String())...)
		case status >= 400:
			logger.Warn("request rejected", args...)
		default:
			logger.Info("request handled", args...)
		}
	}
}

// BaseURL expõe a URL base da API para montar os "type" dos problem details
func BaseURL(baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("base_url", baseURL)
		c.Next()
	}
}
