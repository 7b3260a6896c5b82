package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/projetovox/vox-backend/internal/domain/ports"
)

// RequestLogger registra cada requisição com status e latência.
// Respostas 5xx levam os erros acumulados em c.Errors.
func RequestLogger(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(RequestIDContextKey),
		}
		if usuarioID := c.GetHeader(UsuarioIDHeader); usuarioID != "" {
			attrs = append(attrs, "usuario_id", usuarioID)
		}

		switch {
		case status >= 500:
			attrs = append(attrs, "errors", c.Errors.String())
			logger.Error("request failed", attrs...)
		case status >= 400:
			logger.Warn("request rejected", attrs...)
		default:
			logger.Debug("request handled", attrs...)
		}
	}
}
