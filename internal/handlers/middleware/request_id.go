package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é propagado do cliente quando presente
	RequestIDHeader = "X-Request-Id"
	// RequestIDContextKey guarda o id da requisição no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID garante um id por requisição, reaproveitando o do cliente
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(RequestIDContextKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
