package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID проставляет идентификатор запроса: берет клиентский из
// заголовка или генерирует новый. Идентификатор доступен в контексте
// Gin под ключом "requestID" и возвращается клиенту в ответе.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
