package httpx

import (
	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader — заголовок корреляции запроса.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// RequestID — берёт X-Request-ID клиента, если он пригоден для логов, иначе выдаёт UUID.
// Значение попадает в контекст запроса (ctxmeta) и в ответный заголовок.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if !usableRequestID(rid) {
			rid = uuid.NewString()
		}
		c.Header(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), rid))
		c.Next()
	}
}

// usableRequestID — непустой, не длиннее 128 символов, только печатный ASCII без пробелов.
func usableRequestID(s string) bool {
	if s == "" || len(s) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return false
		}
	}
	return true
}
