package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LimitBody — ограничивает размер тела запроса; чтение сверх limit вернёт *http.MaxBytesError.
// limit <= 0 — без ограничения.
func LimitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}

// IsBodyTooLarge — ошибка чтения тела из-за LimitBody.
func IsBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
