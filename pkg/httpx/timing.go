package httpx

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ResponseTimeHeader — заголовок с длительностью обработки в миллисекундах.
const ResponseTimeHeader = "X-Response-Time"

// SetResponseTime — вызывается хендлером перед записью тела (после записи заголовки уже ушли).
func SetResponseTime(c *gin.Context, start time.Time) {
	c.Header(ResponseTimeHeader, FormatMillis(time.Since(start)))
}

// FormatMillis — "12ms".
func FormatMillis(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
