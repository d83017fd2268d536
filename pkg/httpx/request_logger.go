package httpx

import (
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/gin-gonic/gin"
)

// RequestLogger — строка лога на запрос; request_id/trace/actor добавляет сам логгер из контекста.
// Служебные пути и статика не логируются.
func RequestLogger(log ports.Logger, skipPrefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		switch c.FullPath() {
		case "/metrics", "/ping":
			return
		}
		for _, p := range skipPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, p) {
				return
			}
		}

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		logf := log.Infof
		if c.Writer.Status() >= 500 {
			logf = log.Errorf
		}
		logf(
			c.Request.Context(),
			"request method=%s path=%s status=%d ip=%s duration=%s size=%d",
			c.Request.Method,
			path,
			c.Writer.Status(),
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
