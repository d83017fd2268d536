package httpx

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS — разрешает браузерной витрине и админ-панели ходить в API с другого origin.
// Preflight OPTIONS завершается здесь же со статусом 204.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders:   []string{"X-Cache", "X-Response-Time", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	})
}
