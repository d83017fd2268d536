package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// BearerToken — токен из "Authorization: Bearer <token>"; схема без учёта регистра.
func BearerToken(c *gin.Context) (string, bool) {
	h := strings.TrimSpace(c.GetHeader("Authorization"))
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
