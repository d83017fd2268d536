package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/auth"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/pkg/ctxmeta"
	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const sessionKey = "admin_session"

// RequireAdmin — пропускает запрос дальше только с действительным токеном администратора.
// Отказ происходит до любого обращения к хранилищу.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := httpx.BearerToken(c)
		if !ok {
			h.fail(c, "admin auth", newAPIError(nil, http.StatusUnauthorized, CodeMissingToken, "Authorization token required"))
			return
		}

		session, err := h.auth.Verify(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, auth.ErrTokenExpired) && !errors.Is(err, auth.ErrTokenInvalid) {
				err = fmt.Errorf("%w: %w", auth.ErrTokenInvalid, err)
			}
			h.fail(c, "admin auth", err)
			return
		}

		c.Set(sessionKey, session)
		c.Request = c.Request.WithContext(ctxmeta.WithActor(c.Request.Context(), session.Email))
		c.Next()
	}
}

// sessionFrom — сессия, положенная RequireAdmin.
func sessionFrom(c *gin.Context) *domain.AdminSession {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*domain.AdminSession)
	return s
}

func actorOf(c *gin.Context) string {
	if s := sessionFrom(c); s != nil {
		return s.Email
	}
	return ""
}
