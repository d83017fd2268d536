package rest

import (
	"errors"
	"math"
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userView struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// login — POST /api/admin/login.
func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if httpx.IsBodyTooLarge(err) {
			h.fail(c, "admin login", badBody(err))
			return
		}
		h.fail(c, "admin login", usecase.ErrMissingCredentials)
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	res, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		var lock *usecase.LockoutError
		if errors.As(err, &lock) {
			minutes := int(math.Ceil(lock.Remaining.Minutes()))
			if minutes < 1 {
				minutes = 1
			}
			h.log.Warnf(c.Request.Context(), "admin login rate limited remaining=%dm", minutes)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":         "Too many failed attempts. Try again later.",
				"code":          CodeRateLimited,
				"remainingTime": minutes,
			})
			return
		}
		h.fail(c, "admin login", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   res.Token,
		"user": userView{
			ID:    res.User.ID,
			Email: res.User.Email,
			Name:  res.User.Name,
			Role:  res.User.Role,
		},
		"expiresIn": res.ExpiresIn,
	})
}

// verify — GET /api/admin/verify; сам токен проверен в RequireAdmin.
func (h *Handler) verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "user": sessionFrom(c)})
}
