package rest

import (
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

// uploadImage — POST /api/admin/upload-image; файл приходит в base64.
func (h *Handler) uploadImage(c *gin.Context) {
	var req domain.UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, "upload image", badBody(err))
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	img, err := h.uploads.Upload(ctx, actorOf(c), req)
	if err != nil {
		h.fail(c, "upload image", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": img})
}
