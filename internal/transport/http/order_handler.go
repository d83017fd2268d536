package rest

import (
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

// submitOrder — POST /api/orders. Суммы и цены пересчитываются на сервере.
func (h *Handler) submitOrder(c *gin.Context) {
	var in domain.Order
	if err := c.ShouldBindJSON(&in); err != nil {
		h.fail(c, "submit order", badBody(err))
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	o, err := h.orders.Submit(ctx, &in)
	if err != nil {
		h.fail(c, "submit order", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "order": o})
}
