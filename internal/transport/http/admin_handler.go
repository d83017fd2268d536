package rest

import (
	"net/http"

	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

func badBody(err error) error {
	if httpx.IsBodyTooLarge(err) {
		return newAPIError(err, http.StatusRequestEntityTooLarge, CodeBodyTooLarge, "request body too large")
	}
	return newAPIError(err, http.StatusBadRequest, CodeInvalidInput, "invalid request body")
}

// listProducts — GET /api/admin/products?limit=&offset=.
func (h *Handler) listProducts(c *gin.Context) {
	page, err := httpx.ParsePage(c, usecase.DefaultAdminLimit, usecase.MaxAdminLimit)
	if err != nil {
		h.fail(c, "list products", newAPIError(err, http.StatusBadRequest, CodeInvalidInput, "limit and offset must be integers"))
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	recs, err := h.admin.ListProducts(ctx, page.Limit, page.Offset)
	if err != nil {
		h.fail(c, "list products", err)
		return
	}
	out := make([]adminProduct, 0, len(recs))
	for i := range recs {
		out = append(out, toAdminProduct(&recs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "products": out})
}

// createProduct — POST /api/admin/products.
func (h *Handler) createProduct(c *gin.Context) {
	var p productPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.fail(c, "create product", badBody(err))
		return
	}
	in, err := p.toInput()
	if err != nil {
		h.fail(c, "create product", err)
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rec, err := h.admin.CreateProduct(ctx, actorOf(c), in)
	if err != nil {
		h.fail(c, "create product", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": toAdminProduct(rec)})
}

// updateProduct — PUT /api/admin/products/:id; тело заменяет все поля товара.
func (h *Handler) updateProduct(c *gin.Context) {
	var p productPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.fail(c, "update product", badBody(err))
		return
	}
	in, err := p.toInput()
	if err != nil {
		h.fail(c, "update product", err)
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rec, err := h.admin.UpdateProduct(ctx, actorOf(c), c.Param("id"), in)
	if err != nil {
		h.fail(c, "update product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": toAdminProduct(rec)})
}

// deleteProduct — DELETE /api/admin/products/:id.
func (h *Handler) deleteProduct(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.admin.DeleteProduct(ctx, actorOf(c), c.Param("id")); err != nil {
		h.fail(c, "delete product", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}

// listCategories — GET /api/admin/categories.
func (h *Handler) listCategories(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	recs, err := h.admin.ListCategories(ctx)
	if err != nil {
		h.fail(c, "list categories", err)
		return
	}
	out := make([]adminCategory, 0, len(recs))
	for i := range recs {
		out = append(out, toAdminCategory(&recs[i]))
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "categories": out})
}

func (h *Handler) createCategory(c *gin.Context) {
	var p categoryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.fail(c, "create category", badBody(err))
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rec, err := h.admin.CreateCategory(ctx, actorOf(c), p.toInput())
	if err != nil {
		h.fail(c, "create category", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": toAdminCategory(rec)})
}

func (h *Handler) updateCategory(c *gin.Context) {
	var p categoryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.fail(c, "update category", badBody(err))
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	rec, err := h.admin.UpdateCategory(ctx, actorOf(c), c.Param("id"), p.toInput())
	if err != nil {
		h.fail(c, "update category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": toAdminCategory(rec)})
}

func (h *Handler) deleteCategory(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.admin.DeleteCategory(ctx, actorOf(c), c.Param("id")); err != nil {
		h.fail(c, "delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted"})
}

// dashboard — GET /api/admin/dashboard.
func (h *Handler) dashboard(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	d, err := h.admin.Dashboard(ctx)
	if err != nil {
		h.fail(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": d})
}
