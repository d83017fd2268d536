package rest

import (
	"net/http"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

// Значения заголовка X-Cache.
const (
	CacheHit   = "HIT"
	CacheMiss  = "MISS"
	CacheStale = "STALE"
)

type cacheInfo struct {
	Cached     bool      `json:"cached"`
	Stale      bool      `json:"stale"`
	Timestamp  time.Time `json:"timestamp"`
	TTLSeconds int       `json:"ttlSeconds"`
}

type catalogResponse struct {
	Success       bool              `json:"success"`
	Products      []domain.Product  `json:"products"`
	Categories    []domain.Category `json:"categories"`
	TopCategories []domain.Category `json:"topCategories"`
	Total         int               `json:"total"`
	Featured      int               `json:"featured"`
	InStock       int               `json:"inStock"`
	Message       string            `json:"message,omitempty"`
	Cache         cacheInfo         `json:"cache"`
}

func newCatalogResponse(res *domain.CatalogResult) catalogResponse {
	c := res.Catalog
	if c == nil {
		c = &domain.Catalog{}
	}
	out := catalogResponse{
		Success:       true,
		Products:      c.Products,
		Categories:    c.Categories,
		TopCategories: c.TopCategories,
		Total:         c.Total,
		Featured:      c.Featured,
		InStock:       c.InStock,
		Cache: cacheInfo{
			Cached:     res.Cached,
			Stale:      res.Stale,
			Timestamp:  res.StoredAt.UTC(),
			TTLSeconds: int(res.TTL / time.Second),
		},
	}
	if out.Products == nil {
		out.Products = []domain.Product{}
	}
	if out.Categories == nil {
		out.Categories = []domain.Category{}
	}
	if out.TopCategories == nil {
		out.TopCategories = []domain.Category{}
	}
	if len(out.Products) == 0 {
		out.Message = "No products found"
	}
	return out
}

func cacheStatus(res *domain.CatalogResult) string {
	switch {
	case res.Stale:
		return CacheStale
	case res.Cached:
		return CacheHit
	default:
		return CacheMiss
	}
}

// getProducts — GET /api/products.
func (h *Handler) getProducts(c *gin.Context) {
	start := time.Now()
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	res, err := h.catalog.GetCatalog(ctx)
	if err != nil {
		httpx.SetResponseTime(c, start)
		h.fail(c, "get catalog", err)
		return
	}

	c.Header("X-Cache", cacheStatus(res))
	httpx.SetResponseTime(c, start)
	c.JSON(http.StatusOK, newCatalogResponse(res))
}
