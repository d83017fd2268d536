package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// CatalogStore — источник строк каталога: активные товары с категорией и изображениями,
// упорядоченные по sort_order.
type CatalogStore interface {
	ListActiveProducts(ctx context.Context) ([]domain.RawProduct, error)
}
