package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// CatalogReadService — сервис чтения витрины.
type CatalogReadService interface {
	GetCatalog(ctx context.Context) (*domain.CatalogResult, error)
}

// CatalogInvalidator — сброс кэша каталога (админ-изменения, события из Kafka).
type CatalogInvalidator interface {
	Invalidate(ctx context.Context)
}
