package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// EventPublisher — публикация доменных событий наружу.
type EventPublisher interface {
	PublishCatalogEvent(ctx context.Context, event domain.CatalogEvent) error
	PublishOrder(ctx context.Context, order *domain.Order) error
	Close() error
}
