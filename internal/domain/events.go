package domain

import "time"

// Типы событий каталога.
const (
	EventProductCreated  = "product.created"
	EventProductUpdated  = "product.updated"
	EventProductDeleted  = "product.deleted"
	EventCategoryCreated = "category.created"
	EventCategoryUpdated = "category.updated"
	EventCategoryDeleted = "category.deleted"
)

// CatalogEvent — уведомление об изменении каталога.
type CatalogEvent struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entityId"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
