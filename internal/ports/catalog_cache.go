package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// CatalogCache — кэш каталога из одной ячейки.
// Требования к реализации: потокобезопасность; возврат копий; Invalidate не удаляет содержимое.
type CatalogCache interface {
	// Get — свежий каталог и время записи; (nil, zero, false) при промахе или истечении TTL.
	Get(ctx context.Context) (*domain.Catalog, time.Time, bool)

	// Generation — номер поколения ячейки; растёт с каждым Invalidate.
	// Читается до запроса в хранилище и передаётся в Put.
	Generation(ctx context.Context) uint64

	// Put — заменить содержимое ячейки. Свежим оно становится, только если поколение
	// не сменилось с момента чтения generation; иначе сохраняется как устаревшее. Возвращает true для свежей записи.
	Put(ctx context.Context, catalog *domain.Catalog, generation uint64) bool

	// Stale — содержимое ячейки без учёта возраста.
	Stale(ctx context.Context) (*domain.Catalog, time.Time, bool)

	// Invalidate — пометить ячейку устаревшей.
	Invalidate(ctx context.Context)

	TTL() time.Duration
}
