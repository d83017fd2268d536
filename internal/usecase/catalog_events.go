package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// HandleEvent — событие catalog.changed из шины: помечает локальный кэш устаревшим.
// Неразбираемое сообщение возвращает domain.ErrInvalidEvent.
func (s *CatalogService) HandleEvent(ctx context.Context, raw []byte) error {
	var ev domain.CatalogEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidEvent, err)
	}
	if ev.Type == "" {
		return fmt.Errorf("%w: empty type", domain.ErrInvalidEvent)
	}

	s.Invalidate(ctx)
	s.log.Infof(ctx, "catalog cache invalidated by event type=%s id=%s", ev.Type, ev.EntityID)
	return nil
}
