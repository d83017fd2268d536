package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// OrderValidator — доменная проверка заказа перед приёмом (validate.OrderValidator).
// Ошибка оборачивает validate.ErrInvalidOrder и годится для ответа клиенту.
type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
