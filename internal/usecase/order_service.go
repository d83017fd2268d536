package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDeliveryFee — стоимость доставки непустого заказа.
var DefaultDeliveryFee = decimal.NewFromInt(300)

var _ ports.OrderSubmitService = (*OrderService)(nil)

// OrderService — оформление заказа: пересчёт по каталогу, валидация, журнал и событие.
// Заказы не сохраняются.
type OrderService struct {
	catalog     ports.CatalogReadService
	validator   ports.OrderValidator
	publisher   ports.EventPublisher
	log         ports.Logger
	deliveryFee decimal.Decimal
	now         func() time.Time
}

// NewOrderService — DI-конструктор. catalog может быть nil: тогда цены берутся из заказа как есть.
func NewOrderService(
	catalog ports.CatalogReadService,
	validator ports.OrderValidator,
	publisher ports.EventPublisher,
	log ports.Logger,
	deliveryFee decimal.Decimal,
) *OrderService {
	return &OrderService{
		catalog:     catalog,
		validator:   validator,
		publisher:   publisher,
		log:         log,
		deliveryFee: deliveryFee,
		now:         time.Now,
	}
}

// Submit — принять заказ. Шаги:
//  1. цены и названия позиций берутся из текущего каталога;
//  2. подсчёт сумм: доставка только для непустого заказа;
//  3. нормализация телефона и доменная валидация (validate.ErrInvalidOrder);
//  4. журнал и публикация события order.submitted (ошибка публикации не отменяет заказ).
func (s *OrderService) Submit(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("%w: заказ не может быть nil", validate.ErrInvalidOrder)
	}
	o := *order
	o.Items = append([]domain.OrderLine(nil), order.Items...)
	o.CustomerName = strings.TrimSpace(o.CustomerName)
	o.Address = strings.TrimSpace(o.Address)

	if err := s.reprice(ctx, &o); err != nil {
		return nil, err
	}

	o.Subtotal = decimal.Zero
	for _, it := range o.Items {
		o.Subtotal = o.Subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	o.DeliveryFee = decimal.Zero
	if len(o.Items) > 0 {
		o.DeliveryFee = s.deliveryFee
	}
	o.Total = o.Subtotal.Add(o.DeliveryFee)
	if o.Payment != domain.PaymentCash {
		o.NeedChange = false
		o.ChangeAmount = nil
	}

	if phone, err := validate.NormalizePhone(o.Phone); err == nil {
		o.Phone = phone
	}
	if err := s.validator.Validate(ctx, &o); err != nil {
		s.log.Warnf(ctx, "order rejected err=%v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	o.ID = uuid.NewString()
	o.SubmittedAt = s.now().UTC()

	metrics.OrdersSubmitted.WithLabelValues(o.Payment).Inc()
	s.log.Infof(ctx, "order submitted id=%s items=%d total=%s payment=%s",
		o.ID, len(o.Items), o.Total.StringFixed(2), o.Payment)

	if err := s.publisher.PublishOrder(ctx, &o); err != nil {
		s.log.Warnf(ctx, "publish order failed id=%s err=%v", o.ID, err)
	}
	return &o, nil
}

// reprice — подставляет цену и название из каталога; неизвестный товар — ошибка.
func (s *OrderService) reprice(ctx context.Context, o *domain.Order) error {
	if s.catalog == nil || len(o.Items) == 0 {
		return nil
	}
	res, err := s.catalog.GetCatalog(ctx)
	if err != nil {
		return err
	}
	byID := make(map[string]*domain.Product, len(res.Catalog.Products))
	for i := range res.Catalog.Products {
		byID[res.Catalog.Products[i].ID] = &res.Catalog.Products[i]
	}
	for i := range o.Items {
		p, ok := byID[o.Items[i].ProductID]
		if !ok {
			return fmt.Errorf("%w: товар %q отсутствует в каталоге", validate.ErrInvalidOrder, o.Items[i].ProductID)
		}
		o.Items[i].Price = p.Price
		o.Items[i].Name = p.Name
	}
	return nil
}
