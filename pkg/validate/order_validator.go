package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — проверка оформленного заказа. Суммы должны быть уже посчитаны.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCustomer(order); err != nil {
		return err
	}
	if err := v.validateItems(order.Items); err != nil {
		return err
	}
	return v.validatePayment(order)
}

// validateCustomer — имя, телефон, адрес.
func (v *OrderValidator) validateCustomer(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.CustomerName) == "" {
		return fmt.Errorf("%w: имя обязательно", ErrInvalidOrder)
	}
	if _, err := NormalizePhone(order.Phone); err != nil {
		return fmt.Errorf("%w: некорректный российский мобильный номер", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.Address) == "" {
		return fmt.Errorf("%w: адрес обязателен", ErrInvalidOrder)
	}
	return nil
}

// Валидация позиций
func (v *OrderValidator) validateItems(items []domain.OrderLine) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: корзина пуста", ErrInvalidOrder)
	}
	for i := range items {
		item := &items[i]
		if item.ProductID == "" {
			return fmt.Errorf("%w: items[%d].productId обязателен", ErrInvalidOrder, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity должен быть положительным", ErrInvalidOrder, i)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("%w: items[%d].price должен быть неотрицательным", ErrInvalidOrder, i)
		}
	}
	return nil
}

// Валидация оплаты и сдачи
func (v *OrderValidator) validatePayment(order *domain.Order) error {
	switch order.Payment {
	case domain.PaymentCash, domain.PaymentCard:
	default:
		return fmt.Errorf("%w: способ оплаты должен быть cash или card", ErrInvalidOrder)
	}
	if !order.Total.Equal(order.Subtotal.Add(order.DeliveryFee)) {
		return fmt.Errorf("%w: итог не совпадает с суммой позиций и доставки", ErrInvalidOrder)
	}
	if !order.NeedChange {
		return nil
	}
	if order.Payment != domain.PaymentCash {
		return fmt.Errorf("%w: сдача возможна только при оплате наличными", ErrInvalidOrder)
	}
	if order.ChangeAmount == nil || !order.ChangeAmount.GreaterThan(order.Total) {
		return fmt.Errorf("%w: сумма для сдачи должна быть больше стоимости заказа", ErrInvalidOrder)
	}
	return nil
}
