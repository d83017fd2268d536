package validate_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/pkg/validate"
	"github.com/shopspring/decimal"
)

func validOrder() *domain.Order {
	return &domain.Order{
		CustomerName: "Иван",
		Phone:        "+79161234567",
		Address:      "Москва, ул. Рыбная, 1",
		Payment:      domain.PaymentCard,
		Items: []domain.OrderLine{
			{ProductID: "p1", Name: "Сёмга", Price: decimal.NewFromInt(890), Quantity: 2},
		},
		Subtotal:    decimal.NewFromInt(1780),
		DeliveryFee: decimal.NewFromInt(300),
		Total:       decimal.NewFromInt(2080),
	}
}

func TestOrderValidator_Validate(t *testing.T) {
	v := validate.NewOrderValidator()
	ctx := context.Background()

	t.Run("valid order", func(t *testing.T) {
		if err := v.Validate(ctx, validOrder()); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	t.Run("valid cash with change", func(t *testing.T) {
		o := validOrder()
		o.Payment = domain.PaymentCash
		o.NeedChange = true
		amount := decimal.NewFromInt(5000)
		o.ChangeAmount = &amount
		if err := v.Validate(ctx, o); err != nil {
			t.Fatalf("expected valid order, got: %v", err)
		}
	})

	type testCase struct {
		name      string
		makeOrder func() *domain.Order
		msg       string
	}

	cases := []testCase{
		{
			name:      "nil order",
			makeOrder: func() *domain.Order { return nil },
			msg:       "заказ не может быть nil",
		},
		{
			name: "empty name",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.CustomerName = "  "
				return o
			},
			msg: "имя обязательно",
		},
		{
			name: "landline phone",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Phone = "+74951234567"
				return o
			},
			msg: "мобильный номер",
		},
		{
			name: "empty address",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Address = ""
				return o
			},
			msg: "адрес обязателен",
		},
		{
			name: "empty items",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Items = nil
				return o
			},
			msg: "корзина пуста",
		},
		{
			name: "zero quantity",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Items[0].Quantity = 0
				return o
			},
			msg: "items[0].quantity",
		},
		{
			name: "unknown payment",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Payment = "crypto"
				return o
			},
			msg: "способ оплаты",
		},
		{
			name: "total mismatch",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Total = decimal.NewFromInt(1)
				return o
			},
			msg: "итог не совпадает",
		},
		{
			name: "change with card",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.NeedChange = true
				return o
			},
			msg: "только при оплате наличными",
		},
		{
			name: "change equal to total",
			makeOrder: func() *domain.Order {
				o := validOrder()
				o.Payment = domain.PaymentCash
				o.NeedChange = true
				amount := o.Total
				o.ChangeAmount = &amount
				return o
			},
			msg: "больше стоимости заказа",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(ctx, tc.makeOrder())
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !errors.Is(err, validate.ErrInvalidOrder) {
				t.Fatalf("expected ErrInvalidOrder, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.msg) {
				t.Fatalf("expected %q in %q", tc.msg, err.Error())
			}
		})
	}
}
