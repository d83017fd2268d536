package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Способы оплаты заказа.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// OrderLine — позиция заказа (снимок позиции корзины).
type OrderLine struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
}

// Order — оформленный заказ. Не сохраняется: только логируется и публикуется.
type Order struct {
	ID           string           `json:"id"`
	CustomerName string           `json:"customerName"`
	Phone        string           `json:"phone"`
	Address      string           `json:"address"`
	Comment      string           `json:"comment,omitempty"`
	Payment      string           `json:"payment"`
	NeedChange   bool             `json:"needChange"`
	ChangeAmount *decimal.Decimal `json:"changeAmount,omitempty"`
	Items        []OrderLine      `json:"items"`
	Subtotal     decimal.Decimal  `json:"subtotal"`
	DeliveryFee  decimal.Decimal  `json:"deliveryFee"`
	Total        decimal.Decimal  `json:"total"`
	SubmittedAt  time.Time        `json:"submittedAt"`
}
