// Пакет view — текстовое представление корзины для cmd/shop.
package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Gunvolt24/seafood-shop/internal/cart"
	"github.com/shopspring/decimal"
)

// Renderer — перерисовывает сводку корзины на каждое событие.
type Renderer struct {
	w    io.Writer
	cart *cart.Cart
}

// Attach — подписать рендерер на события корзины; возвращает функцию отписки.
func Attach(c *cart.Cart, w io.Writer) (*Renderer, func()) {
	r := &Renderer{w: w, cart: c}
	unsubscribe := c.Subscribe(r.onEvent)
	return r, unsubscribe
}

func (r *Renderer) onEvent(_ context.Context, ev cart.Event) error {
	if _, err := fmt.Fprintln(r.w, Describe(ev)); err != nil {
		return err
	}
	return r.Render()
}

// Render — таблица позиций и итоги.
func (r *Renderer) Render() error {
	return Summary(r.w, r.cart)
}

// Describe — одна строка о событии.
func Describe(ev cart.Event) string {
	switch ev.Type {
	case cart.EventItemAdded:
		return fmt.Sprintf("+ %s ×%d", label(ev.Item), ev.Quantity)
	case cart.EventItemRemoved:
		return fmt.Sprintf("- %s", label(ev.Item))
	case cart.EventQuantityUpdated:
		return fmt.Sprintf("~ %s → %d", label(ev.Item), ev.Quantity)
	case cart.EventCartCleared:
		return "корзина очищена"
	default:
		return string(ev.Type)
	}
}

func label(it cart.Item) string {
	if it.Name != "" {
		return it.Name
	}
	return it.ID
}

// Summary — печатает содержимое корзины: позиции, сумму, доставку и итог.
func Summary(w io.Writer, c *cart.Cart) error {
	items := c.Items()
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "Корзина пуста")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tТовар\tЦена\tКол-во\tСумма")
	for _, it := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", it.ID, it.Name, FormatPrice(it.Price), it.Quantity, FormatPrice(it.Subtotal()))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Товаров: %d\nСумма: %s\nДоставка: %s\nИтого: %s\n",
		c.TotalItems(), FormatPrice(c.Total()), FormatPrice(c.DeliveryFee()), FormatPrice(c.TotalWithDelivery()))
	return err
}

// FormatPrice — "1 500 ₽", "99,50 ₽": разряды через пробел, копейки только если есть.
func FormatPrice(v decimal.Decimal) string {
	neg := v.IsNegative()
	v = v.Abs().Round(2)

	whole := v.Truncate(0)
	frac := v.Sub(whole)

	digits := whole.String()
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, ch := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(ch)
	}
	if !frac.IsZero() {
		fmt.Fprintf(&b, ",%02d", frac.Shift(2).IntPart())
	}
	b.WriteString(" ₽")
	return b.String()
}
