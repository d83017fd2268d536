package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Gunvolt24/seafood-shop/internal/cart"
	"github.com/Gunvolt24/seafood-shop/internal/cart/view"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func TestFormatPrice(t *testing.T) {
	cases := map[string]string{
		"0":       "0 ₽",
		"300":     "300 ₽",
		"1500":    "1 500 ₽",
		"1234567": "1 234 567 ₽",
		"99.5":    "99,50 ₽",
		"99.05":   "99,05 ₽",
		"-1200":   "-1 200 ₽",
	}
	for in, want := range cases {
		require.Equal(t, want, view.FormatPrice(decimal.RequireFromString(in)), in)
	}
}

func TestSummary_Empty(t *testing.T) {
	c := cart.New(context.Background(), cart.NewMemoryStorage(), noopLogger{})
	var buf bytes.Buffer

	require.NoError(t, view.Summary(&buf, c))
	require.Equal(t, "Корзина пуста\n", buf.String())
}

func TestAttach_RendersOnEvents(t *testing.T) {
	ctx := context.Background()
	c := cart.New(ctx, cart.NewMemoryStorage(), noopLogger{})
	var buf bytes.Buffer

	_, detach := view.Attach(c, &buf)
	require.NoError(t, c.AddItem(ctx, cart.Product{ID: "p1", Name: "Сёмга", Price: decimal.NewFromInt(500)}, 3))

	out := buf.String()
	require.Contains(t, out, "+ Сёмга ×3")
	require.Contains(t, out, "Сумма: 1 500 ₽")
	require.Contains(t, out, "Доставка: 300 ₽")
	require.Contains(t, out, "Итого: 1 800 ₽")

	detach()
	buf.Reset()
	c.Clear(ctx)
	require.Empty(t, buf.String())
}

func TestDescribe(t *testing.T) {
	it := cart.Item{ID: "p1"}
	require.Equal(t, "- p1", view.Describe(cart.Event{Type: cart.EventItemRemoved, Item: it}))
	require.True(t, strings.HasPrefix(view.Describe(cart.Event{Type: cart.EventQuantityUpdated, Item: it, Quantity: 4}), "~ p1"))
	require.Equal(t, "корзина очищена", view.Describe(cart.Event{Type: cart.EventCartCleared}))
}
