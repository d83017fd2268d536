package cart

import (
	"context"
	"fmt"
	"slices"
)

// EventType — вид изменения корзины.
type EventType string

const (
	EventItemAdded       EventType = "itemAdded"
	EventItemRemoved     EventType = "itemRemoved"
	EventQuantityUpdated EventType = "quantityUpdated"
	EventCartCleared     EventType = "cartCleared"
)

// Event — уведомление подписчику. Item пуст для cartCleared.
type Event struct {
	Type     EventType
	Item     Item
	Quantity int
}

// Listener — подписчик; ошибка или паника логируются и не мешают остальным.
type Listener func(ctx context.Context, ev Event) error

// Subscribe — зарегистрировать подписчика; возвращает функцию отписки.
func (c *Cart) Subscribe(l Listener) (unsubscribe func()) {
	c.lmu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.lmu.Unlock()

	return func() {
		c.lmu.Lock()
		delete(c.listeners, id)
		c.lmu.Unlock()
	}
}

// notify — подписчики вызываются в порядке регистрации.
func (c *Cart) notify(ctx context.Context, ev Event) {
	c.lmu.Lock()
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}
	c.lmu.Unlock()
	slices.Sort(ids)

	for _, id := range ids {
		c.lmu.Lock()
		l, ok := c.listeners[id]
		c.lmu.Unlock()
		if !ok {
			continue
		}
		if err := c.call(ctx, l, ev); err != nil {
			c.log.Errorf(ctx, "cart: listener failed event=%s err=%v", ev.Type, err)
		}
	}
}

func (c *Cart) call(ctx context.Context, l Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return l(ctx, ev)
}
