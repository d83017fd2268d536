// Пакет cart — корзина покупателя: позиции, суммы, сохранение и уведомления подписчиков.
// Корзина живёт на стороне клиента (cmd/shop) и не ходит на сервер до оформления заказа.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/shopspring/decimal"
)

// StorageKey — ключ, под которым корзина лежит в хранилище.
const StorageKey = "fishShopCart"

var (
	ErrInvalidProduct  = errors.New("invalid product data")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// MaxQuantity — потолок количества в позиции; сложение насыщается на нём.
const MaxQuantity = math.MaxInt32

// addQuantity — a + b без переполнения, не больше MaxQuantity.
func addQuantity(a, b int) int {
	if b > MaxQuantity-a {
		return MaxQuantity
	}
	return a + b
}

// DefaultDeliveryFee — доставка для непустой корзины.
var DefaultDeliveryFee = decimal.NewFromInt(300)

// Item — позиция корзины: снимок товара на момент добавления.
type Item struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Image    string          `json:"image"`
	Quantity int             `json:"quantity"`
	AddedAt  time.Time       `json:"addedAt"`
}

// Subtotal — price * quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Product — то, что передаётся в AddItem.
type Product struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Image string
}

// Storage — долговременное key-value хранилище корзины.
// Get возвращает (nil, false, nil), если ключа нет.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Cart — упорядоченный список позиций; не больше одной позиции на товар.
type Cart struct {
	storage     Storage
	log         ports.Logger
	now         func() time.Time
	deliveryFee decimal.Decimal

	mu    sync.Mutex
	items []Item

	lmu       sync.Mutex
	listeners map[int]Listener
	nextID    int
}

// Option — настройка корзины.
type Option func(*Cart)

func WithClock(now func() time.Time) Option {
	return func(c *Cart) {
		if now != nil {
			c.now = now
		}
	}
}

func WithDeliveryFee(fee decimal.Decimal) Option {
	return func(c *Cart) { c.deliveryFee = fee }
}

// New — корзина, восстановленная из storage по ключу StorageKey.
// Повреждённые данные логируются, корзина стартует пустой.
func New(ctx context.Context, storage Storage, log ports.Logger, opts ...Option) *Cart {
	c := &Cart{
		storage:     storage,
		log:         log,
		now:         time.Now,
		deliveryFee: DefaultDeliveryFee,
		listeners:   make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.items = c.load(ctx)
	return c
}

// AddItem — добавить товар; если он уже в корзине, количество суммируется.
func (c *Cart) AddItem(ctx context.Context, p Product, quantity int) error {
	if p.ID == "" {
		return ErrInvalidProduct
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	c.mu.Lock()
	var item Item
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity = addQuantity(c.items[i].Quantity, quantity)
		item = c.items[i]
	} else {
		item = Item{ID: p.ID, Name: p.Name, Price: p.Price, Image: p.Image, Quantity: addQuantity(0, quantity), AddedAt: c.now().UTC()}
		c.items = append(c.items, item)
	}
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.notify(ctx, Event{Type: EventItemAdded, Item: item, Quantity: quantity})
	c.log.Infof(ctx, "cart: added %dx %s", quantity, p.ID)
	return nil
}

// RemoveItem — удалить позицию; отсутствие позиции не ошибка.
func (c *Cart) RemoveItem(ctx context.Context, productID string) {
	c.mu.Lock()
	i := c.indexOf(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	removed := c.items[i]
	c.items = append(c.items[:i], c.items[i+1:]...)
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.notify(ctx, Event{Type: EventItemRemoved, Item: removed})
	c.log.Infof(ctx, "cart: removed %s", productID)
}

// UpdateQuantity — установить количество; quantity <= 0 удаляет позицию.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(ctx, productID)
		return
	}

	c.mu.Lock()
	i := c.indexOf(productID)
	if i < 0 {
		c.mu.Unlock()
		return
	}
	c.items[i].Quantity = addQuantity(0, quantity)
	item := c.items[i]
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	c.persist(ctx, snapshot)
	c.notify(ctx, Event{Type: EventQuantityUpdated, Item: item, Quantity: quantity})
}

// Clear — очистить корзину.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.persist(ctx, []Item{})
	c.notify(ctx, Event{Type: EventCartCleared})
	c.log.Infof(ctx, "cart: cleared")
}

// Items — копия позиций в порядке добавления.
func (c *Cart) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Total — сумма price * quantity.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// TotalItems — сумма количеств.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n = addQuantity(n, it.Quantity)
	}
	return n
}

// DeliveryFee — стоимость доставки для текущего состояния (0 для пустой корзины).
func (c *Cart) DeliveryFee() decimal.Decimal {
	if c.IsEmpty() {
		return decimal.Zero
	}
	return c.deliveryFee
}

// TotalWithDelivery — итог с доставкой; пустая корзина даёт ровно 0.
func (c *Cart) TotalWithDelivery() decimal.Decimal {
	return c.Total().Add(c.DeliveryFee())
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func (c *Cart) indexOf(id string) int {
	for i := range c.items {
		if c.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) snapshotLocked() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// persist — ошибка записи логируется; состояние в памяти не откатывается.
func (c *Cart) persist(ctx context.Context, items []Item) {
	data, err := json.Marshal(items)
	if err != nil {
		c.log.Errorf(ctx, "cart: marshal failed err=%v", err)
		return
	}
	if err := c.storage.Set(ctx, StorageKey, data); err != nil {
		c.log.Errorf(ctx, "cart: save failed err=%v", err)
	}
}

func (c *Cart) load(ctx context.Context) []Item {
	data, ok, err := c.storage.Get(ctx, StorageKey)
	if err != nil {
		c.log.Errorf(ctx, "cart: load failed err=%v", err)
		return nil
	}
	if !ok || len(data) == 0 {
		return nil
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		c.log.Errorf(ctx, "cart: stored data is corrupted err=%v", err)
		return nil
	}

	out := make([]Item, 0, len(items))
	pos := make(map[string]int, len(items))
	for _, it := range items {
		if it.ID == "" || it.Quantity <= 0 {
			continue
		}
		if i, dup := pos[it.ID]; dup {
			// повтор товара сливается с первой позицией
			out[i].Quantity = addQuantity(out[i].Quantity, it.Quantity)
			c.log.Warnf(ctx, "cart: duplicate stored line merged id=%s qty=%d", it.ID, it.Quantity)
			continue
		}
		pos[it.ID] = len(out)
		it.Quantity = addQuantity(0, it.Quantity)
		out = append(out, it)
	}
	return out
}
