package memory

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
)

// DefaultTTL — время жизни каталога в кэше.
const DefaultTTL = 5 * time.Minute

var _ ports.CatalogCache = (*CatalogCache)(nil)

type slot struct {
	catalog     *domain.Catalog // nil — ячейка пуста, но поколение уже сдвинуто
	storedAt    time.Time
	invalidated bool
	gen         uint64
}

// CatalogCache — одна ячейка {каталог, время записи} с TTL.
// Запись и чтение без блокировок: ячейка целиком подменяется через atomic.Pointer.
type CatalogCache struct {
	ttl  time.Duration
	now  func() time.Time
	slot atomic.Pointer[slot]
}

// Option — настройка кэша.
type Option func(*CatalogCache)

// WithClock — подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(c *CatalogCache) {
		if now != nil {
			c.now = now
		}
	}
}

func NewCatalogCache(ttl time.Duration, opts ...Option) *CatalogCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &CatalogCache{ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TTL — срок свежести ячейки.
func (c *CatalogCache) TTL() time.Duration { return c.ttl }

// Get — каталог, только если now - storedAt < TTL и ячейка не инвалидирована.
func (c *CatalogCache) Get(_ context.Context) (*domain.Catalog, time.Time, bool) {
	s := c.slot.Load()
	if s == nil || s.catalog == nil {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, time.Time{}, false
	}
	if s.invalidated || c.now().Sub(s.storedAt) >= c.ttl {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		return nil, time.Time{}, false
	}
	metrics.CacheOps.WithLabelValues("hit").Inc()
	return s.catalog.Clone(), s.storedAt, true
}

// Generation — текущее поколение ячейки.
func (c *CatalogCache) Generation(_ context.Context) uint64 {
	if s := c.slot.Load(); s != nil {
		return s.gen
	}
	return 0
}

// Put — заменяет ячейку целиком; при гонке побеждает последний.
// Если после чтения generation был Invalidate, каталог сохраняется только как устаревший.
func (c *CatalogCache) Put(_ context.Context, catalog *domain.Catalog, generation uint64) bool {
	if catalog == nil {
		return false
	}
	cp := catalog.Clone()
	now := c.now()
	for {
		cur := c.slot.Load()
		var gen uint64
		if cur != nil {
			gen = cur.gen
		}
		fresh := gen == generation
		if !fresh && cur != nil && cur.catalog != nil && !cur.invalidated {
			// более новый запрос уже положил свежий каталог
			return false
		}
		next := &slot{catalog: cp, storedAt: now, invalidated: !fresh, gen: gen}
		if !c.slot.CompareAndSwap(cur, next) {
			continue
		}
		if fresh {
			metrics.CacheOps.WithLabelValues("put").Inc()
		} else {
			metrics.CacheOps.WithLabelValues("put_stale").Inc()
		}
		metrics.CacheAge.Set(float64(now.Unix()))
		return fresh
	}
}

// Stale — содержимое ячейки независимо от возраста; для отдачи при недоступном хранилище.
func (c *CatalogCache) Stale(_ context.Context) (*domain.Catalog, time.Time, bool) {
	s := c.slot.Load()
	if s == nil || s.catalog == nil {
		return nil, time.Time{}, false
	}
	metrics.CacheOps.WithLabelValues("stale").Inc()
	return s.catalog.Clone(), s.storedAt, true
}

// Invalidate — помечает ячейку устаревшей, не удаляя её содержимое, и сдвигает поколение.
// Поколение сдвигается и для пустой ячейки: запрос, начатый до вызова, не станет свежим.
func (c *CatalogCache) Invalidate(_ context.Context) {
	for {
		cur := c.slot.Load()
		next := &slot{invalidated: true}
		if cur != nil {
			next.catalog, next.storedAt, next.gen = cur.catalog, cur.storedAt, cur.gen+1
		} else {
			next.gen = 1
		}
		if c.slot.CompareAndSwap(cur, next) {
			metrics.CacheOps.WithLabelValues("invalidate").Inc()
			return
		}
	}
}
