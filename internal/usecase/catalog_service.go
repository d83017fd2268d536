package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/catalog"
	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/Gunvolt24/seafood-shop/pkg/metrics"
	"github.com/Gunvolt24/seafood-shop/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

var (
	// ErrStoreQuery — запрос к хранилищу каталога завершился ошибкой.
	ErrStoreQuery = errors.New("catalog store query failed")
	// ErrStoreMisconfigured — хранилище не сконфигурировано; отдавать устаревший кэш нельзя.
	ErrStoreMisconfigured = domain.ErrStoreMisconfigured
)

// DefaultTopCategories — размер списка популярных категорий.
const DefaultTopCategories = 5

var (
	_ ports.CatalogReadService = (*CatalogService)(nil)
	_ ports.CatalogInvalidator = (*CatalogService)(nil)
)

// CatalogService — витрина: кэш → хранилище → трансформация → сводка → кэш.
type CatalogService struct {
	store       ports.CatalogStore
	cache       ports.CatalogCache
	transformer *catalog.Transformer
	log         ports.Logger
	topN        int
	now         func() time.Time
}

// NewCatalogService — DI-конструктор; topN <= 0 заменяется значением по умолчанию.
func NewCatalogService(
	store ports.CatalogStore,
	cache ports.CatalogCache,
	transformer *catalog.Transformer,
	log ports.Logger,
	topN int,
) *CatalogService {
	if topN <= 0 {
		topN = DefaultTopCategories
	}
	if transformer == nil {
		transformer = catalog.NewTransformer(catalog.Options{})
	}
	return &CatalogService{
		store:       store,
		cache:       cache,
		transformer: transformer,
		log:         log,
		topN:        topN,
		now:         time.Now,
	}
}

// GetCatalog — каталог из кэша, при промахе — из хранилища с записью в кэш.
// При ошибке запроса отдаётся устаревшая копия (Stale=true), если она есть.
// Параллельные промахи не схлопываются: каждый идёт в хранилище.
func (s *CatalogService) GetCatalog(ctx context.Context) (*domain.CatalogResult, error) {
	if c, storedAt, ok := s.cache.Get(ctx); ok {
		return &domain.CatalogResult{Catalog: c, Cached: true, StoredAt: storedAt, TTL: s.cache.TTL()}, nil
	}

	if s.store == nil {
		s.log.Errorf(ctx, "catalog store is not configured")
		return nil, ErrStoreMisconfigured
	}

	gen := s.cache.Generation(ctx)
	start := time.Now()
	fetchCtx, span := telemetry.StartSpan(ctx, "catalog.store.fetch")
	rows, err := s.store.ListActiveProducts(fetchCtx)
	span.SetAttributes(attribute.Int("catalog.rows", len(rows)))
	telemetry.EndSpan(span, err)
	metrics.CatalogFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, ErrStoreMisconfigured) {
			s.log.Errorf(ctx, "catalog store misconfigured err=%v", err)
			return nil, err
		}
		metrics.CatalogStoreErrors.Inc()
		if stale, storedAt, ok := s.cache.Stale(ctx); ok {
			s.log.Warnf(ctx, "catalog store failed, serving stale copy stored_at=%s err=%v",
				storedAt.Format(time.RFC3339), err)
			return &domain.CatalogResult{
				Catalog:  stale,
				Cached:   true,
				Stale:    true,
				StoredAt: storedAt,
				TTL:      s.cache.TTL(),
			}, nil
		}
		s.log.Errorf(ctx, "catalog store query failed err=%v", err)
		return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	res := s.transformer.Transform(rows)
	for _, d := range res.Dropped {
		metrics.CatalogRowsDropped.WithLabelValues(d.Reason).Inc()
		s.log.Warnf(ctx, "catalog row dropped id=%s reason=%s", d.ID, d.Reason)
	}

	now := s.now()
	c := catalog.Summarize(res.Products, s.topN, now)
	c.Dropped = len(res.Dropped)
	if !s.cache.Put(ctx, c, gen) {
		s.log.Infof(ctx, "catalog invalidated during fetch, stored as stale")
	}

	s.log.Infof(ctx, "catalog fetched rows=%d products=%d dropped=%d took=%s",
		len(rows), c.Total, c.Dropped, time.Since(start))

	return &domain.CatalogResult{Catalog: c, StoredAt: now, TTL: s.cache.TTL()}, nil
}

// Invalidate — пометить кэш устаревшим; следующее чтение пойдёт в хранилище.
func (s *CatalogService) Invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx)
	s.log.Infof(ctx, "catalog cache invalidated")
}
