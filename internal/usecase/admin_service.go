package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/gosimple/slug"
)

// ErrInvalidInput — некорректные данные товара или категории.
var ErrInvalidInput = errors.New("invalid input")

// Пагинация списка товаров в админке.
const (
	DefaultAdminLimit = 100
	MaxAdminLimit     = 500
)

var _ ports.AdminCatalogService = (*AdminService)(nil)

// AdminService — изменения каталога. После каждого успешного изменения локальный кэш
// витрины помечается устаревшим, а событие уходит остальным инстансам.
type AdminService struct {
	products    ports.ProductRepository
	categories  ports.CategoryRepository
	dashboard   ports.DashboardReader
	invalidator ports.CatalogInvalidator
	publisher   ports.EventPublisher
	log         ports.Logger
	now         func() time.Time
}

// NewAdminService — DI-конструктор.
func NewAdminService(
	products ports.ProductRepository,
	categories ports.CategoryRepository,
	dashboard ports.DashboardReader,
	invalidator ports.CatalogInvalidator,
	publisher ports.EventPublisher,
	log ports.Logger,
) *AdminService {
	return &AdminService{
		products:    products,
		categories:  categories,
		dashboard:   dashboard,
		invalidator: invalidator,
		publisher:   publisher,
		log:         log,
		now:         time.Now,
	}
}

func (s *AdminService) ListProducts(ctx context.Context, limit, offset int) ([]domain.ProductRecord, error) {
	if limit <= 0 {
		limit = DefaultAdminLimit
	}
	if limit > MaxAdminLimit {
		limit = MaxAdminLimit
	}
	if offset < 0 {
		offset = 0
	}
	return s.products.ListProducts(ctx, limit, offset)
}

func (s *AdminService) CreateProduct(ctx context.Context, actor string, in domain.ProductInput) (*domain.ProductRecord, error) {
	if err := validateProductInput(&in); err != nil {
		return nil, err
	}
	p, err := s.products.CreateProduct(ctx, in)
	if err != nil {
		s.log.Errorf(ctx, "create product failed actor=%s err=%v", actor, err)
		return nil, err
	}
	s.catalogChanged(ctx, domain.EventProductCreated, p.ID, actor)
	return p, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, actor, id string, in domain.ProductInput) (*domain.ProductRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if err := validateProductInput(&in); err != nil {
		return nil, err
	}
	p, err := s.products.UpdateProduct(ctx, id, in)
	if err != nil {
		s.log.Errorf(ctx, "update product failed id=%s actor=%s err=%v", id, actor, err)
		return nil, err
	}
	s.catalogChanged(ctx, domain.EventProductUpdated, id, actor)
	return p, nil
}

func (s *AdminService) DeleteProduct(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: product id is required", ErrInvalidInput)
	}
	if err := s.products.DeleteProduct(ctx, id); err != nil {
		s.log.Errorf(ctx, "delete product failed id=%s actor=%s err=%v", id, actor, err)
		return err
	}
	s.catalogChanged(ctx, domain.EventProductDeleted, id, actor)
	return nil
}

func (s *AdminService) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	return s.categories.ListCategories(ctx)
}

func (s *AdminService) CreateCategory(ctx context.Context, actor string, in domain.CategoryInput) (*domain.CategoryRecord, error) {
	if err := validateCategoryInput(&in); err != nil {
		return nil, err
	}
	c, err := s.categories.CreateCategory(ctx, in)
	if err != nil {
		s.log.Errorf(ctx, "create category failed actor=%s err=%v", actor, err)
		return nil, err
	}
	s.catalogChanged(ctx, domain.EventCategoryCreated, c.ID, actor)
	return c, nil
}

func (s *AdminService) UpdateCategory(ctx context.Context, actor, id string, in domain.CategoryInput) (*domain.CategoryRecord, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if err := validateCategoryInput(&in); err != nil {
		return nil, err
	}
	c, err := s.categories.UpdateCategory(ctx, id, in)
	if err != nil {
		s.log.Errorf(ctx, "update category failed id=%s actor=%s err=%v", id, actor, err)
		return nil, err
	}
	s.catalogChanged(ctx, domain.EventCategoryUpdated, id, actor)
	return c, nil
}

func (s *AdminService) DeleteCategory(ctx context.Context, actor, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: category id is required", ErrInvalidInput)
	}
	if err := s.categories.DeleteCategory(ctx, id); err != nil {
		s.log.Errorf(ctx, "delete category failed id=%s actor=%s err=%v", id, actor, err)
		return err
	}
	s.catalogChanged(ctx, domain.EventCategoryDeleted, id, actor)
	return nil
}

// Dashboard — сводка; «заканчивающийся» товар — остаток <= domain.LowStockThreshold.
func (s *AdminService) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	d, err := s.dashboard.Dashboard(ctx, domain.LowStockThreshold)
	if err != nil {
		s.log.Errorf(ctx, "dashboard query failed err=%v", err)
		return nil, err
	}
	return d, nil
}

// catalogChanged — синхронная инвалидация локального кэша и публикация события.
// Ошибка публикации не откатывает изменение: логируется.
func (s *AdminService) catalogChanged(ctx context.Context, eventType, entityID, actor string) {
	if s.invalidator != nil {
		s.invalidator.Invalidate(ctx)
	}
	if s.publisher == nil {
		return
	}
	ev := domain.CatalogEvent{Type: eventType, EntityID: entityID, Actor: actor, OccurredAt: s.now().UTC()}
	if err := s.publisher.PublishCatalogEvent(ctx, ev); err != nil {
		s.log.Warnf(ctx, "publish catalog event failed type=%s id=%s err=%v", eventType, entityID, err)
		return
	}
	s.log.Infof(ctx, "catalog changed type=%s id=%s actor=%s", eventType, entityID, actor)
}

func validateProductInput(in *domain.ProductInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Unit = strings.TrimSpace(in.Unit)
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	case in.Price.IsNegative():
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	case in.OldPrice != nil && in.OldPrice.IsNegative():
		return fmt.Errorf("%w: old price must be non-negative", ErrInvalidInput)
	case in.StockQuantity < 0:
		return fmt.Errorf("%w: stock quantity must be non-negative", ErrInvalidInput)
	case in.Weight != nil && in.Weight.IsNegative():
		return fmt.Errorf("%w: weight must be non-negative", ErrInvalidInput)
	}
	if in.CategoryID != nil && strings.TrimSpace(*in.CategoryID) == "" {
		in.CategoryID = nil
	}
	return nil
}

func validateCategoryInput(in *domain.CategoryInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
	if in.Slug == "" {
		return fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}
	return nil
}

// Slugify — латинский slug из названия: транслитерация, нижний регистр, дефисы.
func Slugify(name string) string {
	return slug.Make(name)
}
