package ports

import (
	"context"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context, limit, offset int) ([]domain.ProductRecord, error)
	GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error)
	CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.ProductRecord, error)
	UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.ProductRecord, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]domain.CategoryRecord, error)
	CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.CategoryRecord, error)
	UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (*domain.CategoryRecord, error)
	DeleteCategory(ctx context.Context, id string) error
}

// DashboardReader — агрегаты для админ-панели.
type DashboardReader interface {
	Dashboard(ctx context.Context, lowStockThreshold int) (*domain.Dashboard, error)
}

// AdminUserRepository — учётные записи администраторов.
// FindByEmail возвращает domain.ErrNotFound, если активной записи нет.
type AdminUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}
