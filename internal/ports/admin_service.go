package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// AdminCatalogService — управление каталогом из админ-панели.
type AdminCatalogService interface {
	ListProducts(ctx context.Context, limit, offset int) ([]domain.ProductRecord, error)
	CreateProduct(ctx context.Context, actor string, in domain.ProductInput) (*domain.ProductRecord, error)
	UpdateProduct(ctx context.Context, actor, id string, in domain.ProductInput) (*domain.ProductRecord, error)
	DeleteProduct(ctx context.Context, actor, id string) error

	ListCategories(ctx context.Context) ([]domain.CategoryRecord, error)
	CreateCategory(ctx context.Context, actor string, in domain.CategoryInput) (*domain.CategoryRecord, error)
	UpdateCategory(ctx context.Context, actor, id string, in domain.CategoryInput) (*domain.CategoryRecord, error)
	DeleteCategory(ctx context.Context, actor, id string) error

	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

// AuthService — вход администратора и проверка токена.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.LoginResult, error)
	Verify(ctx context.Context, token string) (*domain.AdminSession, error)
}

// ImageUploadService — приём изображений товаров.
type ImageUploadService interface {
	Upload(ctx context.Context, actor string, req domain.UploadRequest) (*domain.StoredImage, error)
}

// OrderSubmitService — оформление заказа.
type OrderSubmitService interface {
	Submit(ctx context.Context, order *domain.Order) (*domain.Order, error)
}
