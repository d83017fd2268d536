package ports

import (
	"context"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// ImageStorage — объектное хранилище изображений товаров.
type ImageStorage interface {
	Save(ctx context.Context, objectPath string, data []byte, mimeType string) (*domain.StoredImage, error)
}
