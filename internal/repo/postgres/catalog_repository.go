package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.CatalogStore = (*CatalogRepository)(nil)

// CatalogRepository — чтение витрины: активные товары с категорией и изображениями.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository — nil-пул допустим: тогда каждый запрос вернёт ErrStoreMisconfigured.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// ListActiveProducts — два запроса: строки товаров и изображения для всех id страницы.
// Числа читаются текстом, их разбор делает трансформер каталога.
func (r *CatalogRepository) ListActiveProducts(ctx context.Context) ([]domain.RawProduct, error) {
	if r == nil || r.pool == nil {
		return nil, domain.ErrStoreMisconfigured
	}

	rows, err := r.pool.Query(ctx, `
		SELECT
			p.id::text, p.name, p.description, p.price::text,
			COALESCE(p.old_price::text, ''), p.stock_quantity::text, COALESCE(p.weight::text, ''),
			p.unit, p.is_featured, p.sort_order, p.image_url,
			c.id::text, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active
		ORDER BY p.sort_order, p.created_at, p.id
	`)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.RawProduct, 0, 64)
	legacy := make(map[string]string)
	ids := make([]string, 0, 64)

	for rows.Next() {
		var (
			p        domain.RawProduct
			imageURL string
			catID    *string
			catName  *string
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price,
			&p.OldPrice, &p.StockQuantity, &p.Weight,
			&p.Unit, &p.IsFeatured, &p.SortOrder, &imageURL,
			&catID, &catName,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if catID != nil {
			p.Category = &domain.RawCategory{ID: *catID}
			if catName != nil {
				p.Category.Name = *catName
			}
		}
		if imageURL != "" {
			legacy[p.ID] = imageURL
		}
		products = append(products, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	if len(products) == 0 {
		return products, nil
	}

	images, err := loadImages(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range products {
		id := products[i].ID
		products[i].Images = images[id]
		// колонка products.image_url — изображение для товаров без записей в product_images
		if len(products[i].Images) == 0 && legacy[id] != "" {
			products[i].Images = []domain.RawImage{{ImageURL: legacy[id]}}
		}
	}
	return products, nil
}

// loadImages — изображения для набора товаров, сгруппированные по product_id.
func loadImages(ctx context.Context, pool *pgxpool.Pool, ids []string) (map[string][]domain.RawImage, error) {
	rows, err := pool.Query(ctx, `
		SELECT product_id::text, image_url, alt_text, is_primary, storage_bucket, storage_path, public_url
		FROM product_images
		WHERE product_id = ANY($1::uuid[])
		ORDER BY product_id, sort_order, id
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select images: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.RawImage, len(ids))
	for rows.Next() {
		var (
			productID string
			img       domain.RawImage
		)
		if err := rows.Scan(&productID, &img.ImageURL, &img.AltText, &img.IsPrimary,
			&img.StorageBucket, &img.StoragePath, &img.PublicURL); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		out[productID] = append(out[productID], img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("images rows: %w", err)
	}
	return out, nil
}
