package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.ProductRepository = (*ProductRepository)(nil)

// ProductRepository — товары для админки, включая неактивные.
type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

const productColumns = `
	p.id::text, p.name, p.description, p.price::text, p.old_price::text,
	p.category_id::text, COALESCE(c.name, ''), p.stock_quantity, p.weight::text,
	p.unit, p.is_featured, p.is_active, p.sort_order, p.image_url, p.created_at, p.updated_at`

func scanProduct(row pgx.Row) (*domain.ProductRecord, error) {
	var (
		p                domain.ProductRecord
		price            string
		oldPrice, weight *string
	)
	if err := row.Scan(
		&p.ID, &p.Name, &p.Description, &price, &oldPrice,
		&p.CategoryID, &p.CategoryName, &p.StockQuantity, &weight,
		&p.Unit, &p.IsFeatured, &p.IsActive, &p.SortOrder, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}

	pp, err := parseDecimal(&price)
	if err != nil {
		return nil, fmt.Errorf("parse price: %w", err)
	}
	p.Price = *pp
	if p.OldPrice, err = parseDecimal(oldPrice); err != nil {
		return nil, fmt.Errorf("parse old price: %w", err)
	}
	if p.Weight, err = parseDecimal(weight); err != nil {
		return nil, fmt.Errorf("parse weight: %w", err)
	}
	return &p, nil
}

// ListProducts — страница товаров по sort_order вместе с изображениями.
func (r *ProductRepository) ListProducts(ctx context.Context, limit, offset int) ([]domain.ProductRecord, error) {
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		ORDER BY p.sort_order, p.created_at, p.id
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ProductRecord, 0, limit)
	ids := make([]string, 0, limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, *p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("products rows: %w", err)
	}
	if len(out) == 0 {
		return out, nil
	}

	images, err := loadImages(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Images = images[out[i].ID]
	}
	return out, nil
}

// GetProduct — товар по id; domain.ErrNotFound, если его нет.
func (r *ProductRepository) GetProduct(ctx context.Context, id string) (*domain.ProductRecord, error) {
	if err := checkID("select product", id); err != nil {
		return nil, err
	}
	p, err := scanProduct(r.pool.QueryRow(ctx, `
		SELECT `+productColumns+`
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1
	`, id))
	if err != nil {
		return nil, mapErr("select product", err)
	}

	images, err := loadImages(ctx, r.pool, []string{p.ID})
	if err != nil {
		return nil, err
	}
	p.Images = images[p.ID]
	return p, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, in domain.ProductInput) (*domain.ProductRecord, error) {
	if err := checkCategoryRef("insert product", in.CategoryID); err != nil {
		return nil, err
	}
	var id string
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (
			name, description, price, old_price, category_id, stock_quantity,
			weight, unit, is_featured, is_active, sort_order, image_url
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id::text
	`,
		in.Name, in.Description, in.Price.String(), decimalArg(in.OldPrice), in.CategoryID, in.StockQuantity,
		decimalArg(in.Weight), unitOrDefault(in.Unit), in.IsFeatured, in.IsActive, in.SortOrder, in.ImageURL,
	).Scan(&id)
	if err != nil {
		return nil, mapErr("insert product", err)
	}
	return r.GetProduct(ctx, id)
}

// UpdateProduct — полная замена полей товара.
func (r *ProductRepository) UpdateProduct(ctx context.Context, id string, in domain.ProductInput) (*domain.ProductRecord, error) {
	if err := checkID("update product", id); err != nil {
		return nil, err
	}
	if err := checkCategoryRef("update product", in.CategoryID); err != nil {
		return nil, err
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE products SET
			name = $2, description = $3, price = $4, old_price = $5, category_id = $6,
			stock_quantity = $7, weight = $8, unit = $9, is_featured = $10, is_active = $11,
			sort_order = $12, image_url = $13, updated_at = now()
		WHERE id = $1
	`,
		id, in.Name, in.Description, in.Price.String(), decimalArg(in.OldPrice), in.CategoryID,
		in.StockQuantity, decimalArg(in.Weight), unitOrDefault(in.Unit), in.IsFeatured, in.IsActive,
		in.SortOrder, in.ImageURL,
	)
	if err != nil {
		return nil, mapErr("update product", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, fmt.Errorf("update product: %w", domain.ErrNotFound)
	}
	return r.GetProduct(ctx, id)
}

// DeleteProduct — жёсткое удаление; изображения удаляются каскадом.
func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	if err := checkID("delete product", id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete product: %w", domain.ErrNotFound)
	}
	return nil
}

func unitOrDefault(u string) string {
	if u = strings.TrimSpace(u); u == "" {
		return "шт"
	}
	return u
}
