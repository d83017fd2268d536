package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id::text, name, slug, description, sort_order, is_active, created_at`

func scanCategory(row pgx.Row) (*domain.CategoryRecord, error) {
	var c domain.CategoryRecord
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.SortOrder, &c.IsActive, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) ListCategories(ctx context.Context) ([]domain.CategoryRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	defer rows.Close()

	var out []domain.CategoryRecord
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("categories rows: %w", err)
	}
	return out, nil
}

// CreateCategory — domain.ErrConflict при повторе имени или slug.
func (r *CategoryRepository) CreateCategory(ctx context.Context, in domain.CategoryInput) (*domain.CategoryRecord, error) {
	c, err := scanCategory(r.pool.QueryRow(ctx, `
		INSERT INTO categories (name, slug, description, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+categoryColumns,
		in.Name, in.Slug, in.Description, in.SortOrder, in.IsActive,
	))
	if err != nil {
		return nil, mapErr("insert category", err)
	}
	return c, nil
}

func (r *CategoryRepository) UpdateCategory(ctx context.Context, id string, in domain.CategoryInput) (*domain.CategoryRecord, error) {
	if err := checkID("update category", id); err != nil {
		return nil, err
	}
	c, err := scanCategory(r.pool.QueryRow(ctx, `
		UPDATE categories SET name = $2, slug = $3, description = $4, sort_order = $5, is_active = $6
		WHERE id = $1
		RETURNING `+categoryColumns,
		id, in.Name, in.Slug, in.Description, in.SortOrder, in.IsActive,
	))
	if err != nil {
		return nil, mapErr("update category", err)
	}
	return c, nil
}

// DeleteCategory — товары категории остаются без категории (ON DELETE SET NULL).
func (r *CategoryRepository) DeleteCategory(ctx context.Context, id string) error {
	if err := checkID("delete category", id); err != nil {
		return err
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return mapErr("delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete category: %w", domain.ErrNotFound)
	}
	return nil
}
