package postgres

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/ports"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ ports.DashboardReader = (*DashboardRepository)(nil)

// dashboardTopCategories — сколько категорий показывать в сводке.
const dashboardTopCategories = 5

type DashboardRepository struct {
	pool *pgxpool.Pool
}

func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepository {
	return &DashboardRepository{pool: pool}
}

// Dashboard — счётчики по всем товарам (включая неактивные) и топ категорий витрины.
func (r *DashboardRepository) Dashboard(ctx context.Context, lowStockThreshold int) (*domain.Dashboard, error) {
	var d domain.Dashboard

	if err := r.pool.QueryRow(ctx, `
		SELECT
			count(*),
			count(*) FILTER (WHERE stock_quantity <= $1),
			count(*) FILTER (WHERE is_featured),
			(SELECT count(*) FROM categories)
		FROM products
	`, lowStockThreshold).Scan(&d.TotalProducts, &d.LowStockProducts, &d.FeaturedProducts, &d.TotalCategories); err != nil {
		return nil, fmt.Errorf("select counters: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT COALESCE(c.id::text, $1), COALESCE(c.name, $2), count(*)
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.is_active
		GROUP BY 1, 2
		ORDER BY 3 DESC, 2
		LIMIT $3
	`, domain.UncategorizedID, "Товары", dashboardTopCategories)
	if err != nil {
		return nil, fmt.Errorf("select top categories: %w", err)
	}
	defer rows.Close()

	d.TopCategories = make([]domain.Category, 0, dashboardTopCategories)
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scan top category: %w", err)
		}
		d.TopCategories = append(d.TopCategories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top categories rows: %w", err)
	}
	return &d, nil
}
