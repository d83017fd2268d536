//go:build integration

package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeProduct — валидный активный товар; опции меняют отдельные поля.
func MakeProduct(opts ...func(*domain.ProductInput)) domain.ProductInput {
	p := domain.ProductInput{
		Name:          "Креветки " + UniqSuffix(),
		Description:   "Королевские креветки",
		Price:         decimal.NewFromInt(890),
		StockQuantity: 10,
		Unit:          "кг",
		IsActive:      true,
	}
	for _, fn := range opts {
		fn(&p)
	}
	return p
}

func WithCategory(id string) func(*domain.ProductInput) {
	return func(p *domain.ProductInput) { p.CategoryID = &id }
}

func WithStock(n int) func(*domain.ProductInput) {
	return func(p *domain.ProductInput) { p.StockQuantity = n }
}

func WithSortOrder(n int) func(*domain.ProductInput) {
	return func(p *domain.ProductInput) { p.SortOrder = n }
}

func Featured() func(*domain.ProductInput) {
	return func(p *domain.ProductInput) { p.IsFeatured = true }
}

func Inactive() func(*domain.ProductInput) {
	return func(p *domain.ProductInput) { p.IsActive = false }
}

// SeedCategory — категория напрямую в БД; возвращает id.
func SeedCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	var id string
	err := pool.QueryRow(ctx,
		`INSERT INTO categories (name, slug) VALUES ($1, $2) RETURNING id::text`,
		name, "cat-"+UniqSuffix(),
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("seed category: %w", err)
	}
	return id, nil
}

// SeedImage — изображение товара.
func SeedImage(ctx context.Context, pool *pgxpool.Pool, productID string, img domain.RawImage) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO product_images (product_id, image_url, alt_text, is_primary, storage_bucket, storage_path, public_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, productID, img.ImageURL, img.AltText, img.IsPrimary, img.StorageBucket, img.StoragePath, img.PublicURL)
	if err != nil {
		return fmt.Errorf("seed image: %w", err)
	}
	return nil
}

// SeedAdmin — администратор с паролем (bcrypt.MinCost, чтобы тесты были быстрыми).
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return "", err
	}
	var id string
	err = pool.QueryRow(ctx, `
		INSERT INTO admin_users (email, password_hash, full_name, role)
		VALUES ($1, $2, 'Test Admin', 'admin')
		RETURNING id::text
	`, email, string(hash)).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("seed admin: %w", err)
	}
	return id, nil
}

// MakeOrder — заказ, который проходит валидацию (наличные без сдачи).
func MakeOrder(productID string, qty int) domain.Order {
	return domain.Order{
		CustomerName: "Иван Петров",
		Phone:        "+7 (912) 345-67-89",
		Address:      "Москва, ул. Рыбная, 1",
		Payment:      domain.PaymentCash,
		Items: []domain.OrderLine{
			{ProductID: productID, Quantity: qty},
		},
	}
}
