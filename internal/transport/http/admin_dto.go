package rest

import (
	"fmt"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/Gunvolt24/seafood-shop/internal/usecase"
	"github.com/shopspring/decimal"
)

// Админ-панель работает с полями в snake_case, как они лежат в хранилище.

type adminCategoryRef struct {
	Name string `json:"name"`
}

type adminImage struct {
	ImageURL      string `json:"image_url,omitempty"`
	AltText       string `json:"alt_text,omitempty"`
	IsPrimary     bool   `json:"is_primary"`
	StorageBucket string `json:"storage_bucket,omitempty"`
	StoragePath   string `json:"storage_path,omitempty"`
	PublicURL     string `json:"public_url,omitempty"`
}

type adminProduct struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         decimal.Decimal   `json:"price"`
	OldPrice      *decimal.Decimal  `json:"old_price"`
	CategoryID    *string           `json:"category_id"`
	Categories    *adminCategoryRef `json:"categories"`
	StockQuantity int               `json:"stock_quantity"`
	Weight        *decimal.Decimal  `json:"weight"`
	Unit          string            `json:"unit"`
	IsFeatured    bool              `json:"is_featured"`
	IsActive      bool              `json:"is_active"`
	SortOrder     int               `json:"sort_order"`
	ImageURL      string            `json:"image_url"`
	Images        []adminImage      `json:"product_images"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toAdminProduct(p *domain.ProductRecord) adminProduct {
	out := adminProduct{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OldPrice:      p.OldPrice,
		CategoryID:    p.CategoryID,
		StockQuantity: p.StockQuantity,
		Weight:        p.Weight,
		Unit:          p.Unit,
		IsFeatured:    p.IsFeatured,
		IsActive:      p.IsActive,
		SortOrder:     p.SortOrder,
		ImageURL:      p.ImageURL,
		Images:        make([]adminImage, 0, len(p.Images)),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
	if p.CategoryID != nil && p.CategoryName != "" {
		out.Categories = &adminCategoryRef{Name: p.CategoryName}
	}
	for _, im := range p.Images {
		out.Images = append(out.Images, adminImage{
			ImageURL:      im.ImageURL,
			AltText:       im.AltText,
			IsPrimary:     im.IsPrimary,
			StorageBucket: im.StorageBucket,
			StoragePath:   im.StoragePath,
			PublicURL:     im.PublicURL,
		})
	}
	return out
}

type productPayload struct {
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	OldPrice      *decimal.Decimal `json:"old_price"`
	CategoryID    *string          `json:"category_id"`
	StockQuantity int              `json:"stock_quantity"`
	Weight        *decimal.Decimal `json:"weight"`
	Unit          string           `json:"unit"`
	IsFeatured    bool             `json:"is_featured"`
	IsActive      *bool            `json:"is_active"`
	SortOrder     int              `json:"sort_order"`
	ImageURL      string           `json:"image_url"`
}

// toInput — отсутствующий is_active означает активный товар.
func (p productPayload) toInput() (domain.ProductInput, error) {
	if p.Price == nil {
		return domain.ProductInput{}, fmt.Errorf("%w: price is required", usecase.ErrInvalidInput)
	}
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return domain.ProductInput{
		Name:          p.Name,
		Description:   p.Description,
		Price:         *p.Price,
		OldPrice:      p.OldPrice,
		CategoryID:    p.CategoryID,
		StockQuantity: p.StockQuantity,
		Weight:        p.Weight,
		Unit:          p.Unit,
		IsFeatured:    p.IsFeatured,
		IsActive:      active,
		SortOrder:     p.SortOrder,
		ImageURL:      p.ImageURL,
	}, nil
}

type adminCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toAdminCategory(c *domain.CategoryRecord) adminCategory {
	return adminCategory{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

type categoryPayload struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active"`
}

func (p categoryPayload) toInput() domain.CategoryInput {
	active := true
	if p.IsActive != nil {
		active = *p.IsActive
	}
	return domain.CategoryInput{
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		SortOrder:   p.SortOrder,
		IsActive:    active,
	}
}
