package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Цены уходят клиенту числами, а не строками.
	decimal.MarshalJSONWithoutQuotes = true
}

// UncategorizedID — идентификатор корзины товаров без категории.
const UncategorizedID = "uncategorized"

// RawImage — изображение товара в том виде, в котором его отдаёт хранилище.
type RawImage struct {
	ImageURL      string
	AltText       string
	IsPrimary     bool
	StorageBucket string
	StoragePath   string
	PublicURL     string
}

// RawCategory — join категории у строки товара.
type RawCategory struct {
	ID   string
	Name string
}

// RawProduct — строка хранилища до нормализации.
// Числовые поля приходят текстом: их приведение — задача трансформера.
type RawProduct struct {
	ID            string
	Name          string
	Description   string
	Price         string
	OldPrice      string
	StockQuantity string
	Weight        string
	Unit          string
	IsFeatured    bool
	SortOrder     int
	Category      *RawCategory
	Images        []RawImage
}

// Product — нормализованная витринная модель товара.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price"`
	OldPrice      *decimal.Decimal `json:"oldPrice"`
	Category      string           `json:"category"`
	CategoryID    string           `json:"categoryId"`
	Image         string           `json:"image"`
	ImageAlt      string           `json:"imageAlt"`
	StockQuantity int              `json:"stockQuantity"`
	Weight        *decimal.Decimal `json:"weight"`
	Unit          string           `json:"unit"`
	IsFeatured    bool             `json:"isFeatured"`
	IsInStock     bool             `json:"isInStock"`
	SortOrder     int              `json:"sortOrder"`
}

// Category — категория витрины с числом товаров.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog — полный ответ каталога, который кладётся в кэш целиком.
type Catalog struct {
	Products      []Product  `json:"products"`
	Categories    []Category `json:"categories"`
	TopCategories []Category `json:"topCategories"`
	Total         int        `json:"total"`
	InStock       int        `json:"inStock"`
	Featured      int        `json:"featured"`
	Dropped       int        `json:"-"`
	GeneratedAt   time.Time  `json:"-"`
}

// Clone — копия каталога; срезы не разделяются с оригиналом.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := *c
	out.Products = append([]Product(nil), c.Products...)
	out.Categories = append([]Category(nil), c.Categories...)
	out.TopCategories = append([]Category(nil), c.TopCategories...)
	return &out
}

// CatalogResult — каталог плюс сведения о том, откуда он взят.
type CatalogResult struct {
	Catalog  *Catalog
	Cached   bool
	Stale    bool
	StoredAt time.Time
	TTL      time.Duration
}
