// Пакет catalog — нормализация строк хранилища в витринную модель каталога.
// Все функции пакета чистые: без ввода-вывода и скрытого состояния.
package catalog

import (
	"math"
	"net/url"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
	"github.com/shopspring/decimal"
)

// Значения по умолчанию для Options.
const (
	DefaultPlaceholder  = "images/fish-placeholder.svg"
	DefaultCategoryName = "Товары"
	DefaultUnit         = "шт"
	DefaultBucket       = "product-images"
)

// Причины отбраковки строки.
const (
	ReasonMissingName  = "missing name"
	ReasonInvalidPrice = "invalid price"
)

// Options — параметры трансформации.
type Options struct {
	StorageBaseURL      string // база для storage_path: {base}/{bucket}/{path}
	Bucket              string
	Placeholder         string
	DefaultCategoryName string
	DefaultUnit         string
}

// DroppedRow — строка, исключённая из результата.
type DroppedRow struct {
	ID     string
	Reason string
}

// TransformResult — результат трансформации.
type TransformResult struct {
	Products []domain.Product
	Dropped  []DroppedRow
}

// Transformer — строки хранилища → []domain.Product.
type Transformer struct {
	opts Options
}

// NewTransformer — конструктор; незаданные опции заменяются значениями по умолчанию.
func NewTransformer(opts Options) *Transformer {
	if opts.Bucket == "" {
		opts.Bucket = DefaultBucket
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.DefaultCategoryName == "" {
		opts.DefaultCategoryName = DefaultCategoryName
	}
	if opts.DefaultUnit == "" {
		opts.DefaultUnit = DefaultUnit
	}
	opts.StorageBaseURL = strings.TrimRight(opts.StorageBaseURL, "/")
	return &Transformer{opts: opts}
}

// Transform — нормализует строки, сохраняя их порядок.
// Строки без имени или с некорректной ценой отбрасываются и попадают в Dropped.
func (t *Transformer) Transform(rows []domain.RawProduct) TransformResult {
	res := TransformResult{Products: make([]domain.Product, 0, len(rows))}
	for i := range rows {
		p, reason := t.transformRow(&rows[i])
		if reason != "" {
			res.Dropped = append(res.Dropped, DroppedRow{ID: rows[i].ID, Reason: reason})
			continue
		}
		res.Products = append(res.Products, p)
	}
	return res
}

func (t *Transformer) transformRow(row *domain.RawProduct) (domain.Product, string) {
	name := strings.TrimSpace(row.Name)
	if name == "" {
		return domain.Product{}, ReasonMissingName
	}
	price, ok := parsePrice(row.Price)
	if !ok {
		return domain.Product{}, ReasonInvalidPrice
	}

	stock := parseStock(row.StockQuantity)
	categoryID, categoryName := t.category(row.Category)
	image := primaryImage(row.Images)

	alt := name
	if image != nil && strings.TrimSpace(image.AltText) != "" {
		alt = strings.TrimSpace(image.AltText)
	}

	unit := strings.TrimSpace(row.Unit)
	if unit == "" {
		unit = t.opts.DefaultUnit
	}

	return domain.Product{
		ID:            row.ID,
		Name:          name,
		Description:   strings.TrimSpace(row.Description),
		Price:         price,
		OldPrice:      parseOptionalPositive(row.OldPrice),
		Category:      categoryName,
		CategoryID:    categoryID,
		Image:         t.ResolveImageURL(image),
		ImageAlt:      alt,
		StockQuantity: stock,
		Weight:        parseOptionalPositive(row.Weight),
		Unit:          unit,
		IsFeatured:    row.IsFeatured,
		IsInStock:     stock > 0,
		SortOrder:     row.SortOrder,
	}, ""
}

// ResolveImageURL — выбирает ровно один URL изображения:
// public_url → storage_path → image_url → заглушка.
func (t *Transformer) ResolveImageURL(img *domain.RawImage) string {
	if img == nil {
		return t.opts.Placeholder
	}
	if isAbsoluteHTTPURL(img.PublicURL) {
		return strings.TrimSpace(img.PublicURL)
	}
	if path := strings.TrimLeft(strings.TrimSpace(img.StoragePath), "/"); path != "" {
		bucket := strings.TrimSpace(img.StorageBucket)
		if bucket == "" {
			bucket = t.opts.Bucket
		}
		return t.opts.StorageBaseURL + "/" + bucket + "/" + path
	}
	if u := normalizeImageURL(img.ImageURL); u != "" {
		return u
	}
	return t.opts.Placeholder
}

func (t *Transformer) category(c *domain.RawCategory) (id, name string) {
	if c == nil || strings.TrimSpace(c.Name) == "" {
		return domain.UncategorizedID, t.opts.DefaultCategoryName
	}
	name = strings.TrimSpace(c.Name)
	id = strings.TrimSpace(c.ID)
	if id == "" {
		id = name
	}
	return id, name
}

// primaryImage — основное изображение или первое из списка.
func primaryImage(images []domain.RawImage) *domain.RawImage {
	for i := range images {
		if images[i].IsPrimary {
			return &images[i]
		}
	}
	if len(images) > 0 {
		return &images[0]
	}
	return nil
}

func isAbsoluteHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// normalizeImageURL — пустое значение считается отсутствующим; снимается один ведущий "/".
func normalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "/")
	return strings.TrimSpace(raw)
}

// parsePrice — конечное неотрицательное число; иначе строка отбраковывается.
func parsePrice(raw string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || d.IsNegative() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// maxStock — верхняя граница остатка (products.stock_quantity INTEGER).
var maxStock = decimal.NewFromInt(math.MaxInt32)

// parseStock — некорректное значение даёт 0, отрицательное обрезается до 0,
// слишком большое — до maxStock.
func parseStock(raw string) int {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return 0
	}
	if d.GreaterThan(maxStock) {
		return math.MaxInt32
	}
	return int(d.IntPart())
}

// parseOptionalPositive — для old_price/weight: ошибка, ноль и отрицательное значение → nil.
func parseOptionalPositive(raw string) *decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !d.IsPositive() {
		return nil
	}
	return &d
}
