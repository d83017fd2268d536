package validate

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// Text — поле, которое в файле может быть строкой, числом или null.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*t = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	default:
		*t = Text(strings.TrimSpace(string(b)))
		return nil
	}
}

// ProductRow — строка товара в выгрузке (формат хранилища, snake_case).
type ProductRow struct {
	ID            Text           `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description"`
	Price         Text           `json:"price"`
	OldPrice      Text           `json:"old_price"`
	StockQuantity Text           `json:"stock_quantity"`
	Weight        Text           `json:"weight"`
	Unit          string         `json:"unit"`
	IsFeatured    bool           `json:"is_featured"`
	SortOrder     int            `json:"sort_order"`
	Category      *CategoryRow   `json:"categories"`
	Images        []ProductImage `json:"product_images"`
}

type CategoryRow struct {
	ID   Text   `json:"id"`
	Name string `json:"name"`
}

type ProductImage struct {
	ImageURL      string `json:"image_url"`
	AltText       string `json:"alt_text"`
	IsPrimary     bool   `json:"is_primary"`
	StorageBucket string `json:"storage_bucket"`
	StoragePath   string `json:"storage_path"`
	PublicURL     string `json:"public_url"`
}

// Raw — в доменную строку хранилища.
func (r *ProductRow) Raw() domain.RawProduct {
	out := domain.RawProduct{
		ID:            string(r.ID),
		Name:          r.Name,
		Description:   r.Description,
		Price:         string(r.Price),
		OldPrice:      string(r.OldPrice),
		StockQuantity: string(r.StockQuantity),
		Weight:        string(r.Weight),
		Unit:          r.Unit,
		IsFeatured:    r.IsFeatured,
		SortOrder:     r.SortOrder,
	}
	if r.Category != nil {
		out.Category = &domain.RawCategory{ID: string(r.Category.ID), Name: r.Category.Name}
	}
	for _, img := range r.Images {
		out.Images = append(out.Images, domain.RawImage(img))
	}
	return out
}
