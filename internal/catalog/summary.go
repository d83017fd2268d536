package catalog

import (
	"sort"
	"time"

	"github.com/Gunvolt24/seafood-shop/internal/domain"
)

// Summarize — собирает каталог: категории в порядке первого появления,
// счётчики и top-N категорий по числу товаров.
func Summarize(products []domain.Product, topN int, now time.Time) *domain.Catalog {
	out := &domain.Catalog{
		Products:    products,
		Categories:  []domain.Category{},
		Total:       len(products),
		GeneratedAt: now,
	}
	if out.Products == nil {
		out.Products = []domain.Product{}
	}

	index := make(map[string]int)
	for i := range products {
		p := &products[i]
		if p.IsInStock {
			out.InStock++
		}
		if p.IsFeatured {
			out.Featured++
		}
		pos, ok := index[p.CategoryID]
		if !ok {
			pos = len(out.Categories)
			index[p.CategoryID] = pos
			out.Categories = append(out.Categories, domain.Category{ID: p.CategoryID, Name: p.Category})
		}
		out.Categories[pos].Count++
	}

	out.TopCategories = TopCategories(out.Categories, topN)
	return out
}

// TopCategories — первые n категорий по убыванию числа товаров (при равенстве — исходный порядок).
func TopCategories(categories []domain.Category, n int) []domain.Category {
	top := append([]domain.Category(nil), categories...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Count > top[j].Count })
	if n >= 0 && len(top) > n {
		top = top[:n]
	}
	if top == nil {
		top = []domain.Category{}
	}
	return top
}
