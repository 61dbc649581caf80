package service

import (
	"strings"

	"github.com/khangviet/storefront/internal/domain"
)

// AllCategories matches every product.
const AllCategories = "all"

type CatalogFilter struct {
	CategoryID   string `query:"category_id"`
	CategoryName string `query:"-"`
	Search       string `query:"q"`
}

func (f CatalogFilter) allCategories() bool {
	return (f.CategoryID == "" || f.CategoryID == AllCategories) && f.CategoryName == ""
}

// FilterProducts keeps products in the active category whose name contains the search
// text as typed, ignoring case only. Products without a category id fall back to a name match.
func FilterProducts(products []domain.Product, f CatalogFilter) []domain.Product {
	search := strings.ToLower(f.Search)

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !f.allCategories() && !inCategory(p, f) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func inCategory(p domain.Product, f CatalogFilter) bool {
	if f.CategoryID != "" && f.CategoryID != AllCategories && p.CategoryID == f.CategoryID {
		return true
	}
	return f.CategoryName != "" && p.Category == f.CategoryName
}
