package service

import (
	"sort"
	"strings"

	"github.com/shopview/dashboard/internal/domain"
)

// CategoryAll is the synthetic category matching every product.
const CategoryAll = "all"

// CategoryUncategorized is the bucket for products without a category name.
const CategoryUncategorized = "Uncategorized"

// FilterState holds the catalog view's current search and category selection.
// It is never persisted; the filtered list is recomputed from it on every
// change.
type FilterState struct {
	SearchTerm       string
	SelectedCategory string
}

// NewFilterState returns the default filter: no search term, all categories.
func NewFilterState() FilterState {
	return FilterState{SelectedCategory: CategoryAll}
}

// productCategory returns the product's category, bucketing missing values.
func productCategory(p *domain.Product) string {
	if p.CategoryName == "" {
		return CategoryUncategorized
	}
	return p.CategoryName
}

// Categories extracts the unique category names across the product list,
// sorted, with the synthetic "all" entry first.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{})
	for i := range products {
		seen[productCategory(&products[i])] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return append([]string{CategoryAll}, names...)
}

// FilterProducts applies the category and search filters conjunctively and
// returns the matching products in their original order. An empty result is a
// valid state, not an error.
func FilterProducts(products []domain.Product, f FilterState) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))

	matched := make([]domain.Product, 0, len(products))
	for i := range products {
		p := &products[i]

		if f.SelectedCategory != "" && f.SelectedCategory != CategoryAll {
			if productCategory(p) != f.SelectedCategory {
				continue
			}
		}

		if term != "" && !matchesSearch(p, term) {
			continue
		}

		matched = append(matched, *p)
	}
	return matched
}

// matchesSearch reports whether the lowercased term is a substring of the
// product's name, description, or category name. Any one match suffices.
func matchesSearch(p *domain.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.CategoryName), term)
}

// GroupByCategory partitions products by category name, preserving the input
// order within each group.
func GroupByCategory(products []domain.Product) map[string][]domain.Product {
	groups := make(map[string][]domain.Product)
	for i := range products {
		name := productCategory(&products[i])
		groups[name] = append(groups[name], products[i])
	}
	return groups
}
