// internal/domain/product/filters.go
package product

import (
	"sort"
	"strings"
)

type SortField string

const (
	SortByName      SortField = "name"
	SortByPrice     SortField = "price"
	SortByCreatedAt SortField = "createdAt"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filters is a pure query object. Applying it never mutates the catalog;
// a nil field skips its predicate entirely.
type Filters struct {
	Category  *Category  `json:"category,omitempty"`
	MinPrice  *float64   `json:"minPrice,omitempty"`
	MaxPrice  *float64   `json:"maxPrice,omitempty"`
	Search    string     `json:"search,omitempty"`
	SortBy    *SortField `json:"sortBy,omitempty"`
	SortOrder *SortOrder `json:"sortOrder,omitempty"`
}

// Apply returns the filtered, sorted view of products.
// Predicates run in order: category, minPrice, maxPrice, search
// (case-insensitive substring on name OR description). Sorting only happens
// when SortBy is set; ascending is the default, descending is the reversed
// comparator, and the sort is stable.
func (f Filters) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Category != nil && p.Category != *f.Category {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if s := strings.TrimSpace(f.Search); s != "" {
			term := strings.ToLower(s)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) {
				continue
			}
		}
		out = append(out, p)
	}

	if f.SortBy == nil {
		return out
	}

	less := comparator(*f.SortBy)
	if f.SortOrder != nil && *f.SortOrder == SortDesc {
		asc := less
		less = func(a, b Product) bool { return asc(b, a) }
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// comparator returns the ascending less-func for a sort field.
// Name comparison is case-insensitive.
func comparator(field SortField) func(a, b Product) bool {
	switch field {
	case SortByPrice:
		return func(a, b Product) bool { return a.Price < b.Price }
	case SortByCreatedAt:
		return func(a, b Product) bool { return a.CreatedAt.Before(b.CreatedAt) }
	default: // SortByName
		return func(a, b Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
