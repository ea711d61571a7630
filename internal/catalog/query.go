// Package catalog implements the product query pipeline used by the category,
// new-arrivals and search views: a deterministic filter/sort over the catalog,
// followed by pagination slicing.
package catalog

import (
	"sort"
	"strings"

	"attire/internal/models"
)

// Sort keys accepted by Apply.
const (
	SortFeatured  = "featured"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortNewest    = "newest"
)

// CategoryNew is the sentinel category selecting new arrivals instead of a
// gender bucket.
const CategoryNew = "new"

// DefaultPageSize is the grid page size used by the category views.
const DefaultPageSize = 12

// Query describes one catalog view: which products to keep, how to order them
// and which page window to slice. Empty selection slices mean "no filtering at
// that stage", never "match nothing". When Term is set the pipeline runs in
// free-text search mode and Category is ignored.
type Query struct {
	Category string
	Term     string
	Types    []string
	Colors   []string
	Sizes    []string
	PriceMin float64
	// PriceMax of 0 or below means no upper bound.
	PriceMax float64
	SortKey  string
	Page     int
	PageSize int
}

// Apply runs the filter and sort stages over the catalog and returns the full
// ordered result, not yet paginated. Filters are conjunctive across stages and
// disjunctive within a stage's selection set.
func Apply(products []models.Product, q Query) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchesScope(&p, q) {
			continue
		}
		if !matchesType(&p, q.Types) {
			continue
		}
		if len(q.Colors) > 0 && !intersects(p.Colors, q.Colors) {
			continue
		}
		if len(q.Sizes) > 0 && !intersects(p.Sizes, q.Sizes) {
			continue
		}
		if !matchesPrice(&p, q.PriceMin, q.PriceMax) {
			continue
		}
		result = append(result, p)
	}
	sortProducts(result, q.SortKey)
	return result
}

// matchesScope applies stage one: free-text search when a term is given,
// otherwise category selection with the "new" sentinel.
func matchesScope(p *models.Product, q Query) bool {
	if q.Term != "" {
		term := strings.ToLower(q.Term)
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term)
	}
	switch q.Category {
	case "":
		return true
	case CategoryNew:
		return p.IsNew
	default:
		return p.Category == q.Category
	}
}

// matchesType keeps products whose name contains any selected type as a
// case-insensitive substring. This is a name heuristic, not a structured type
// field, kept to match the storefront's filter behavior.
func matchesType(p *models.Product, types []string) bool {
	if len(types) == 0 {
		return true
	}
	name := strings.ToLower(p.Name)
	for _, t := range types {
		if strings.Contains(name, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

func matchesPrice(p *models.Product, min, max float64) bool {
	if p.Price < min {
		return false
	}
	if max > 0 && p.Price > max {
		return false
	}
	return true
}

// intersects reports whether the two string sets share any member.
func intersects(have, want []string) bool {
	for _, h := range have {
		for _, w := range want {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortProducts orders the result in place. All sorts are stable so that equal
// elements keep their catalog order; "featured" is the catalog order itself and
// leaves the slice untouched.
func sortProducts(products []models.Product, key string) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsNew && !products[j].IsNew
		})
	}
}

// Paginate returns the 1-based page window [(page-1)*size, page*size) of the
// result, clamped to its bounds. A page past the end yields an empty slice; the
// UI disables its pagination controls at the boundary rather than erroring.
func Paginate(products []models.Product, page, pageSize int) []models.Product {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	// page is client-supplied and may be huge; the multiplication can wrap
	// negative, so treat any page past the last one as empty before slicing.
	if page-1 > (len(products)-1)/pageSize {
		return []models.Product{}
	}
	start := (page - 1) * pageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// TotalPages is ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if count <= 0 {
		return 0
	}
	// Avoid wrapping count+pageSize-1 when pageSize is client-supplied garbage.
	pages := count / pageSize
	if count%pageSize != 0 {
		pages++
	}
	return pages
}
