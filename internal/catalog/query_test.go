package catalog_test

import (
	"math"
	"testing"

	"attire/internal/catalog"
	"attire/internal/models"

	"github.com/stretchr/testify/assert"
)

func sampleCatalog() []models.Product {
	return []models.Product{
		{ID: "1", Name: "Essential Cotton Tee", Description: "Organic cotton t-shirt", Price: 45, Category: "unisex", Sizes: []string{"XS", "S", "M", "L", "XL"}, Colors: []string{"White", "Black", "Navy"}, IsNew: true, IsFeatured: true},
		{ID: "2", Name: "Tailored Wool Blazer", Description: "Elegant wool blazer", Price: 285, Category: "women", Sizes: []string{"XS", "S", "M", "L"}, Colors: []string{"Charcoal", "Camel", "Navy"}, IsFeatured: true},
		{ID: "3", Name: "Slim Fit Chinos", Description: "Stretch cotton twill", Price: 98, Category: "men", Sizes: []string{"30", "32", "34"}, Colors: []string{"Khaki", "Navy", "Black"}, IsNew: true},
		{ID: "4", Name: "Cashmere Sweater", Description: "Soft cashmere crewneck", Price: 195, Category: "women", Sizes: []string{"XS", "S", "M"}, Colors: []string{"Ivory", "Blush"}},
		{ID: "5", Name: "Oxford Shirts Classic", Description: "Timeless oxford shirt", Price: 78, Category: "men", Sizes: []string{"M", "L", "XL"}, Colors: []string{"White", "Blue"}},
	}
}

func ids(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestApply_CategorySelection(t *testing.T) {
	products := sampleCatalog()

	result := catalog.Apply(products, catalog.Query{Category: "unisex"})
	assert.Equal(t, []string{"1"}, ids(result))

	result = catalog.Apply(products, catalog.Query{Category: "women"})
	assert.Equal(t, []string{"2", "4"}, ids(result))

	// The "new" sentinel selects new arrivals across categories.
	result = catalog.Apply(products, catalog.Query{Category: catalog.CategoryNew})
	assert.Equal(t, []string{"1", "3"}, ids(result))

	// No category means the full catalog passes through.
	result = catalog.Apply(products, catalog.Query{})
	assert.Len(t, result, 5)
}

func TestApply_SearchTerm(t *testing.T) {
	products := sampleCatalog()

	// Matches name, description and category, case-insensitively.
	assert.Equal(t, []string{"2"}, ids(catalog.Apply(products, catalog.Query{Term: "blazer"})))
	assert.Equal(t, []string{"4"}, ids(catalog.Apply(products, catalog.Query{Term: "CREWNECK"})))
	assert.Equal(t, []string{"2", "4"}, ids(catalog.Apply(products, catalog.Query{Term: "women"})))
	assert.Empty(t, catalog.Apply(products, catalog.Query{Term: "parka"}))
}

func TestApply_TypeFilterIsNameSubstring(t *testing.T) {
	products := sampleCatalog()

	// The type filter is a substring match over the product name, so an
	// oxford named plainly "Oxford Button-Down" would not match "Shirts";
	// product 5's name contains it deliberately.
	result := catalog.Apply(products, catalog.Query{Types: []string{"Shirts"}})
	assert.Equal(t, []string{"5"}, ids(result))

	// Disjunctive within the selection set.
	result = catalog.Apply(products, catalog.Query{Types: []string{"Blazer", "Chinos"}})
	assert.Equal(t, []string{"2", "3"}, ids(result))
}

func TestApply_ColorAndSizeFilters(t *testing.T) {
	products := sampleCatalog()

	result := catalog.Apply(products, catalog.Query{Colors: []string{"Navy"}})
	assert.Equal(t, []string{"1", "2", "3"}, ids(result))

	result = catalog.Apply(products, catalog.Query{Sizes: []string{"XL"}})
	assert.Equal(t, []string{"1", "5"}, ids(result))

	// Stages are conjunctive: Navy AND size 30.
	result = catalog.Apply(products, catalog.Query{Colors: []string{"Navy"}, Sizes: []string{"30"}})
	assert.Equal(t, []string{"3"}, ids(result))
}

func TestApply_PriceRange(t *testing.T) {
	products := sampleCatalog()

	result := catalog.Apply(products, catalog.Query{PriceMin: 100, PriceMax: 200})
	assert.Equal(t, []string{"4"}, ids(result))

	// PriceMax of zero means no upper bound.
	result = catalog.Apply(products, catalog.Query{PriceMin: 100})
	assert.Equal(t, []string{"2", "4"}, ids(result))
}

func TestApply_EmptyFilterSetsPassThrough(t *testing.T) {
	products := sampleCatalog()

	// An empty selection set must behave exactly as if the stage were
	// omitted, never as "match nothing".
	unfiltered := catalog.Apply(products, catalog.Query{Category: "men"})
	filtered := catalog.Apply(products, catalog.Query{
		Category: "men",
		Types:    []string{},
		Colors:   []string{},
		Sizes:    []string{},
	})
	assert.Equal(t, unfiltered, filtered)
}

func TestApply_SortKeys(t *testing.T) {
	products := sampleCatalog()

	result := catalog.Apply(products, catalog.Query{SortKey: catalog.SortPriceLow})
	assert.Equal(t, []string{"1", "5", "3", "4", "2"}, ids(result))

	result = catalog.Apply(products, catalog.Query{SortKey: catalog.SortPriceHigh})
	assert.Equal(t, []string{"2", "4", "3", "5", "1"}, ids(result))

	// Newest floats IsNew products to the front but keeps catalog order
	// within each group.
	result = catalog.Apply(products, catalog.Query{SortKey: catalog.SortNewest})
	assert.Equal(t, []string{"1", "3", "2", "4", "5"}, ids(result))
}

func TestApply_FeaturedSortPreservesCatalogOrder(t *testing.T) {
	products := sampleCatalog()

	result := catalog.Apply(products, catalog.Query{SortKey: catalog.SortFeatured})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(result))

	// An unknown sort key behaves like featured rather than panicking.
	result = catalog.Apply(products, catalog.Query{SortKey: "bogus"})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(result))
}

func TestApply_SortStability(t *testing.T) {
	// Equal prices must keep their relative catalog order.
	products := []models.Product{
		{ID: "a", Price: 50},
		{ID: "b", Price: 50},
		{ID: "c", Price: 25},
		{ID: "d", Price: 50},
	}
	result := catalog.Apply(products, catalog.Query{SortKey: catalog.SortPriceLow})
	assert.Equal(t, []string{"c", "a", "b", "d"}, ids(result))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := sampleCatalog()
	catalog.Apply(products, catalog.Query{SortKey: catalog.SortPriceHigh})
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids(products))
}

func TestPaginate(t *testing.T) {
	products := make([]models.Product, 7)
	for i := range products {
		products[i].ID = string(rune('a' + i))
	}

	assert.Equal(t, []string{"a", "b", "c"}, ids(catalog.Paginate(products, 1, 3)))
	assert.Equal(t, []string{"d", "e", "f"}, ids(catalog.Paginate(products, 2, 3)))
	assert.Equal(t, []string{"g"}, ids(catalog.Paginate(products, 3, 3)))

	// A page past the end is empty, not an error.
	assert.Empty(t, catalog.Paginate(products, 4, 3))

	// Page below 1 is clamped to the first page.
	assert.Equal(t, []string{"a", "b", "c"}, ids(catalog.Paginate(products, 0, 3)))
}

func TestPaginate_CoversResultExactlyOnce(t *testing.T) {
	// Concatenating all pages in order must reproduce the list exactly once,
	// for every page size.
	for _, count := range []int{0, 1, 5, 12, 25} {
		products := make([]models.Product, count)
		for i := range products {
			products[i].ID = string(rune('A' + i))
		}
		for pageSize := 1; pageSize <= count+1; pageSize++ {
			totalPages := catalog.TotalPages(count, pageSize)
			assert.Equal(t, (count+pageSize-1)/pageSize, totalPages)

			var joined []models.Product
			for page := 1; page <= totalPages; page++ {
				joined = append(joined, catalog.Paginate(products, page, pageSize)...)
			}
			assert.Equal(t, ids(products), ids(joined),
				"count=%d pageSize=%d", count, pageSize)
		}
	}
}

func TestPaginate_ExtremePageNumbers(t *testing.T) {
	products := make([]models.Product, 5)
	for i := range products {
		products[i].ID = string(rune('a' + i))
	}

	// Page numbers come straight off the query string, so arithmetic on them
	// must not wrap into a negative slice offset.
	assert.Empty(t, catalog.Paginate(products, math.MaxInt, 12))
	assert.Empty(t, catalog.Paginate(products, math.MaxInt, 1))
	assert.Empty(t, catalog.Paginate(products, math.MaxInt/2, 3))
	assert.Equal(t, []string{"a", "b", "c", "d", "e"},
		ids(catalog.Paginate(products, math.MinInt, 12)))
	assert.Empty(t, catalog.Paginate(nil, math.MaxInt, 12))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, catalog.TotalPages(0, 12))
	assert.Equal(t, 1, catalog.TotalPages(12, 12))
	assert.Equal(t, 2, catalog.TotalPages(13, 12))
	assert.Equal(t, 5, catalog.TotalPages(25, 6))

	// An absurd page size must not wrap the ceiling division negative.
	assert.Equal(t, 1, catalog.TotalPages(25, math.MaxInt))
	assert.Equal(t, 0, catalog.TotalPages(0, math.MaxInt))
}
