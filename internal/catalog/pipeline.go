package catalog

import (
	"sort"
	"strings"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryAll is the sentinel category label matching every product.
const CategoryAll = "All"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortName      SortKey = "name"
)

// Query holds the listing controls for one view session. Price bounds carry
// the raw user input; anything that does not parse as a number applies no
// constraint rather than failing.
type Query struct {
	Search   string
	Category string
	MinPrice string
	MaxPrice string
	Sort     SortKey
}

// FilterAndSort derives a listing from products: search, category and price
// filters first, then a stable sort by q.Sort. The input slice is never
// modified, ties keep catalog order, and the result is never larger than
// the input.
func FilterAndSort(products []domain.Product, q Query) []domain.Product {
	term := strings.ToLower(q.Search)
	minPrice, hasMin := parseBound(q.MinPrice)
	maxPrice, hasMax := parseBound(q.MaxPrice)

	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && p.Category != q.Category {
			continue
		}
		if hasMin && p.Price.LessThan(minPrice) {
			continue
		}
		if hasMax && p.Price.GreaterThan(maxPrice) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch q.Sort {
	case SortPriceLow:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.LessThan(filtered[j].Price)
		})
	case SortPriceHigh:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price.GreaterThan(filtered[j].Price)
		})
	case SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case SortName:
		coll := collate.New(language.English)
		sort.SliceStable(filtered, func(i, j int) bool {
			return coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	return filtered
}

// parseBound interprets a raw price bound. Malformed input means no bound.
func parseBound(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
