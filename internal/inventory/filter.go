package inventory

import (
	"strings"

	"github.com/five82/stockdeck/internal/catalog"
)

// FilterMode restricts the product list beyond the text query.
type FilterMode int

const (
	FilterAll FilterMode = iota
	FilterLow
	FilterBundles
)

// String returns the stable identifier used in preferences.
func (m FilterMode) String() string {
	switch m {
	case FilterLow:
		return "low"
	case FilterBundles:
		return "bundles"
	default:
		return "all"
	}
}

// Label returns the filter bar caption.
func (m FilterMode) Label() string {
	switch m {
	case FilterLow:
		return "Low Stock"
	case FilterBundles:
		return "Bundles"
	default:
		return "All"
	}
}

// Next cycles all -> low -> bundles -> all.
func (m FilterMode) Next() FilterMode {
	switch m {
	case FilterAll:
		return FilterLow
	case FilterLow:
		return FilterBundles
	default:
		return FilterAll
	}
}

// ParseFilterMode maps an identifier back to a mode; unknown values are FilterAll.
func ParseFilterMode(value string) FilterMode {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return FilterLow
	case "bundles":
		return FilterBundles
	default:
		return FilterAll
	}
}

// ProductFilter combines a free-text query with a mode.
type ProductFilter struct {
	Query string
	Mode  FilterMode
}

// Matches reports whether p passes both the query and the mode.
func (f ProductFilter) Matches(p catalog.Product) bool {
	if !matchesQuery(p, f.Query) {
		return false
	}
	switch f.Mode {
	case FilterLow:
		return IsLowStock(p)
	case FilterBundles:
		return p.IsBundle
	}
	return true
}

// Apply returns the matching products in their original order. The input
// slice is not modified.
func (f ProductFilter) Apply(products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// ModeCounts returns how many products each mode would show for the current
// query.
func (f ProductFilter) ModeCounts(products []catalog.Product) map[FilterMode]int {
	counts := map[FilterMode]int{FilterAll: 0, FilterLow: 0, FilterBundles: 0}
	for _, mode := range []FilterMode{FilterAll, FilterLow, FilterBundles} {
		probe := ProductFilter{Query: f.Query, Mode: mode}
		for _, p := range products {
			if probe.Matches(p) {
				counts[mode]++
			}
		}
	}
	return counts
}

func matchesQuery(p catalog.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.SKU), q)
}

// StockFor returns the quantity a store holds for the product, 0 when the
// store has no stock level entry.
func StockFor(p catalog.Product, storeID string) int {
	for _, level := range p.StockLevels {
		if level.StoreID == storeID {
			return level.Quantity
		}
	}
	return 0
}
