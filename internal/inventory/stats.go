package inventory

import "github.com/five82/stockdeck/internal/catalog"

// LowStockThreshold is the fixed stock level at or below which a product
// counts as low stock for statistics and filtering.
const LowStockThreshold = 15

// Stats are the dashboard aggregates.
type Stats struct {
	TotalProducts   int
	TotalStock      int
	LowStock        int
	ConnectedStores int
	TotalStores     int
}

// ComputeStats derives the aggregates from the given collections.
func ComputeStats(products []catalog.Product, stores []catalog.Store) Stats {
	stats := Stats{
		TotalProducts: len(products),
		TotalStores:   len(stores),
	}
	for _, p := range products {
		stats.TotalStock += p.TotalStock
		if IsLowStock(p) {
			stats.LowStock++
		}
	}
	for _, s := range stores {
		if s.Connected {
			stats.ConnectedStores++
		}
	}
	return stats
}

// IsLowStock reports whether the product is at or below LowStockThreshold.
func IsLowStock(p catalog.Product) bool {
	return p.TotalStock <= LowStockThreshold
}
