package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/five82/stockdeck/internal/catalog"
)

func TestComputeStatsDefaultFixture(t *testing.T) {
	f := catalog.Default()

	stats := ComputeStats(f.Products, f.Stores)

	assert.Equal(t, Stats{
		TotalProducts:   18,
		TotalStock:      1058,
		LowStock:        5,
		ConnectedStores: 3,
		TotalStores:     4,
	}, stats)
}

func TestComputeStatsEmpty(t *testing.T) {
	assert.Equal(t, Stats{}, ComputeStats(nil, nil))
}

func TestComputeStatsThresholdIsInclusive(t *testing.T) {
	products := []catalog.Product{
		{ID: "a", TotalStock: 15},
		{ID: "b", TotalStock: 16},
		{ID: "c", TotalStock: 0},
	}

	stats := ComputeStats(products, nil)

	assert.Equal(t, 2, stats.LowStock)
	assert.Equal(t, 31, stats.TotalStock)
}

func TestComputeStatsIgnoresSettingsThreshold(t *testing.T) {
	f := catalog.Default()
	f.Settings.LowStockWarning = 100

	assert.Equal(t, 5, ComputeStats(f.Products, f.Stores).LowStock)
}
