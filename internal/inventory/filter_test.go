package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/stockdeck/internal/catalog"
)

func productIDs(products []catalog.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

func TestProductFilterApply(t *testing.T) {
	products := catalog.Default().Products

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{name: "empty query all", filter: ProductFilter{}, want: productIDs(products)},
		{name: "name match case insensitive", filter: ProductFilter{Query: "BLUETOOTH"}, want: []string{"p1", "p14"}},
		{name: "sku match", filter: ProductFilter{Query: "wbh"}, want: []string{"p1"}},
		{name: "low stock", filter: ProductFilter{Mode: FilterLow}, want: []string{"p3", "p4", "p6", "p10", "p14"}},
		{name: "bundles", filter: ProductFilter{Mode: FilterBundles}, want: []string{"p6", "p12", "p16"}},
		{name: "query and bundles", filter: ProductFilter{Query: "bundle", Mode: FilterBundles}, want: []string{"p6", "p16"}},
		{name: "no match", filter: ProductFilter{Query: "zzz"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productIDs(tt.filter.Apply(products)))
		})
	}
}

func TestProductFilterLowModeScenario(t *testing.T) {
	products := []catalog.Product{
		{ID: "p1", Name: "Wireless Bluetooth Headphones", TotalStock: 145},
		{ID: "p3", Name: "Handmade Ceramic Mug", TotalStock: 12},
	}

	got := ProductFilter{Mode: FilterLow}.Apply(products)

	require.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

func TestProductFilterDoesNotMutateInput(t *testing.T) {
	products := catalog.Default().Products
	before := catalog.CloneProducts(products)

	out := ProductFilter{Query: "mug", Mode: FilterLow}.Apply(products)
	require.Len(t, out, 1)
	out[0].Name = "changed"

	assert.Equal(t, before, products)
}

func TestProductFilterResultIsSubset(t *testing.T) {
	products := catalog.Default().Products
	for _, mode := range []FilterMode{FilterAll, FilterLow, FilterBundles} {
		f := ProductFilter{Query: "o", Mode: mode}
		for _, p := range f.Apply(products) {
			assert.True(t, f.Matches(p), "%s in mode %s", p.ID, mode)
			if mode == FilterLow {
				assert.LessOrEqual(t, p.TotalStock, LowStockThreshold)
			}
			if mode == FilterBundles {
				assert.True(t, p.IsBundle)
			}
		}
	}
}

func TestProductFilterModeCounts(t *testing.T) {
	products := catalog.Default().Products

	counts := ProductFilter{}.ModeCounts(products)
	assert.Equal(t, map[FilterMode]int{FilterAll: 18, FilterLow: 5, FilterBundles: 3}, counts)

	counts = ProductFilter{Query: "wireless"}.ModeCounts(products)
	assert.Equal(t, map[FilterMode]int{FilterAll: 2, FilterLow: 1, FilterBundles: 0}, counts)
}

func TestFilterModeCycle(t *testing.T) {
	assert.Equal(t, FilterLow, FilterAll.Next())
	assert.Equal(t, FilterBundles, FilterLow.Next())
	assert.Equal(t, FilterAll, FilterBundles.Next())

	for _, mode := range []FilterMode{FilterAll, FilterLow, FilterBundles} {
		assert.Equal(t, mode, ParseFilterMode(mode.String()))
	}
	assert.Equal(t, FilterAll, ParseFilterMode("nonsense"))
	assert.Equal(t, FilterLow, ParseFilterMode(" LOW "))
	assert.Equal(t, "Low Stock", FilterLow.Label())
}

func TestStockFor(t *testing.T) {
	p := catalog.Product{StockLevels: []catalog.StockLevel{{StoreID: "etsy-1", Quantity: 7}}}

	assert.Equal(t, 7, StockFor(p, "etsy-1"))
	assert.Equal(t, 0, StockFor(p, "amazon-1"))
}
