package catalog

import "strings"

// Channel identifies the sales platform behind a store.
type Channel string

const (
	ChannelShopify     Channel = "shopify"
	ChannelEtsy        Channel = "etsy"
	ChannelAmazon      Channel = "amazon"
	ChannelWooCommerce Channel = "woocommerce"
)

// Valid reports whether c is one of the known channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelShopify, ChannelEtsy, ChannelAmazon, ChannelWooCommerce:
		return true
	}
	return false
}

// Label returns the short display name for the channel.
func (c Channel) Label() string {
	switch c {
	case ChannelShopify:
		return "Shopify"
	case ChannelEtsy:
		return "Etsy"
	case ChannelAmazon:
		return "Amazon"
	case ChannelWooCommerce:
		return "WooCommerce"
	}
	return strings.TrimSpace(string(c))
}

// StoreStatus is the sync status shown for a store.
type StoreStatus string

const (
	StatusSynced       StoreStatus = "synced"
	StatusSyncing      StoreStatus = "syncing"
	StatusError        StoreStatus = "error"
	StatusDisconnected StoreStatus = "disconnected"
)

// Valid reports whether s is one of the known statuses.
func (s StoreStatus) Valid() bool {
	switch s {
	case StatusSynced, StatusSyncing, StatusError, StatusDisconnected:
		return true
	}
	return false
}

// Label returns the badge text for the status.
func (s StoreStatus) Label() string {
	switch s {
	case StatusSynced:
		return "Synced"
	case StatusSyncing:
		return "Syncing..."
	case StatusError:
		return "Error"
	case StatusDisconnected:
		return "Disconnected"
	}
	return string(s)
}

// Store is a connected sales channel. Connected and Status are independent
// fields in the seed data; nothing keeps them consistent.
type Store struct {
	ID        string      `toml:"id" json:"id"`
	Name      string      `toml:"name" json:"name"`
	Channel   Channel     `toml:"type" json:"type"`
	Connected bool        `toml:"connected" json:"connected"`
	LastSync  string      `toml:"last_sync" json:"lastSync"`
	Status    StoreStatus `toml:"status" json:"status"`
}

// StockLevel is the quantity a single store reports for a product.
type StockLevel struct {
	StoreID  string `toml:"store_id" json:"storeId"`
	Quantity int    `toml:"quantity" json:"quantity"`
}

// BundleComponent is one line of a bundle's bill of materials, per bundle unit.
type BundleComponent struct {
	ProductID   string `toml:"product_id" json:"productId"`
	ProductName string `toml:"product_name" json:"productName"`
	Quantity    int    `toml:"quantity" json:"quantity"`
}

// Product is a sellable item. TotalStock is stored as-is and is not derived
// from StockLevels.
type Product struct {
	ID               string            `toml:"id" json:"id"`
	Name             string            `toml:"name" json:"name"`
	SKU              string            `toml:"sku" json:"sku"`
	Image            string            `toml:"image" json:"image"`
	TotalStock       int               `toml:"total_stock" json:"totalStock"`
	StockLevels      []StockLevel      `toml:"stock_levels" json:"stockLevels"`
	IsBundle         bool              `toml:"is_bundle" json:"isBundle"`
	BundleComponents []BundleComponent `toml:"bundle_components,omitempty" json:"bundleComponents,omitempty"`
	Category         string            `toml:"category" json:"category"`
}

// ActivityStatus classifies a sync activity entry.
type ActivityStatus string

const (
	ActivitySuccess ActivityStatus = "success"
	ActivityWarning ActivityStatus = "warning"
	ActivityError   ActivityStatus = "error"
)

// SyncActivity is one line of the sync activity log.
type SyncActivity struct {
	ID        string         `toml:"id" json:"id"`
	StoreID   string         `toml:"store_id" json:"storeId"`
	StoreName string         `toml:"store_name" json:"storeName"`
	Action    string         `toml:"action" json:"action"`
	Timestamp string         `toml:"timestamp" json:"timestamp"`
	Status    ActivityStatus `toml:"status" json:"status"`
}

// StockReport is the quantity one channel claims for a conflicting product.
type StockReport struct {
	StoreID   string `toml:"store_id" json:"storeId"`
	StoreName string `toml:"store_name" json:"storeName"`
	Quantity  int    `toml:"quantity" json:"quantity"`
}

// Conflict records channels disagreeing about a product's stock.
type Conflict struct {
	ID          string        `toml:"id" json:"id"`
	ProductID   string        `toml:"product_id" json:"productId"`
	ProductName string        `toml:"product_name" json:"productName"`
	SKU         string        `toml:"sku" json:"sku"`
	Reports     []StockReport `toml:"stores" json:"stores"`
	DetectedAt  string        `toml:"detected_at" json:"detectedAt"`
}

// SyncFrequency is how often channels would be synchronized.
type SyncFrequency string

const (
	Every5Min  SyncFrequency = "5min"
	Every15Min SyncFrequency = "15min"
	Every30Min SyncFrequency = "30min"
	EveryHour  SyncFrequency = "1hr"
)

var syncFrequencies = []SyncFrequency{Every5Min, Every15Min, Every30Min, EveryHour}

// SyncFrequencies returns the selectable frequencies in display order.
func SyncFrequencies() []SyncFrequency {
	out := make([]SyncFrequency, len(syncFrequencies))
	copy(out, syncFrequencies)
	return out
}

// Valid reports whether f is a selectable frequency.
func (f SyncFrequency) Valid() bool {
	for _, known := range syncFrequencies {
		if f == known {
			return true
		}
	}
	return false
}

// Next returns the following frequency, wrapping around. Unknown values
// restart at the first option.
func (f SyncFrequency) Next() SyncFrequency {
	for i, known := range syncFrequencies {
		if f == known {
			return syncFrequencies[(i+1)%len(syncFrequencies)]
		}
	}
	return syncFrequencies[0]
}

// Settings holds the editable sync preferences.
type Settings struct {
	SyncFrequency        SyncFrequency `toml:"sync_frequency" json:"syncFrequency"`
	BufferStock          int           `toml:"buffer_stock" json:"bufferStock"`
	LowStockWarning      int           `toml:"low_stock_warning" json:"lowStockWarning"`
	CriticalStockWarning int           `toml:"critical_stock_warning" json:"criticalStockWarning"`
}

// Fixture is the complete seed data set.
type Fixture struct {
	Stores     []Store        `toml:"stores" json:"stores"`
	Products   []Product      `toml:"products" json:"products"`
	Activities []SyncActivity `toml:"activities" json:"activities"`
	Conflicts  []Conflict     `toml:"conflicts" json:"conflicts"`
	Settings   Settings       `toml:"settings" json:"settings"`
}

// Clone returns a deep copy of the fixture.
func (f Fixture) Clone() Fixture {
	return Fixture{
		Stores:     CloneStores(f.Stores),
		Products:   CloneProducts(f.Products),
		Activities: cloneSlice(f.Activities),
		Conflicts:  CloneConflicts(f.Conflicts),
		Settings:   f.Settings,
	}
}

// StoreByID looks up a store by id.
func (f Fixture) StoreByID(id string) (Store, bool) {
	for _, s := range f.Stores {
		if s.ID == id {
			return s, true
		}
	}
	return Store{}, false
}

// CloneStores copies a store slice.
func CloneStores(stores []Store) []Store {
	return cloneSlice(stores)
}

// CloneProducts deep-copies products including their nested slices.
func CloneProducts(products []Product) []Product {
	if products == nil {
		return nil
	}
	out := make([]Product, len(products))
	for i, p := range products {
		p.StockLevels = cloneSlice(p.StockLevels)
		p.BundleComponents = cloneSlice(p.BundleComponents)
		out[i] = p
	}
	return out
}

// CloneConflicts deep-copies conflicts including their reports.
func CloneConflicts(conflicts []Conflict) []Conflict {
	if conflicts == nil {
		return nil
	}
	out := make([]Conflict, len(conflicts))
	for i, c := range conflicts {
		c.Reports = cloneSlice(c.Reports)
		out[i] = c
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
