package catalog

// Store ids used by the default fixture. Stock levels in the seed are listed
// in this order.
const (
	shopifyStoreID = "shopify-1"
	etsyStoreID    = "etsy-1"
	amazonStoreID  = "amazon-1"
	wooStoreID     = "woo-1"
)

// DefaultSettings are the settings a fresh Settings page starts from.
func DefaultSettings() Settings {
	return Settings{
		SyncFrequency:        Every15Min,
		BufferStock:          2,
		LowStockWarning:      15,
		CriticalStockWarning: 5,
	}
}

// Default returns the built-in demo data set. Every call returns fresh slices.
func Default() Fixture {
	return Fixture{
		Stores:     defaultStores(),
		Products:   defaultProducts(),
		Activities: defaultActivities(),
		Conflicts:  defaultConflicts(),
		Settings:   DefaultSettings(),
	}
}

func defaultStores() []Store {
	return []Store{
		{ID: shopifyStoreID, Name: "Main Shopify Store", Channel: ChannelShopify, Connected: true, LastSync: "2 min ago", Status: StatusSynced},
		{ID: etsyStoreID, Name: "Etsy Marketplace", Channel: ChannelEtsy, Connected: true, LastSync: "5 min ago", Status: StatusSynced},
		{ID: amazonStoreID, Name: "Amazon FBA", Channel: ChannelAmazon, Connected: true, LastSync: "1 min ago", Status: StatusSyncing},
		{ID: wooStoreID, Name: "WooCommerce Site", Channel: ChannelWooCommerce, Connected: false, LastSync: "2 hours ago", Status: StatusDisconnected},
	}
}

func levels(shopify, etsy, amazon, woo int) []StockLevel {
	return []StockLevel{
		{StoreID: shopifyStoreID, Quantity: shopify},
		{StoreID: etsyStoreID, Quantity: etsy},
		{StoreID: amazonStoreID, Quantity: amazon},
		{StoreID: wooStoreID, Quantity: woo},
	}
}

func unsplash(photo string) string {
	return "https://images.unsplash.com/" + photo + "?w=100&h=100&fit=crop"
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:          "p1",
			Name:        "Wireless Bluetooth Headphones",
			SKU:         "WBH-001",
			Image:       unsplash("photo-1505740420928-5e560c06d30e"),
			TotalStock:  145,
			StockLevels: levels(45, 30, 50, 20),
			Category:    "Electronics",
		},
		{
			ID:          "p2",
			Name:        "Organic Cotton T-Shirt",
			SKU:         "OCT-002",
			Image:       unsplash("photo-1521572163474-6864f9cf17ab"),
			TotalStock:  230,
			StockLevels: levels(80, 60, 50, 40),
			Category:    "Apparel",
		},
		{
			ID:          "p3",
			Name:        "Handmade Ceramic Mug",
			SKU:         "HCM-003",
			Image:       unsplash("photo-1514228742587-6b1558fcca3d"),
			TotalStock:  12,
			StockLevels: levels(4, 3, 3, 2),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p4",
			Name:        "Premium Yoga Mat",
			SKU:         "PYM-004",
			Image:       unsplash("photo-1601925260368-ae2f83cf8b7f"),
			TotalStock:  8,
			StockLevels: levels(2, 2, 3, 1),
			Category:    "Sports",
		},
		{
			ID:          "p5",
			Name:        "Stainless Steel Water Bottle",
			SKU:         "SSW-005",
			Image:       unsplash("photo-1602143407151-7111542de6e8"),
			TotalStock:  89,
			StockLevels: levels(25, 20, 30, 14),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p6",
			Name:        "Fitness Starter Bundle",
			SKU:         "FSB-006",
			Image:       unsplash("photo-1571019614242-c5c5dee9f50b"),
			TotalStock:  15,
			StockLevels: levels(5, 4, 4, 2),
			IsBundle:    true,
			BundleComponents: []BundleComponent{
				{ProductID: "p4", ProductName: "Premium Yoga Mat", Quantity: 1},
				{ProductID: "p5", ProductName: "Stainless Steel Water Bottle", Quantity: 1},
			},
			Category:    "Bundles",
		},
		{
			ID:          "p7",
			Name:        "Natural Soy Candle",
			SKU:         "NSC-007",
			Image:       unsplash("photo-1602607753858-f6a2c3c8a1a7"),
			TotalStock:  67,
			StockLevels: levels(20, 25, 15, 7),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p8",
			Name:        "Leather Wallet",
			SKU:         "LW-008",
			Image:       unsplash("photo-1627123424574-724758594e93"),
			TotalStock:  42,
			StockLevels: levels(12, 10, 15, 5),
			Category:    "Accessories",
		},
		{
			ID:          "p9",
			Name:        "Bamboo Cutting Board Set",
			SKU:         "BCB-009",
			Image:       unsplash("photo-1594226801341-41427b4e5c22"),
			TotalStock:  28,
			StockLevels: levels(8, 7, 8, 5),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p10",
			Name:        "Wireless Charging Pad",
			SKU:         "WCP-010",
			Image:       unsplash("photo-1586816879360-004f5b0c51e3"),
			TotalStock:  3,
			StockLevels: levels(1, 0, 2, 0),
			Category:    "Electronics",
		},
		{
			ID:          "p11",
			Name:        "Aromatherapy Diffuser",
			SKU:         "AD-011",
			Image:       unsplash("photo-1608571423902-eed4a5ad8108"),
			TotalStock:  54,
			StockLevels: levels(15, 18, 12, 9),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p12",
			Name:        "Home Spa Gift Set",
			SKU:         "HSG-012",
			Image:       unsplash("photo-1570194065650-d99fb4b38b17"),
			TotalStock:  22,
			StockLevels: levels(6, 8, 5, 3),
			IsBundle:    true,
			BundleComponents: []BundleComponent{
				{ProductID: "p7", ProductName: "Natural Soy Candle", Quantity: 2},
				{ProductID: "p11", ProductName: "Aromatherapy Diffuser", Quantity: 1},
			},
			Category:    "Bundles",
		},
		{
			ID:          "p13",
			Name:        "Minimalist Watch",
			SKU:         "MW-013",
			Image:       unsplash("photo-1524592094714-0f0654e20314"),
			TotalStock:  35,
			StockLevels: levels(10, 8, 12, 5),
			Category:    "Accessories",
		},
		{
			ID:          "p14",
			Name:        "Portable Bluetooth Speaker",
			SKU:         "PBS-014",
			Image:       unsplash("photo-1608043152269-423dbba4e7e1"),
			TotalStock:  11,
			StockLevels: levels(3, 2, 4, 2),
			Category:    "Electronics",
		},
		{
			ID:          "p15",
			Name:        "Reusable Shopping Bags (Set of 5)",
			SKU:         "RSB-015",
			Image:       unsplash("photo-1591373032196-a9e8d05c5162"),
			TotalStock:  156,
			StockLevels: levels(45, 40, 50, 21),
			Category:    "Home & Kitchen",
		},
		{
			ID:          "p16",
			Name:        "Tech Essentials Bundle",
			SKU:         "TEB-016",
			Image:       unsplash("photo-1519389950473-47ba0277781c"),
			TotalStock:  18,
			StockLevels: levels(5, 4, 6, 3),
			IsBundle:    true,
			BundleComponents: []BundleComponent{
				{ProductID: "p1", ProductName: "Wireless Bluetooth Headphones", Quantity: 1},
				{ProductID: "p10", ProductName: "Wireless Charging Pad", Quantity: 1},
				{ProductID: "p14", ProductName: "Portable Bluetooth Speaker", Quantity: 1},
			},
			Category:    "Bundles",
		},
		{
			ID:          "p17",
			Name:        "Organic Face Serum",
			SKU:         "OFS-017",
			Image:       unsplash("photo-1620916566398-39f1143ab7be"),
			TotalStock:  78,
			StockLevels: levels(22, 25, 18, 13),
			Category:    "Beauty",
		},
		{
			ID:          "p18",
			Name:        "Cotton Throw Blanket",
			SKU:         "CTB-018",
			Image:       unsplash("photo-1555041469-a586c61ea9bc"),
			TotalStock:  45,
			StockLevels: levels(12, 15, 10, 8),
			Category:    "Home & Kitchen",
		},
	}
}

func defaultActivities() []SyncActivity {
	return []SyncActivity{
		{ID: "a1", StoreID: amazonStoreID, StoreName: "Amazon FBA", Action: "Inventory sync in progress...", Timestamp: "1 min ago", Status: ActivityWarning},
		{ID: "a2", StoreID: shopifyStoreID, StoreName: "Main Shopify Store", Action: "Updated 12 product quantities", Timestamp: "2 min ago", Status: ActivitySuccess},
		{ID: "a3", StoreID: etsyStoreID, StoreName: "Etsy Marketplace", Action: "Sync completed successfully", Timestamp: "5 min ago", Status: ActivitySuccess},
		{ID: "a4", StoreID: wooStoreID, StoreName: "WooCommerce Site", Action: "Connection failed - API key expired", Timestamp: "2 hours ago", Status: ActivityError},
		{ID: "a5", StoreID: shopifyStoreID, StoreName: "Main Shopify Store", Action: "Order #1234 reduced stock for SKU WBH-001", Timestamp: "15 min ago", Status: ActivitySuccess},
	}
}

func defaultConflicts() []Conflict {
	return []Conflict{
		{
			ID:          "c1",
			ProductID:   "p3",
			ProductName: "Handmade Ceramic Mug",
			SKU:         "HCM-003",
			Reports: []StockReport{
				{StoreID: etsyStoreID, StoreName: "Etsy", Quantity: 5},
				{StoreID: shopifyStoreID, StoreName: "Shopify", Quantity: 3},
			},
			DetectedAt: "10 min ago",
		},
		{
			ID:          "c2",
			ProductID:   "p10",
			ProductName: "Wireless Charging Pad",
			SKU:         "WCP-010",
			Reports: []StockReport{
				{StoreID: amazonStoreID, StoreName: "Amazon", Quantity: 4},
				{StoreID: shopifyStoreID, StoreName: "Shopify", Quantity: 1},
			},
			DetectedAt: "25 min ago",
		},
	}
}
