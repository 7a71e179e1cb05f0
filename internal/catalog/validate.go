package catalog

import "fmt"

// IssueKind names the invariant an Issue violates.
type IssueKind string

const (
	IssueStockMismatch    IssueKind = "stock_mismatch"
	IssueUnknownStore     IssueKind = "unknown_store"
	IssueUnknownComponent IssueKind = "unknown_component"
	IssueDuplicateSKU     IssueKind = "duplicate_sku"
	IssueInvalidValue     IssueKind = "invalid_value"
)

// Issue describes one inconsistency found in a fixture. Issues are reported,
// never corrected: the data is displayed as given.
type Issue struct {
	Kind    IssueKind
	Subject string // id of the offending entity
	Detail  string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.Subject, i.Detail)
}

// Validate checks the intended-but-unenforced invariants of the data set.
func Validate(f Fixture) []Issue {
	var issues []Issue

	storeIDs := make(map[string]bool, len(f.Stores))
	for _, s := range f.Stores {
		storeIDs[s.ID] = true
		if !s.Channel.Valid() {
			issues = append(issues, Issue{IssueInvalidValue, s.ID, fmt.Sprintf("unknown channel %q", s.Channel)})
		}
		if !s.Status.Valid() {
			issues = append(issues, Issue{IssueInvalidValue, s.ID, fmt.Sprintf("unknown status %q", s.Status)})
		}
	}

	productIDs := make(map[string]bool, len(f.Products))
	for _, p := range f.Products {
		productIDs[p.ID] = true
	}

	skus := make(map[string]string, len(f.Products))
	for _, p := range f.Products {
		if owner, dup := skus[p.SKU]; dup {
			issues = append(issues, Issue{IssueDuplicateSKU, p.ID, fmt.Sprintf("sku %s already used by %s", p.SKU, owner)})
		} else {
			skus[p.SKU] = p.ID
		}

		if p.TotalStock < 0 {
			issues = append(issues, Issue{IssueInvalidValue, p.ID, fmt.Sprintf("negative total stock %d", p.TotalStock)})
		}

		sum := 0
		for _, level := range p.StockLevels {
			sum += level.Quantity
			if level.Quantity < 0 {
				issues = append(issues, Issue{IssueInvalidValue, p.ID, fmt.Sprintf("negative quantity %d at store %s", level.Quantity, level.StoreID)})
			}
			if !storeIDs[level.StoreID] {
				issues = append(issues, Issue{IssueUnknownStore, p.ID, fmt.Sprintf("stock level for store %s", level.StoreID)})
			}
		}
		if !p.IsBundle && sum != p.TotalStock {
			issues = append(issues, Issue{IssueStockMismatch, p.ID, fmt.Sprintf("total stock %d, store levels sum to %d", p.TotalStock, sum)})
		}

		for _, c := range p.BundleComponents {
			if !productIDs[c.ProductID] {
				issues = append(issues, Issue{IssueUnknownComponent, p.ID, fmt.Sprintf("component %s", c.ProductID)})
			}
			if c.Quantity < 0 {
				issues = append(issues, Issue{IssueInvalidValue, p.ID, fmt.Sprintf("negative quantity %d for component %s", c.Quantity, c.ProductID)})
			}
		}
	}

	for _, a := range f.Activities {
		if !storeIDs[a.StoreID] {
			issues = append(issues, Issue{IssueUnknownStore, a.ID, fmt.Sprintf("activity store %s", a.StoreID)})
		}
	}
	for _, c := range f.Conflicts {
		for _, r := range c.Reports {
			if !storeIDs[r.StoreID] {
				issues = append(issues, Issue{IssueUnknownStore, c.ID, fmt.Sprintf("report from store %s", r.StoreID)})
			}
			if r.Quantity < 0 {
				issues = append(issues, Issue{IssueInvalidValue, c.ID, fmt.Sprintf("negative quantity %d reported by %s", r.Quantity, r.StoreID)})
			}
		}
	}

	if !f.Settings.SyncFrequency.Valid() {
		issues = append(issues, Issue{IssueInvalidValue, "settings", fmt.Sprintf("unknown sync frequency %q", f.Settings.SyncFrequency)})
	}

	counts := []struct {
		name  string
		value int
	}{
		{"buffer_stock", f.Settings.BufferStock},
		{"low_stock_warning", f.Settings.LowStockWarning},
		{"critical_stock_warning", f.Settings.CriticalStockWarning},
	}
	for _, c := range counts {
		if c.value < 0 {
			issues = append(issues, Issue{IssueInvalidValue, "settings", fmt.Sprintf("negative %s %d", c.name, c.value)})
		}
	}

	return issues
}
