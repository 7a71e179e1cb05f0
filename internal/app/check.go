package app

import (
	"fmt"
	"io"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/logging"
)

// Check loads the fixture without starting the UI, prints its derived
// statistics and every validation issue to w, and reports whether the
// fixture is free of issues.
func Check(opts Options, w io.Writer) (bool, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return false, err
	}

	store, err := loadStore(cfg, logging.Nop())
	if err != nil {
		return false, err
	}
	snap := store.Snapshot()

	stats := inventory.ComputeStats(snap.Products, snap.Stores)
	fmt.Fprintf(w, "source:           %s\n", snap.SourceLabel())
	fmt.Fprintf(w, "products:         %d\n", stats.TotalProducts)
	fmt.Fprintf(w, "total stock:      %d\n", stats.TotalStock)
	fmt.Fprintf(w, "low stock:        %d\n", stats.LowStock)
	fmt.Fprintf(w, "connected stores: %d/%d\n", stats.ConnectedStores, stats.TotalStores)
	fmt.Fprintf(w, "open conflicts:   %d\n", inventory.NewConflictBoard(snap.Conflicts).PendingCount())

	issues := catalog.Validate(snap.Fixture)
	if len(issues) == 0 {
		fmt.Fprintln(w, "issues:           none")
		return true, nil
	}
	fmt.Fprintf(w, "issues:           %d\n", len(issues))
	for _, issue := range issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
	return false, nil
}
