package inventory

import "github.com/five82/stockdeck/internal/catalog"

// Connections is a page-local copy of the stores whose connection can be
// toggled. Nothing is written back to the fixture, and other pages keep
// their own copies.
type Connections struct {
	stores []catalog.Store
}

// NewConnections copies stores into a new toggle state.
func NewConnections(stores []catalog.Store) *Connections {
	return &Connections{stores: catalog.CloneStores(stores)}
}

// Toggle flips the store's connected flag and forces its status to match:
// synced when connecting, disconnected when disconnecting. Unknown ids are
// ignored and report false.
func (c *Connections) Toggle(storeID string) (catalog.Store, bool) {
	for i := range c.stores {
		s := &c.stores[i]
		if s.ID != storeID {
			continue
		}
		if s.Connected {
			s.Connected = false
			s.Status = catalog.StatusDisconnected
		} else {
			s.Connected = true
			s.Status = catalog.StatusSynced
		}
		return *s, true
	}
	return catalog.Store{}, false
}

// Stores returns a copy of the current store states.
func (c *Connections) Stores() []catalog.Store {
	return catalog.CloneStores(c.stores)
}

// Store looks up one store by id.
func (c *Connections) Store(storeID string) (catalog.Store, bool) {
	for _, s := range c.stores {
		if s.ID == storeID {
			return s, true
		}
	}
	return catalog.Store{}, false
}

// Connected counts stores whose connected flag is set.
func (c *Connections) Connected() int {
	n := 0
	for _, s := range c.stores {
		if s.Connected {
			n++
		}
	}
	return n
}
