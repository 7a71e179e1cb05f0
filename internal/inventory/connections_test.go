package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/stockdeck/internal/catalog"
)

func TestConnectionsToggle(t *testing.T) {
	c := NewConnections(catalog.Default().Stores)

	store, ok := c.Toggle("shopify-1")
	require.True(t, ok)
	assert.False(t, store.Connected)
	assert.Equal(t, catalog.StatusDisconnected, store.Status)

	store, ok = c.Toggle("woo-1")
	require.True(t, ok)
	assert.True(t, store.Connected)
	assert.Equal(t, catalog.StatusSynced, store.Status)

	assert.Equal(t, 3, c.Connected())
}

func TestConnectionsToggleOverridesSyncing(t *testing.T) {
	c := NewConnections(catalog.Default().Stores)

	store, ok := c.Toggle("amazon-1")
	require.True(t, ok)
	assert.Equal(t, catalog.StatusDisconnected, store.Status)

	store, _ = c.Toggle("amazon-1")
	assert.True(t, store.Connected)
	assert.Equal(t, catalog.StatusSynced, store.Status)
}

func TestConnectionsToggleTwiceRestoresConsistentStore(t *testing.T) {
	for _, id := range []string{"shopify-1", "etsy-1", "woo-1"} {
		t.Run(id, func(t *testing.T) {
			c := NewConnections(catalog.Default().Stores)
			before, ok := c.Store(id)
			require.True(t, ok)

			c.Toggle(id)
			after, _ := c.Toggle(id)

			assert.Equal(t, before, after)
		})
	}
}

func TestConnectionsUnknownStore(t *testing.T) {
	stores := catalog.Default().Stores
	c := NewConnections(stores)

	_, ok := c.Toggle("ebay-1")

	assert.False(t, ok)
	assert.Equal(t, stores, c.Stores())
}

func TestConnectionsDoNotShareState(t *testing.T) {
	stores := catalog.Default().Stores
	a := NewConnections(stores)
	b := NewConnections(stores)

	a.Toggle("etsy-1")

	got, _ := b.Store("etsy-1")
	assert.True(t, got.Connected)
	assert.True(t, stores[1].Connected)
}
