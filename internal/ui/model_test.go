package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/prefs"
	"github.com/five82/stockdeck/internal/state"
)

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Store == nil {
		opts.Store = state.New(catalog.Default(), "")
	}
	if opts.PrefsPath == "" {
		opts.PrefsPath = filepath.Join(t.TempDir(), "prefs.toml")
	}
	m := New(opts)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 160, Height: 48})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, runes(string(r)))
	}
	return m
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyBTab  = tea.KeyMsg{Type: tea.KeyShiftTab}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyBksp  = tea.KeyMsg{Type: tea.KeyBackspace}
)

// recordDelays makes scoped timers fire immediately and collects the
// durations they were scheduled with.
func recordDelays(t *testing.T) *[]time.Duration {
	t.Helper()
	var delays []time.Duration
	orig := wait
	wait = func(ctx context.Context, d time.Duration) bool {
		delays = append(delays, d)
		return ctx.Err() == nil
	}
	t.Cleanup(func() { wait = orig })
	return &delays
}

func plainView(m Model) string {
	return ansi.Strip(m.View())
}

func visibleIDs(m Model) []string {
	ids := make([]string, len(m.products.visible))
	for i, p := range m.products.visible {
		ids[i] = p.ID
	}
	return ids
}

func TestStartPageFromOptions(t *testing.T) {
	assert.Equal(t, PageDashboard, newTestModel(t, Options{}).page)
	assert.Equal(t, PageSync, newTestModel(t, Options{StartPage: "sync"}).page)
	assert.Equal(t, PageDashboard, newTestModel(t, Options{StartPage: "inventory"}).page)
}

func TestPageNavigation(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, keyTab)
	assert.Equal(t, PageProducts, m.page)
	require.NotNil(t, m.products)
	assert.Nil(t, m.dashboard)

	m = press(t, m, runes("4"))
	assert.Equal(t, PageSettings, m.page)
	require.NotNil(t, m.settings)
	assert.Nil(t, m.products)

	m = press(t, m, keyTab)
	assert.Equal(t, PageDashboard, m.page)

	m = press(t, m, keyBTab)
	assert.Equal(t, PageSettings, m.page)
}

func TestEnteringPageCancelsPreviousScope(t *testing.T) {
	m := newTestModel(t, Options{})
	old := m.scope

	m = press(t, m, runes("2"))

	assert.False(t, old.Alive())
	assert.True(t, m.scope.Alive())
	assert.NotEqual(t, old.ID(), m.scope.ID())
}

func TestParsePage(t *testing.T) {
	for _, p := range pageOrder {
		assert.Equal(t, p, ParsePage(p.String()))
	}
	assert.Equal(t, PageSettings, ParsePage(" Settings "))
	assert.Equal(t, PageDashboard, ParsePage(""))
}

func TestDashboardView(t *testing.T) {
	m := newTestModel(t, Options{})

	view := plainView(m)

	assert.Contains(t, view, "Total Products")
	assert.Contains(t, view, "1058")
	assert.Contains(t, view, "3/4")
	assert.Contains(t, view, "Recent Sync Activity")
}

func TestProductsFilterModes(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "products"})
	require.Len(t, visibleIDs(m), 18)

	m = press(t, m, runes("w"))
	assert.Equal(t, []string{"p3", "p4", "p6", "p10", "p14"}, visibleIDs(m))

	m = press(t, m, runes("f"))
	assert.Equal(t, inventory.FilterBundles, m.products.filter.Mode)
	assert.Equal(t, []string{"p6", "p12", "p16"}, visibleIDs(m))

	m = press(t, m, runes("a"))
	assert.Len(t, visibleIDs(m), 18)
	assert.Contains(t, plainView(m), "Low Stock (5)")
}

func TestProductsLiveSearch(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "products"})

	m = press(t, m, runes("/"))
	require.True(t, m.products.searching)

	m = typeText(t, m, "wire")
	assert.Equal(t, []string{"p1", "p10"}, visibleIDs(m))

	// Letters bound to global keys are search text while typing.
	m = typeText(t, m, "le")
	assert.True(t, m.products.searching)
	assert.Equal(t, "wirele", m.products.filter.Query)

	m = press(t, m, keyEnter)
	assert.False(t, m.products.searching)
	assert.Equal(t, []string{"p1", "p10"}, visibleIDs(m))

	m = press(t, m, keyEsc)
	assert.Empty(t, m.products.filter.Query)
	assert.Len(t, visibleIDs(m), 18)
}

func TestProductsSearchBySKUWithMode(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "products"})

	m = press(t, m, runes("w"), runes("/"))
	m = typeText(t, m, "hcm")

	assert.Equal(t, []string{"p3"}, visibleIDs(m))
}

func TestProductsExpandBundle(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "products"})

	m = press(t, m, runes("j"), keyEnter)
	assert.Zero(t, m.products.expanded.Len(), "non-bundle rows do not expand")

	m = press(t, m, runes("b"), runes("g"), keyEnter)
	assert.True(t, m.products.expanded.IsExpanded("p6"))
	assert.Contains(t, plainView(m), "1× Premium Yoga Mat")

	m = press(t, m, keySpace)
	assert.False(t, m.products.expanded.IsExpanded("p6"))
	assert.NotContains(t, plainView(m), "1× Premium Yoga Mat")
}

func TestProductsStateResetsOnReentry(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "products"})
	m = press(t, m, runes("b"), keyEnter)
	require.True(t, m.products.expanded.IsExpanded("p6"))

	m = press(t, m, runes("1"), runes("2"))

	assert.Equal(t, inventory.FilterAll, m.products.filter.Mode)
	assert.Zero(t, m.products.expanded.Len())
}

func TestSyncResolveConflict(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "sync"})
	require.Equal(t, 2, m.sync.board.PendingCount())

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, inventory.ResolutionResolving, m.sync.board.State("c1"))
	assert.Equal(t, 2, m.sync.board.PendingCount())
	assert.Contains(t, plainView(m), "Resolving...")

	res, ok := m.sync.board.Chosen("c1")
	require.True(t, ok)
	assert.Equal(t, "etsy-1", res.Choice.StoreID)
	assert.Equal(t, 5, res.Choice.Quantity)

	m, _ = update(t, m, scopedMsg{scope: m.scope.ID(), msg: resolveDoneMsg{conflictID: "c1", token: res.Token}})
	assert.Equal(t, inventory.ResolutionResolved, m.sync.board.State("c1"))
	assert.Equal(t, 1, m.sync.board.PendingCount())
	assert.Contains(t, plainView(m), "Using Etsy (5)")
}

func TestSyncChooseOtherReport(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "sync"})

	m = press(t, m, runes("j"), keyRight, keyEnter)

	res, ok := m.sync.board.Chosen("c2")
	require.True(t, ok)
	assert.Equal(t, "shopify-1", res.Choice.StoreID)
	assert.Equal(t, 1, res.Choice.Quantity)
	assert.Equal(t, inventory.ResolutionPending, m.sync.board.State("c1"))
}

func TestSyncAllResolved(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "sync"})

	m = press(t, m, keyEnter, runes("j"), keyEnter)
	for _, id := range []string{"c1", "c2"} {
		res, ok := m.sync.board.Chosen(id)
		require.True(t, ok)
		m, _ = update(t, m, scopedMsg{scope: m.scope.ID(), msg: resolveDoneMsg{conflictID: id, token: res.Token}})
	}

	assert.True(t, m.sync.board.AllResolved())
	assert.Contains(t, plainView(m), "All conflicts resolved!")
}

func TestSyncStaleCompletionIsDropped(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "sync"})
	m, _ = update(t, m, keyEnter)
	oldScope := m.scope.ID()
	res, _ := m.sync.board.Chosen("c1")

	m = press(t, m, runes("1"), runes("3"))
	m, _ = update(t, m, scopedMsg{scope: oldScope, msg: resolveDoneMsg{conflictID: "c1", token: res.Token}})

	assert.Equal(t, inventory.ResolutionPending, m.sync.board.State("c1"))
	assert.Equal(t, 2, m.sync.board.PendingCount())
}

func TestSettingsToggleStore(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m = press(t, m, keySpace)
	shopify, ok := m.settings.connections.Store("shopify-1")
	require.True(t, ok)
	assert.False(t, shopify.Connected)
	assert.Equal(t, catalog.StatusDisconnected, shopify.Status)

	m = press(t, m, runes("4"))
	shopify, _ = m.settings.connections.Store("shopify-1")
	assert.True(t, shopify.Connected, "re-entering the page starts from the fixture")
}

func TestSettingsCycleFrequency(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m = press(t, m, runes("j"), runes("j"), runes("j"), runes("j"), keyEnter)

	assert.Equal(t, catalog.Every30Min, m.settings.form.Values().SyncFrequency)
}

func TestSettingsEditNumericField(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m = press(t, m, runes("G"), keyEnter)
	require.True(t, m.settings.editing)
	assert.Equal(t, inventory.FieldCriticalStockWarning, m.settings.editField)

	m = press(t, m, keyBksp)
	m = typeText(t, m, "12")
	assert.Equal(t, 12, m.settings.form.Values().CriticalStockWarning)

	m = press(t, m, keyEnter)
	assert.False(t, m.settings.editing)
	assert.Equal(t, 12, m.settings.form.Values().CriticalStockWarning)
}

func TestSettingsEditUnparsableBecomesZero(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m = press(t, m, runes("g"))
	for i := 0; i < 5; i++ {
		m = press(t, m, runes("j"))
	}
	m = press(t, m, keyEnter, keyBksp)
	m = typeText(t, m, "abc")

	assert.Equal(t, 0, m.settings.form.Values().BufferStock)
}

func TestSettingsEditEscapeRestores(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m = press(t, m, runes("G"), keyEnter)
	m = typeText(t, m, "9")
	require.Equal(t, 59, m.settings.form.Values().CriticalStockWarning)

	m = press(t, m, keyEsc)
	assert.Equal(t, 5, m.settings.form.Values().CriticalStockWarning)
}

func TestSettingsSaveAcknowledgment(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "settings"})

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	assert.True(t, m.settings.form.Saved())
	assert.Contains(t, plainView(m), "✓ Saved")

	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, scopedMsg{scope: m.scope.ID(), msg: saveAckMsg{token: 1}})
	assert.True(t, m.settings.form.Saved(), "an earlier save does not clear a later one")

	m, _ = update(t, m, scopedMsg{scope: m.scope.ID(), msg: saveAckMsg{token: 2}})
	assert.False(t, m.settings.form.Saved())
	assert.NotContains(t, plainView(m), "✓ Saved")
}

func TestCycleThemePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	m := newTestModel(t, Options{PrefsPath: path, StartPage: "products"})
	require.Equal(t, "Nightfox", m.theme.Name)

	m = press(t, m, runes("T"))

	assert.Equal(t, "Kanagawa", m.theme.Name)
	assert.Equal(t, prefs.Prefs{Theme: "Kanagawa", StartPage: "products"}, prefs.Load(path))
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m = press(t, m, runes("?"))
	require.True(t, m.showHelp)
	assert.Contains(t, plainView(m), "Keyboard Shortcuts")

	m = press(t, m, runes("2"))
	assert.False(t, m.showHelp)
	assert.Equal(t, PageDashboard, m.page, "the closing key is not also handled")
}

func TestLogOverlay(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "stockdeck.log")
	content := `{"level":"info","component":"ui","page":"sync","time":"2026-10-18T09:15:00Z","message":"page entered"}` + "\n"
	require.NoError(t, os.WriteFile(logPath, []byte(content), 0o644))
	m := newTestModel(t, Options{LogPath: logPath})

	m, cmd := update(t, m, runes("L"))
	require.NotNil(t, cmd)
	require.True(t, m.logs.open)

	m, _ = update(t, m, loadLogsCmd(logPath)())
	view := plainView(m)
	assert.Contains(t, view, "page entered")
	assert.Contains(t, view, "[ui]")
	assert.Contains(t, view, "page=sync")

	m = press(t, m, keyEsc)
	assert.False(t, m.logs.open)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{StartPage: "sync"})
	scope := m.scope

	_, cmd := update(t, m, runes("e"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.False(t, scope.Alive())
}

func TestViewBeforeResize(t *testing.T) {
	m := New(Options{Store: state.New(catalog.Default(), "")})
	assert.Equal(t, "Loading...", m.View())
}

func TestSyncResolutionWaitsResolveDelay(t *testing.T) {
	delays := recordDelays(t)
	m := newTestModel(t, Options{StartPage: "sync"})

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, []time.Duration{inventory.ResolveDelay}, *delays)
	require.IsType(t, scopedMsg{}, msg)
	m, _ = update(t, m, msg)
	assert.Equal(t, inventory.ResolutionResolved, m.sync.board.State("c1"))
}

func TestSettingsSaveWaitsAckInterval(t *testing.T) {
	delays := recordDelays(t)
	m := newTestModel(t, Options{StartPage: "settings"})

	m, cmd := update(t, m, runes("s"))
	require.NotNil(t, cmd)
	msg := cmd()

	assert.Equal(t, []time.Duration{inventory.SaveAckInterval}, *delays)
	m, _ = update(t, m, msg)
	assert.False(t, m.settings.form.Saved())
}

func TestLeavingPageCancelsResolutionTimer(t *testing.T) {
	recordDelays(t)
	m := newTestModel(t, Options{StartPage: "sync"})

	m, cmd := update(t, m, keyEnter)
	require.NotNil(t, cmd)
	m = press(t, m, runes("1"))

	assert.Nil(t, cmd())
}

func TestLogOverlayReopenKeepsOneRefreshChain(t *testing.T) {
	m := newTestModel(t, Options{LogPath: filepath.Join(t.TempDir(), "stockdeck.log")})

	m = press(t, m, runes("L"), keyEsc, runes("L"), keyEsc, runes("L"))
	require.True(t, m.logs.open)

	for gen := uint64(1); gen < m.logs.gen; gen++ {
		_, cmd := update(t, m, logTickMsg{gen: gen})
		assert.Nil(t, cmd, "tick from overlay opening %d", gen)
	}
	_, cmd := update(t, m, logTickMsg{gen: m.logs.gen})
	assert.NotNil(t, cmd)

	m = press(t, m, keyEsc)
	_, cmd = update(t, m, logTickMsg{gen: m.logs.gen})
	assert.Nil(t, cmd, "closed overlay stops refreshing")
}
