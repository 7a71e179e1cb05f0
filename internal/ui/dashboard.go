package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/state"
)

// dashboardPage is the overview screen. It only reads its snapshot.
type dashboardPage struct {
	stats      inventory.Stats
	stores     []catalog.Store
	activities []catalog.SyncActivity
}

func newDashboardPage(snap state.Snapshot) *dashboardPage {
	return &dashboardPage{
		stats:      inventory.ComputeStats(snap.Products, snap.Stores),
		stores:     snap.Stores,
		activities: snap.Activities,
	}
}

type statCard struct {
	title string
	value string
	note  string
	state string
}

func (d *dashboardPage) cards() []statCard {
	s := d.stats
	lowState := "healthy"
	if s.LowStock > 0 {
		lowState = "low"
	}
	return []statCard{
		{title: "Total Products", value: fmt.Sprintf("%d", s.TotalProducts), note: "across all channels", state: "syncing"},
		{title: "Total Stock", value: fmt.Sprintf("%d", s.TotalStock), note: "units on hand", state: "synced"},
		{title: "Low Stock", value: fmt.Sprintf("%d", s.LowStock), note: fmt.Sprintf("at or below %d units", inventory.LowStockThreshold), state: lowState},
		{title: "Connected Stores", value: fmt.Sprintf("%d/%d", s.ConnectedStores, s.TotalStores), note: "sales channels", state: "synced"},
	}
}

func (m Model) renderDashboard(width, height int) string {
	d := m.dashboard
	if d == nil {
		return ""
	}
	cardHeight := 5
	lower := max(height-cardHeight, 4)
	left := width / 2
	right := width - left

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderStatCards(d.cards(), width, cardHeight),
		lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderTitledBox("Connected Stores", m.renderStoreList(d.stores), left, lower, false),
			m.renderTitledBox("Recent Sync Activity", m.renderActivities(d.activities, right-2), right, lower, false),
		),
	)
}

func (m Model) renderStatCards(cards []statCard, width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	cardWidth := width / len(cards)

	boxes := make([]string, len(cards))
	for i, c := range cards {
		w := cardWidth
		if i == len(cards)-1 {
			w = width - cardWidth*(len(cards)-1)
		}
		body := bg.Render(c.value, styles.StateText(c.state).Bold(true)) + "\n" +
			bg.Render(truncate(c.note, w-4), styles.MutedText)
		boxes[i] = m.renderTitledBox(c.title, body, w, height, false)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) renderStoreList(stores []catalog.Store) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	if len(stores) == 0 {
		return bg.Render("No stores configured", styles.MutedText)
	}
	var lines []string
	for _, s := range stores {
		channel := styles.Text.Foreground(lipgloss.Color(m.theme.ChannelColor(string(s.Channel)))).Bold(true)
		line := bg.Render(padRight(truncate(s.Name, 22), 22), channel) + bg.Space() +
			styles.Badge(string(s.Status)).Render(s.Status.Label())
		lines = append(lines, line, bg.Render("  Last sync: "+s.LastSync, styles.FaintText))
	}
	return strings.Join(lines, "\n")
}
