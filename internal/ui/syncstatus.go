package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/state"
)

// syncPage is the Sync Status screen: store cards, the conflict board and
// the activity log.
type syncPage struct {
	stores     []catalog.Store
	activities []catalog.SyncActivity
	board      *inventory.ConflictBoard
	conflicts  []catalog.Conflict
	selected   int
	report     int
}

// resolveDoneMsg fires ResolveDelay after a resolution starts.
type resolveDoneMsg struct {
	conflictID string
	token      uint64
}

func newSyncPage(snap state.Snapshot) *syncPage {
	board := inventory.NewConflictBoard(snap.Conflicts)
	return &syncPage{
		stores:     snap.Stores,
		activities: snap.Activities,
		board:      board,
		conflicts:  board.Conflicts(),
	}
}

func (p *syncPage) selectedConflict() (catalog.Conflict, bool) {
	if len(p.conflicts) == 0 {
		return catalog.Conflict{}, false
	}
	return p.conflicts[p.selected], true
}

func (p *syncPage) moveConflict(delta int) {
	p.selected = clamp(p.selected+delta, len(p.conflicts))
	p.report = 0
}

func (p *syncPage) moveReport(delta int) {
	c, ok := p.selectedConflict()
	if !ok {
		return
	}
	p.report = clamp(p.report+delta, len(c.Reports))
}

// handleSyncKey processes keyboard input for the Sync Status page.
func (m Model) handleSyncKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.sync
	if p == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		p.moveConflict(1)
	case key.Matches(msg, m.keys.Up):
		p.moveConflict(-1)
	case key.Matches(msg, m.keys.NextReport):
		p.moveReport(1)
	case key.Matches(msg, m.keys.PrevReport):
		p.moveReport(-1)
	case key.Matches(msg, m.keys.Confirm):
		return m, m.beginResolution()
	}
	return m, nil
}

// beginResolution starts resolving the selected conflict with the
// highlighted report and schedules its completion on the page scope.
func (m Model) beginResolution() tea.Cmd {
	p := m.sync
	c, ok := p.selectedConflict()
	if !ok || len(c.Reports) == 0 {
		return nil
	}
	choice := c.Reports[clamp(p.report, len(c.Reports))]
	res, ok := p.board.Begin(c.ID, choice)
	if !ok {
		return nil
	}
	m.log.Info().
		Str("conflict", c.ID).
		Str("store", choice.StoreID).
		Int("quantity", choice.Quantity).
		Msg("conflict resolution started")
	return m.scope.After(inventory.ResolveDelay, resolveDoneMsg{conflictID: c.ID, token: res.Token})
}

func (m *Model) completeResolution(msg resolveDoneMsg) {
	if m.sync == nil {
		return
	}
	if !m.sync.board.Complete(msg.conflictID, msg.token) {
		return
	}
	m.log.Info().
		Str("conflict", msg.conflictID).
		Int("pending", m.sync.board.PendingCount()).
		Msg("conflict resolved")
}

func (m Model) renderSync(width, height int) string {
	p := m.sync
	if p == nil {
		return ""
	}
	storesHeight := 4
	activityHeight := min(len(p.activities)+2, max(height/4, 4))
	conflictHeight := max(height-storesHeight-activityHeight, 5)

	return strings.Join([]string{
		m.renderStoreCards(p.stores, width, storesHeight),
		m.renderTitledBox(m.conflictTitle(), m.renderConflicts(), width, conflictHeight, true),
		m.renderTitledBox("Sync Activity Log", m.renderActivities(p.activities, width-2), width, activityHeight, false),
	}, "\n")
}

func (m Model) conflictTitle() string {
	pending := m.sync.board.PendingCount()
	return fmt.Sprintf("Stock Conflicts · %d %s", pending, plural(pending, "needs attention", "need attention"))
}

// renderStoreCards lays out one small card per store, side by side.
func (m Model) renderStoreCards(stores []catalog.Store, width, height int) string {
	if len(stores) == 0 {
		return m.renderTitledBox("Stores", "No stores configured", width, height, false)
	}
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	cardWidth := width / len(stores)

	var cards []string
	for i, s := range stores {
		w := cardWidth
		if i == len(stores)-1 {
			w = width - cardWidth*(len(stores)-1)
		}
		channel := styles.Text.Foreground(lipgloss.Color(m.theme.ChannelColor(string(s.Channel)))).Bold(true)
		body := bg.Render(s.Channel.Label(), channel) + bg.Space() +
			styles.Badge(string(s.Status)).Render(s.Status.Label()) + "\n" +
			bg.Render("Last sync: "+s.LastSync, styles.MutedText)
		cards = append(cards, m.renderTitledBox(truncate(s.Name, w-6), body, w, height, false))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) renderConflicts() string {
	p := m.sync
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)

	if len(p.conflicts) == 0 {
		return bg.Render("No stock conflicts", styles.MutedText)
	}

	var lines []string
	for i, c := range p.conflicts {
		state := p.board.State(c.ID)
		cursor := "  "
		if i == p.selected {
			cursor = "› "
		}
		head := bg.Render(cursor, styles.AccentText) +
			bg.Render(c.ProductName, styles.Text.Bold(true)) + bg.Space() +
			bg.Render(c.SKU, styles.MutedText) + bg.Space() +
			styles.Badge(state.String()).Render(titleWord(state.String()))
		lines = append(lines, head)

		switch state {
		case inventory.ResolutionResolved:
			chosen, _ := p.board.Chosen(c.ID)
			lines = append(lines, bg.Render(fmt.Sprintf("    Using %s (%d)", chosen.Choice.StoreName, chosen.Choice.Quantity), styles.SuccessText))
		case inventory.ResolutionResolving:
			lines = append(lines, bg.Render("    Resolving...", styles.InfoText))
		default:
			lines = append(lines, bg.Render("    "+reportSummary(c.Reports)+" · detected "+c.DetectedAt, styles.WarningText))
			var buttons []string
			for j, r := range c.Reports {
				label := fmt.Sprintf("[ Use %s (%d) ]", r.StoreName, r.Quantity)
				if i == p.selected && j == p.report {
					buttons = append(buttons, styles.Selected.Render(label))
				} else {
					buttons = append(buttons, bg.Render(label, styles.MutedText))
				}
			}
			lines = append(lines, bg.Spaces(4)+bg.Join(buttons, " "))
		}
		lines = append(lines, "")
	}

	if p.board.AllResolved() {
		lines = append(lines, bg.Render("All conflicts resolved!", styles.SuccessText))
	}
	return strings.Join(lines, "\n")
}

func reportSummary(reports []catalog.StockReport) string {
	parts := make([]string, len(reports))
	for i, r := range reports {
		parts[i] = fmt.Sprintf("%s: %d", r.StoreName, r.Quantity)
	}
	return strings.Join(parts, " vs ")
}

func (m Model) renderActivities(activities []catalog.SyncActivity, width int) string {
	styles := m.theme.Styles().WithBackground(m.theme.SurfaceAlt)
	bg := NewBgStyle(m.theme.SurfaceAlt)
	if len(activities) == 0 {
		return bg.Render("No recent activity", styles.MutedText)
	}
	var lines []string
	for _, a := range activities {
		dot := bg.Render("●", styles.StateText(string(a.Status)))
		store := bg.Render(padRight(truncate(a.StoreName, 20), 20), styles.Text)
		action := bg.Render(truncate(a.Action, max(width-40, 10)), styles.MutedText)
		when := bg.Render(a.Timestamp, styles.FaintText)
		lines = append(lines, dot+bg.Space()+store+bg.Space()+action+bg.Spaces(2)+when)
	}
	return strings.Join(lines, "\n")
}

func titleWord(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (m Model) syncHints() []string {
	return []string{"j/k conflict", "←/→ store", "enter use quantity"}
}
