package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockdeck/internal/catalog"
	"github.com/five82/stockdeck/internal/inventory"
	"github.com/five82/stockdeck/internal/state"
)

// settingsPage is the Settings screen. Rows are the stores, then the sync
// frequency, then the numeric fields.
type settingsPage struct {
	connections *inventory.Connections
	form        *inventory.SettingsForm
	cursor      int

	editing   bool
	editField inventory.Field
	editPrev  int
	input     textinput.Model
}

// saveAckMsg fires SaveAckInterval after a save.
type saveAckMsg struct {
	token uint64
}

type settingsRow int

const (
	rowStore settingsRow = iota
	rowFrequency
	rowField
)

func newSettingsPage(snap state.Snapshot) *settingsPage {
	input := textinput.New()
	input.CharLimit = 9
	input.Prompt = ""

	return &settingsPage{
		connections: inventory.NewConnections(snap.Stores),
		form:        inventory.NewSettingsForm(snap.Settings),
		input:       input,
	}
}

func (p *settingsPage) rowCount() int {
	return len(p.connections.Stores()) + 1 + len(inventory.NumericFields)
}

// row classifies the cursor position and returns the index within its group.
func (p *settingsPage) row(cursor int) (settingsRow, int) {
	stores := len(p.connections.Stores())
	switch {
	case cursor < stores:
		return rowStore, cursor
	case cursor == stores:
		return rowFrequency, 0
	default:
		return rowField, cursor - stores - 1
	}
}

// handleSettingsKey processes keyboard input for the Settings page.
func (m Model) handleSettingsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.settings
	if p == nil {
		return m, nil
	}
	if p.editing {
		return m.handleSettingsInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Down):
		p.cursor = clamp(p.cursor+1, p.rowCount())
	case key.Matches(msg, m.keys.Up):
		p.cursor = clamp(p.cursor-1, p.rowCount())
	case key.Matches(msg, m.keys.Top):
		p.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		p.cursor = p.rowCount() - 1
	case key.Matches(msg, m.keys.Save):
		return m, m.saveSettings()
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Confirm):
		return m, m.activateSettingsRow()
	}
	return m, nil
}

func (m Model) activateSettingsRow() tea.Cmd {
	p := m.settings
	kind, idx := p.row(p.cursor)
	switch kind {
	case rowStore:
		id := p.connections.Stores()[idx].ID
		if store, ok := p.connections.Toggle(id); ok {
			m.log.Info().
				Str("store", store.ID).
				Bool("connected", store.Connected).
				Str("status", string(store.Status)).
				Msg("store connection toggled")
		}
	case rowFrequency:
		freq := p.form.CycleSyncFrequency()
		m.log.Debug().Str("sync_frequency", string(freq)).Msg("sync frequency changed")
	case rowField:
		field := inventory.NumericFields[idx]
		p.editing = true
		p.editField = field
		p.editPrev = p.form.Value(field)
		p.input.SetValue(strconv.Itoa(p.editPrev))
		p.input.CursorEnd()
		return p.input.Focus()
	}
	return nil
}

// handleSettingsInput applies every keystroke to the form, the way a bound
// number input does. Escape restores the value from before editing.
func (m Model) handleSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.settings
	switch {
	case key.Matches(msg, m.keys.Confirm):
		p.editing = false
		p.input.Blur()
		m.log.Debug().
			Str("field", p.editField.Label()).
			Int("value", p.form.Value(p.editField)).
			Msg("setting edited")
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		p.form.Edit(p.editField, strconv.Itoa(p.editPrev))
		p.editing = false
		p.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	p.form.Edit(p.editField, p.input.Value())
	return m, cmd
}

func (m Model) saveSettings() tea.Cmd {
	p := m.settings
	token := p.form.Save()
	v := p.form.Values()
	m.log.Info().
		Str("sync_frequency", string(v.SyncFrequency)).
		Int("buffer_stock", v.BufferStock).
		Int("low_stock_warning", v.LowStockWarning).
		Int("critical_stock_warning", v.CriticalStockWarning).
		Msg("settings saved")
	return m.scope.After(inventory.SaveAckInterval, saveAckMsg{token: token})
}

func (m *Model) clearSaveAck(msg saveAckMsg) {
	if m.settings == nil {
		return
	}
	m.settings.form.ClearAck(msg.token)
}

func (m Model) renderSettings(width, height int) string {
	p := m.settings
	if p == nil {
		return ""
	}
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	values := p.form.Values()

	cursorAt := func(i int) string {
		if i == p.cursor {
			return bg.Render("› ", styles.AccentText)
		}
		return bg.Spaces(2)
	}
	label := func(s string) string {
		return bg.Render(padRight(s, 26), styles.Text)
	}

	var lines []string
	lines = append(lines, bg.Render("Connected Stores", styles.AccentText.Bold(true)))
	for i, s := range p.connections.Stores() {
		toggle := bg.Render("[ off ]", styles.MutedText)
		if s.Connected {
			toggle = bg.Render("[ on  ]", styles.SuccessText)
		}
		channel := styles.Text.Foreground(lipgloss.Color(m.theme.ChannelColor(string(s.Channel))))
		lines = append(lines, cursorAt(i)+
			bg.Render(padRight(truncate(s.Name, 24), 26), channel)+
			toggle+bg.Space()+
			styles.Badge(string(s.Status)).Render(s.Status.Label()))
	}
	lines = append(lines, "")

	stores := len(p.connections.Stores())
	lines = append(lines, bg.Render("Sync Frequency", styles.AccentText.Bold(true)))
	var freqs []string
	for _, f := range catalog.SyncFrequencies() {
		text := " " + frequencyLabel(f) + " "
		if f == values.SyncFrequency {
			freqs = append(freqs, styles.Selected.Render(text))
		} else {
			freqs = append(freqs, bg.Render(text, styles.MutedText))
		}
	}
	lines = append(lines, cursorAt(stores)+bg.Join(freqs, " "))
	lines = append(lines, "")

	lines = append(lines, bg.Render("Buffer Stock & Alerts", styles.AccentText.Bold(true)))
	for i, field := range inventory.NumericFields {
		var value string
		if p.editing && p.editField == field {
			value = p.input.View()
		} else {
			value = bg.Render(strconv.Itoa(p.form.Value(field)), styles.Text.Bold(true))
		}
		lines = append(lines, cursorAt(stores+1+i)+label(field.Label())+value+bg.Space()+bg.Render(fieldUnit(field), styles.FaintText))
	}
	lines = append(lines, "")

	if p.form.Saved() {
		lines = append(lines, bg.Render("✓ Saved", styles.SuccessText))
	} else {
		lines = append(lines, bg.Render("Press s to save", styles.FaintText))
	}

	return m.renderTitledBox("Settings", strings.Join(lines, "\n"), width, height, true)
}

func frequencyLabel(f catalog.SyncFrequency) string {
	switch f {
	case catalog.Every5Min:
		return "5 minutes"
	case catalog.Every15Min:
		return "15 minutes"
	case catalog.Every30Min:
		return "30 minutes"
	case catalog.EveryHour:
		return "1 hour"
	}
	return string(f)
}

func fieldUnit(f inventory.Field) string {
	if f == inventory.FieldBufferStock {
		return "units held back per channel"
	}
	return "units, alert at or below"
}

func (m Model) settingsHints() []string {
	if m.settings != nil && m.settings.editing {
		return []string{"type a number", "enter done", "esc revert"}
	}
	return []string{"j/k move", "space toggle", "enter edit/cycle", "s save"}
}
