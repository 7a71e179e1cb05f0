package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/stockdeck/internal/logtail"
)

const (
	logOverlayLines  = 400
	logRefreshPeriod = time.Second
)

// logOverlay shows the tail of stockdeck's own log file.
type logOverlay struct {
	open    bool
	entries []logtail.Entry
	offset  int // lines scrolled up from the newest entry
	err     error
	gen     uint64 // bumped on open; ticks from earlier openings are dropped
}

type logsLoadedMsg struct {
	entries []logtail.Entry
	err     error
}

type logTickMsg struct {
	gen uint64
}

func loadLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logsLoadedMsg{}
		}
		lines, err := logtail.Read(path, logOverlayLines)
		if err != nil {
			return logsLoadedMsg{err: err}
		}
		return logsLoadedMsg{entries: logtail.ParseLines(lines)}
	}
}

func logTickCmd(gen uint64) tea.Cmd {
	return tea.Tick(logRefreshPeriod, func(time.Time) tea.Msg {
		return logTickMsg{gen: gen}
	})
}

func (o *logOverlay) apply(msg logsLoadedMsg) {
	if msg.err != nil {
		o.err = msg.err
		return
	}
	o.err = nil
	o.entries = msg.entries
	o.offset = clamp(o.offset, len(o.entries))
}

func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Logs), key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Quit):
		m.logs.open = false
	case key.Matches(msg, m.keys.Up):
		m.logs.offset = clamp(m.logs.offset+1, len(m.logs.entries))
	case key.Matches(msg, m.keys.Down):
		m.logs.offset = clamp(m.logs.offset-1, len(m.logs.entries))
	case key.Matches(msg, m.keys.Top):
		m.logs.offset = clamp(len(m.logs.entries)-1, len(m.logs.entries))
	case key.Matches(msg, m.keys.Bottom):
		m.logs.offset = 0
	}
	return m, nil
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	height := max(m.height, 4)
	visible := height - 2

	var lines []string
	switch {
	case m.logs.err != nil:
		lines = append(lines, bg.Render("Cannot read log: "+m.logs.err.Error(), styles.DangerText))
	case len(m.logs.entries) == 0:
		lines = append(lines, bg.Render("No log entries yet", styles.MutedText))
	default:
		end := len(m.logs.entries) - m.logs.offset
		start := max(end-visible, 0)
		for _, e := range m.logs.entries[start:end] {
			lines = append(lines, m.formatLogEntry(e, styles, bg))
		}
	}

	title := "Log · " + truncate(m.logPath, max(m.width-20, 10))
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, height, true)
}

func (m Model) formatLogEntry(e logtail.Entry, styles Styles, bg BgStyle) string {
	if e.Raw {
		return bg.Render(e.Message, styles.MutedText)
	}
	parts := make([]string, 0, 5)
	if !e.Time.IsZero() {
		parts = append(parts, bg.Render(e.Time.Local().Format("15:04:05"), styles.FaintText))
	}
	parts = append(parts, bg.Render(padRight(strings.ToUpper(e.Level), 5), levelStyle(e.Level, styles)))
	if e.Component != "" {
		parts = append(parts, bg.Render("["+e.Component+"]", styles.AccentText))
	}
	parts = append(parts, bg.Render(e.Message, styles.Text))
	if fields := e.FieldString(); fields != "" {
		parts = append(parts, bg.Render(fields, styles.MutedText))
	}
	return strings.Join(parts, bg.Space())
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		return styles.DangerText
	case "warn":
		return styles.WarningText
	case "debug", "trace":
		return styles.InfoText
	default:
		return styles.SuccessText
	}
}
