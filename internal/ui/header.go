package ui

import (
	"strconv"
	"strings"
)

// renderMain stacks the header, the page navigation, the page and the
// key hint footer.
func (m Model) renderMain() string {
	contentHeight := max(m.height-3, 6)
	var content string
	switch m.page {
	case PageDashboard:
		content = m.renderDashboard(m.width, contentHeight)
	case PageProducts:
		content = m.renderProducts(m.width, contentHeight)
	case PageSync:
		content = m.renderSync(m.width, contentHeight)
	case PageSettings:
		content = m.renderSettings(m.width, contentHeight)
	}
	return strings.Join([]string{m.renderHeader(), m.renderNav(), content, m.renderFooter()}, "\n")
}

// renderHeader shows the app name, data source and live counters.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{
		bg.Render("stockdeck", styles.Logo),
		bg.Render(truncate(m.snapshot.SourceLabel(), 40), styles.MutedText),
	}
	if m.sync != nil {
		pending := m.sync.board.PendingCount()
		style := styles.SuccessText
		if pending > 0 {
			style = styles.WarningText
		}
		parts = append(parts, bg.Render("Conflicts:", styles.MutedText)+bg.Space()+bg.Render(strconv.Itoa(pending), style))
	}
	if m.errorMsg != "" {
		parts = append(parts, bg.Render("!", styles.WarningText.Bold(true))+bg.Space()+bg.Render(m.errorMsg, styles.WarningText))
	}
	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderNav shows the page tabs with their number keys.
func (m Model) renderNav() string {
	styles := m.theme.Styles().WithBackground(m.theme.Background)
	bg := NewBgStyle(m.theme.Background)

	tabs := make([]string, len(pageOrder))
	for i, p := range pageOrder {
		label := " " + strconv.Itoa(i+1) + " " + p.Title() + " "
		if p == m.page {
			tabs[i] = styles.Selected.Bold(true).Render(label)
		} else {
			tabs[i] = bg.Render(label, styles.MutedText)
		}
	}
	return bg.FillLine(bg.Join(tabs, " "), m.width)
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var hints []string
	switch m.page {
	case PageProducts:
		hints = m.productsHints()
	case PageSync:
		hints = m.syncHints()
	case PageSettings:
		hints = m.settingsHints()
	}
	hints = append(hints, "tab pages", "L logs", "? help", "e quit")
	for i, h := range hints {
		hints[i] = bg.Render(h, styles.MutedText)
	}
	return styles.Footer.Width(m.width).Render(bg.Join(hints, " · "))
}

