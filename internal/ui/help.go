package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Pages",
		items: []helpItem{
			{"1-4", "Dashboard/Products/Sync/Settings"},
			{"tab", "Next page (resets the page)"},
			{"j/k", "Move down/up"},
			{"g/G", "Go to top/bottom"},
		},
	},
	{
		title: "Products",
		items: []helpItem{
			{"/", "Search name or SKU"},
			{"f", "Cycle filter"},
			{"a/w/b", "All/Low stock/Bundles"},
			{"enter", "Expand bundle"},
		},
	},
	{
		title: "Sync status",
		items: []helpItem{
			{"←/→", "Pick store report"},
			{"enter", "Use reported quantity"},
		},
	},
	{
		title: "Settings",
		items: []helpItem{
			{"space", "Toggle store / cycle"},
			{"enter", "Edit value"},
			{"s", "Save"},
		},
	},
	{
		title: "General",
		items: []helpItem{
			{"L", "Log overlay"},
			{"T", "Cycle theme"},
			{"h/?", "Toggle help"},
			{"e/ctrl+c", "Quit"},
		},
	},
}

// renderHelp renders the help overlay centred over the screen.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning)).Width(12)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 40)))
	b.WriteString("\n")

	for _, section := range helpSections {
		b.WriteString("\n")
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(48).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
