package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderTitledBox frames content with the title set into the top border:
//
//	┌──── Title ────┐
//
// Content is clipped or padded to height. A focused box uses the focus
// border and background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	border := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	inner := max(width-2, 0)
	title = truncate(title, max(inner-4, 0))
	titleWidth := lipgloss.Width(title)
	left := max((inner-titleWidth-2)/2, 0)
	right := max(inner-titleWidth-2-left, 0)

	var b strings.Builder
	b.WriteString(bg.Render("┌"+strings.Repeat("─", left), border))
	b.WriteString(bg.Render(" "+title+" ", titleStyle))
	b.WriteString(bg.Render(strings.Repeat("─", right)+"┐", border))
	b.WriteString("\n")

	lines := strings.Split(content, "\n")
	side := bg.Render("│", border)
	for i := 0; i < max(height-2, 0); i++ {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		b.WriteString(side)
		b.WriteString(bg.FillLine(line, inner))
		b.WriteString(side)
		b.WriteString("\n")
	}
	b.WriteString(bg.Render("└"+strings.Repeat("─", inner)+"┘", border))
	return b.String()
}
