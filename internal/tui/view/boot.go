package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"marios/internal/tui/design"
	"marios/internal/tui/model"
)

const bootBarWidth = 40

func renderBoot(m *model.Model) string {
	lines, progress := m.BootProgress()

	filled := int(progress * bootBarWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", bootBarWidth-filled)

	var b strings.Builder
	b.WriteString(design.BootTitleStyle.Render("mar.iOS"))
	b.WriteString("\n\n")
	for _, l := range lines {
		b.WriteString(design.BootStyle.Render(l))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(design.BootStyle.Render(fmt.Sprintf("%s %s %3d%%", m.Spinner.View(), bar, int(progress*100))))
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, b.String())
}
