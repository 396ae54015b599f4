// Package diagram renders the box-drawing pattern diagrams.
package diagram

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lessuselesss/agents/internal/pattern"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

// Render returns the styled diagram for a pattern, or the empty string when
// the identifier is unknown.
func Render(id pattern.ID) string {
	art, err := pattern.Diagram(id)
	if err != nil {
		return ""
	}

	style := lipgloss.NewStyle().Foreground(styles.DiagramAccentColor)

	// Style per line so pane clipping never swallows a trailing reset.
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Width returns the widest line of the pattern's diagram in cells.
func Width(id pattern.ID) int {
	art, err := pattern.Diagram(id)
	if err != nil {
		return 0
	}
	return lipgloss.Width(art)
}
