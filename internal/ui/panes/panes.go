// Package panes contains the bordered pane component used for pattern
// sections and overlays.
package panes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/lessuselesss/agents/internal/ui/styles"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// BorderConfig configures the appearance of a bordered panel.
type BorderConfig struct {
	Content string // The content to render inside the border
	Width   int    // Total width including borders
	Height  int    // Total height including borders

	TopLeft  string // Title on top border, left-aligned
	TopRight string // Title on top border, right-aligned

	Focused            bool
	TitleColor         lipgloss.TerminalColor // Color for title text
	BorderColor        lipgloss.TerminalColor // Border color when not focused
	FocusedBorderColor lipgloss.TerminalColor // Border color when focused
}

// BorderedPane renders content within a bordered panel with optional titles
// embedded in the top border.
func BorderedPane(cfg BorderConfig) string {
	borderColor := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)

	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.TextPrimaryColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)

	topBorder := buildTopBorder(cfg.TopLeft, cfg.TopRight, innerWidth, borderStyle, titleStyle)
	bottomBorder := borderStyle.Render(
		borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	contentHeight := max(cfg.Height-2, 1)

	// lipgloss handles wrapping/truncation of the body
	constrained := lipgloss.NewStyle().Width(innerWidth).Height(contentHeight).Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")

	paddedLines := make([]string, contentHeight)
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}

		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}

		paddedLines[i] = borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical)
	}

	var b strings.Builder
	b.WriteString(topBorder)
	b.WriteString("\n")
	b.WriteString(strings.Join(paddedLines, "\n"))
	b.WriteString("\n")
	b.WriteString(bottomBorder)
	return b.String()
}

// resolveBorderColor implements the nil color fallback logic.
func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if focused && focusedBorderColor != nil {
		return focusedBorderColor
	}
	if borderColor != nil {
		return borderColor
	}
	return styles.BorderDefaultColor
}

// buildTopBorder embeds the left and right titles in the top border.
// Format: ╭─ Left ─────────── Right ─╮
func buildTopBorder(left, right string, innerWidth int, borderStyle, titleStyle lipgloss.Style) string {
	if innerWidth < 1 {
		return borderStyle.Render(borderTopLeft + borderTopRight)
	}
	if left == "" && right == "" {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	// "─ " prefix and " ─" suffix around the title area
	available := innerWidth - 4
	if right != "" {
		// " " separator plus " Right" on the other side
		available -= runewidth.StringWidth(right) + 2
	}
	if available < 1 {
		return borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	displayLeft := left
	if runewidth.StringWidth(displayLeft) > available {
		displayLeft = runewidth.Truncate(displayLeft, available, "…")
	}

	used := 3 + runewidth.StringWidth(displayLeft)
	if right != "" {
		used += runewidth.StringWidth(right) + 3
	}
	dashes := max(innerWidth-used, 0)

	var b strings.Builder
	b.WriteString(borderStyle.Render(borderTopLeft + borderHorizontal + " "))
	b.WriteString(titleStyle.Render(displayLeft))
	b.WriteString(borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashes)))
	if right != "" {
		b.WriteString(borderStyle.Render(" "))
		b.WriteString(titleStyle.Render(right))
		b.WriteString(borderStyle.Render(" " + borderHorizontal))
	}
	b.WriteString(borderStyle.Render(borderTopRight))
	return b.String()
}
