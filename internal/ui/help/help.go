// Package help contains the keybinding help overlay.
package help

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/lessuselesss/agents/internal/keys"
	"github.com/lessuselesss/agents/internal/ui/overlay"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

// Styles are cached at package level and rebuilt when theme overrides
// change the underlying colors.
var (
	titleStyle   lipgloss.Style
	dividerStyle lipgloss.Style
	sectionStyle lipgloss.Style
	keyStyle     lipgloss.Style
	descStyle    lipgloss.Style
	boxStyle     lipgloss.Style
	contentStyle lipgloss.Style
	footerStyle  lipgloss.Style
)

func init() {
	rebuildStyles()
	styles.RegisterStyleRebuilder(rebuildStyles)
}

func rebuildStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(2)

	dividerStyle = lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor)

	sectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		MarginTop(1)

	keyStyle = lipgloss.NewStyle().
		Foreground(styles.TextSecondaryColor).
		Width(11)

	descStyle = lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor)

	boxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor)

	contentStyle = lipgloss.NewStyle().
		Padding(0, 2)

	footerStyle = lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		MarginTop(1)
}

// Model holds the help view state.
type Model struct {
	keymap keys.KeyMap
	width  int
	height int
}

// New creates a new help view.
func New(keymap keys.KeyMap) Model {
	return Model{keymap: keymap}
}

// SetSize updates dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the help overlay (standalone, no background).
func (m Model) View() string {
	return m.Overlay("")
}

// Overlay renders the help box on top of a background view.
func (m Model) Overlay(background string) string {
	helpBox := m.renderContent()

	if background == "" {
		return lipgloss.Place(
			m.width, m.height,
			lipgloss.Center, lipgloss.Center,
			helpBox,
		)
	}

	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, helpBox, background)
}

// renderContent builds the help box content.
func (m Model) renderContent() string {
	columnStyle := lipgloss.NewStyle().MarginRight(4)

	var navCol strings.Builder
	navCol.WriteString(sectionStyle.Render("Navigation"))
	navCol.WriteString("\n")
	navCol.WriteString(renderBinding(m.keymap.Up))
	navCol.WriteString(renderBinding(m.keymap.Down))
	navCol.WriteString(renderBinding(m.keymap.Top))
	navCol.WriteString(renderBinding(m.keymap.Bot))

	var actionsCol strings.Builder
	actionsCol.WriteString(sectionStyle.Render("Actions"))
	actionsCol.WriteString("\n")
	actionsCol.WriteString(renderBinding(m.keymap.Run))
	actionsCol.WriteString(renderBinding(m.keymap.ToggleTheme))

	var generalCol strings.Builder
	generalCol.WriteString(sectionStyle.Render("General"))
	generalCol.WriteString("\n")
	generalCol.WriteString(renderBinding(m.keymap.Help))
	generalCol.WriteString(renderBinding(m.keymap.Escape))
	generalCol.WriteString(renderBinding(m.keymap.Quit))

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(navCol.String()),
		columnStyle.Render(actionsCol.String()),
		generalCol.String(),
	)

	columnsWidth := lipgloss.Width(columns)
	boxWidth := columnsWidth + 4

	body := contentStyle.Render(columns + "\n" + footerStyle.Render("Press ? or Esc to close"))
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	var content strings.Builder
	content.WriteString(titleStyle.Render("Keybindings"))
	content.WriteString("\n")
	content.WriteString(divider)
	content.WriteString("\n")
	content.WriteString(body)

	return boxStyle.Width(boxWidth).Render(content.String())
}

func renderBinding(b key.Binding) string {
	help := b.Help()
	return keyStyle.Render(help.Key) + descStyle.Render(help.Desc) + "\n"
}
