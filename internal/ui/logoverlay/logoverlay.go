// Package logoverlay provides a debug log viewer overlay showing recent
// structured log entries without leaving the TUI.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lessuselesss/agents/internal/log"
	"github.com/lessuselesss/agents/internal/ui/overlay"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

const (
	viewportMaxHeight = 20
	viewportMinHeight = 5
	boxMaxWidth       = 100
	boxMinWidth       = 40

	// Header, footer and borders around the viewport.
	chromeHeight = 6
)

// levelFilters maps filter keys to the minimum level they select. The same
// table drives both key handling and the footer hint.
var levelFilters = []struct {
	key   string
	label string
	level log.Level
}{
	{"d", "[d] Debug", log.LevelDebug},
	{"i", "[i] Info", log.LevelInfo},
	{"w", "[w] Warn", log.LevelWarn},
	{"e", "[e] Error", log.LevelError},
}

// Model is the log overlay component state.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	vp       viewport.Model
}

// New creates a hidden log overlay showing all levels.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Update handles keys while the overlay is visible. Closing is signalled by
// Visible turning false; the parent model decides what regains focus.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		for _, f := range levelFilters {
			if key == f.key {
				m.minLevel = f.level
				m.refresh()
				return m, nil
			}
		}

		switch key {
		case "c":
			log.ClearBuffer()
			m.refresh()
		case "j", "down":
			m.vp.ScrollDown(1)
		case "k", "up":
			m.vp.ScrollUp(1)
		case "g":
			m.vp.GotoTop()
		case "G":
			m.vp.GotoBottom()
		case "ctrl+x", "esc":
			m.visible = false
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
	}

	return m, nil
}

// Refresh reloads the entry buffer into the viewport. Call it when new
// entries arrive while the overlay is open.
func (m *Model) Refresh() {
	m.refresh()
}

// View renders the overlay box: title, divider, scrollable entries and a
// footer with filter hints.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()
	divider := lipgloss.NewStyle().
		Foreground(styles.OverlayBorderColor).
		Render(strings.Repeat("─", boxWidth))

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1).
		Render("Logs")

	body := strings.Join([]string{
		title,
		divider,
		m.vp.View(),
		divider,
		m.filterHint(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
}

// Overlay renders the log overlay centered on the given background.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible reports whether the overlay is currently shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility, reloading entries when opening.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refresh()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the terminal dimensions used for layout.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refresh()
}

func (m *Model) refresh() {
	if m.width == 0 || m.height == 0 {
		return
	}

	contentWidth := m.boxWidth() - 2
	vpHeight := min(viewportMaxHeight, m.height-chromeHeight)
	vpHeight = max(vpHeight, viewportMinHeight)

	m.vp = viewport.New(contentWidth, vpHeight)
	m.vp.SetContent(m.content(contentWidth))
	m.vp.GotoBottom()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m Model) content(contentWidth int) string {
	var lines []string
	for _, entry := range log.Recent(log.BufferCap()) {
		if level, ok := entryLevel(entry); ok && level < m.minLevel {
			continue
		}
		lines = append(lines, styleEntry(entry, contentWidth))
	}

	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// filterHint renders the footer key hints with the active filter in bold.
func (m Model) filterHint() string {
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	activeStyle := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	hints := []string{hintStyle.Render("[c] Clear")}
	for _, f := range levelFilters {
		if m.minLevel == f.level {
			hints = append(hints, activeStyle.Render(f.label))
		} else {
			hints = append(hints, hintStyle.Render(f.label))
		}
	}
	return strings.Join(hints, "  ")
}

// entryLevel parses the level tag out of a formatted entry. Entries without
// a recognizable tag pass every filter.
func entryLevel(entry string) (log.Level, bool) {
	for _, f := range levelFilters {
		tag := "[" + f.level.String() + "]"
		if strings.Contains(entry, tag) {
			return f.level, true
		}
	}
	return 0, false
}

func styleEntry(entry string, maxWidth int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if ansi.StringWidth(entry) > maxWidth {
		entry = ansi.Truncate(entry, maxWidth-3, "...")
	}

	color := styles.TextPrimaryColor
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		case log.LevelDebug:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}
