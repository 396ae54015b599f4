// Package section composes one pattern's catalog entry: ordinal and title,
// diagram, rendered description, and the embedded run control.
package section

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lessuselesss/agents/internal/log"
	"github.com/lessuselesss/agents/internal/pattern"
	"github.com/lessuselesss/agents/internal/rendercache"
	"github.com/lessuselesss/agents/internal/sim"
	"github.com/lessuselesss/agents/internal/ui/diagram"
	"github.com/lessuselesss/agents/internal/ui/markdown"
	"github.com/lessuselesss/agents/internal/ui/panes"
	"github.com/lessuselesss/agents/internal/ui/runner"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

// Model renders a single workflow pattern section.
type Model struct {
	id          pattern.ID
	meta        pattern.Metadata
	run         runner.Model
	cache       rendercache.Cache[string, string]
	mdStyle     string
	width       int
	focused     bool
	showDiagram bool
}

// New creates a section for the given pattern. The cache is shared across
// sections so re-renders of the same description are free.
func New(id pattern.ID, cache rendercache.Cache[string, string], mdStyle string) Model {
	meta, _ := pattern.Get(id)
	return Model{
		id:          id,
		meta:        meta,
		run:         runner.New(id),
		cache:       cache,
		mdStyle:     mdStyle,
		width:       80,
		showDiagram: true,
	}
}

// ID returns the pattern this section displays.
func (m Model) ID() pattern.ID {
	return m.id
}

// Title returns the section's display title.
func (m Model) Title() string {
	return fmt.Sprintf("%d. %s", m.id.Ordinal(), m.meta.Title)
}

// ZoneID returns the bubblezone identifier of the section's run trigger.
func (m Model) ZoneID() string {
	return m.run.ZoneID()
}

// Running reports whether this section's simulation is in flight.
func (m Model) Running() bool {
	return m.run.Running()
}

// SetWidth sets the section's total width including borders.
func (m Model) SetWidth(width int) Model {
	if width < 20 {
		width = 20
	}
	m.width = width
	m.run = m.run.SetWidth(width - 4)
	return m
}

// SetFocused marks the section as the focused catalog entry.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	m.run = m.run.SetFocused(focused)
	return m
}

// SetRunState installs the pattern's current simulation state.
func (m Model) SetRunState(state sim.RunState) Model {
	m.run = m.run.SetState(state)
	return m
}

// SetMarkdownStyle switches the glamour style used for the description.
func (m Model) SetMarkdownStyle(style string) Model {
	m.mdStyle = style
	return m
}

// SetShowDiagrams toggles diagram rendering.
func (m Model) SetShowDiagrams(show bool) Model {
	m.showDiagram = show
	return m
}

// AdvanceSpinner moves the run trigger's spinner to its next frame.
func (m Model) AdvanceSpinner() Model {
	m.run = m.run.AdvanceSpinner()
	return m
}

// View renders the bordered section pane.
func (m Model) View() string {
	innerWidth := m.width - 4

	blocks := []string{}
	if m.showDiagram && diagram.Width(m.id) <= innerWidth {
		blocks = append(blocks, diagram.Render(m.id), "")
	}
	blocks = append(blocks, m.description(innerWidth), m.docsLink(), m.run.View())

	content := lipgloss.NewStyle().
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, blocks...))

	return panes.BorderedPane(panes.BorderConfig{
		Content:            content,
		Width:              m.width,
		Height:             strings.Count(content, "\n") + 3,
		TopLeft:            m.Title(),
		Focused:            m.focused,
		TitleColor:         styles.TextSecondaryColor,
		BorderColor:        styles.BorderDefaultColor,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
}

// docsLink renders an OSC 8 hyperlink to the pattern's reference section.
// The hosting terminal opens it; the program never does.
func (m Model) docsLink() string {
	return lipgloss.NewStyle().
		Foreground(styles.LinkColor).
		Underline(true).
		Render(termenv.Hyperlink(m.meta.DocsURL(), "Read about this pattern")) + "\n"
}

// description renders the pattern's markdown description, memoized per
// style and width.
func (m Model) description(width int) string {
	ctx := context.Background()
	key := fmt.Sprintf("%s|%s|%d", m.id, m.mdStyle, width)

	if cached, ok := m.cache.Get(ctx, key); ok {
		return cached
	}

	rendered := m.renderDescription(width)
	m.cache.Set(ctx, key, rendered, rendercache.DefaultExpiration)
	return rendered
}

func (m Model) renderDescription(width int) string {
	r, err := markdown.New(width, m.mdStyle)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer init failed", err, "pattern", string(m.id))
		return m.meta.Description
	}

	out, err := r.Render(m.meta.Description)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed", err, "pattern", string(m.id))
		return m.meta.Description
	}
	return strings.TrimRight(out, "\n")
}
