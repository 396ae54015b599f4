// Package runner renders the per-pattern run trigger and output panel.
package runner

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/lessuselesss/agents/internal/pattern"
	"github.com/lessuselesss/agents/internal/sim"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

// spinnerFrames defines the braille spinner animation sequence.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SpinnerTickMsg advances the spinner frame on every running trigger.
type SpinnerTickMsg struct{}

// SpinnerTick returns a command that sends SpinnerTickMsg after 80ms.
func SpinnerTick() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(_ time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

const placeholderText = "Press enter or click Run to execute this workflow."

// Model renders the run trigger and the output panel for one pattern.
type Model struct {
	id           pattern.ID
	state        sim.RunState
	width        int
	focused      bool
	spinnerFrame int
}

// New creates a runner for the given pattern.
func New(id pattern.ID) Model {
	return Model{id: id, width: 60}
}

// SetState installs the pattern's current run state.
func (m Model) SetState(state sim.RunState) Model {
	m.state = state
	return m
}

// SetWidth sets the wrap width for the output panel.
func (m Model) SetWidth(width int) Model {
	if width < 10 {
		width = 10
	}
	m.width = width
	return m
}

// SetFocused marks the trigger as the focused control.
func (m Model) SetFocused(focused bool) Model {
	m.focused = focused
	return m
}

// AdvanceSpinner moves the spinner to its next frame.
func (m Model) AdvanceSpinner() Model {
	m.spinnerFrame = (m.spinnerFrame + 1) % len(spinnerFrames)
	return m
}

// Running reports whether the pattern's simulation is in flight.
func (m Model) Running() bool {
	return m.state.Running
}

// ButtonLabel returns the trigger label for the current run state.
func (m Model) ButtonLabel() string {
	switch {
	case m.state.Running:
		return spinnerFrames[m.spinnerFrame] + " Running..."
	case m.state.Output != "":
		return "Run Again"
	default:
		return "Run"
	}
}

// ZoneID returns the bubblezone identifier wrapping the trigger.
func (m Model) ZoneID() string {
	return "runner:" + string(m.id)
}

// View renders the trigger button above the output panel.
func (m Model) View() string {
	var buttonStyle lipgloss.Style
	switch {
	case m.state.Running:
		buttonStyle = styles.DisabledButtonStyle
	case m.focused:
		buttonStyle = styles.PrimaryButtonFocusedStyle
	default:
		buttonStyle = styles.PrimaryButtonStyle
	}

	button := zone.Mark(m.ZoneID(), buttonStyle.Render(m.ButtonLabel()))

	return lipgloss.JoinVertical(lipgloss.Left, button, "", m.outputPanel())
}

func (m Model) outputPanel() string {
	if m.state.Output == "" {
		return lipgloss.NewStyle().
			Foreground(styles.TextPlaceholderColor).
			Italic(true).
			Render(wordwrap.String(placeholderText, m.width))
	}

	header := lipgloss.NewStyle().
		Foreground(styles.StatusSuccessColor).
		Render("Output")

	body := lipgloss.NewStyle().
		Foreground(styles.TextPrimaryColor).
		Render(wordwrap.String(m.state.Output, m.width))

	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
