package app

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/lessuselesss/agents/internal/config"
	"github.com/lessuselesss/agents/internal/sim"
	"github.com/lessuselesss/agents/internal/theme"
)

// TestFullRun_KeyboardDriven drives a complete simulated run through the
// program loop: trigger, delay, completion toast.
func TestFullRun_KeyboardDriven(t *testing.T) {
	m := New(Config{
		AppConfig: config.Defaults(),
		Engine:    sim.NewEngine(20 * time.Millisecond),
		Theme:     theme.Detect("dark"),
	})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Sequential Chaining"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	// Output is a consuming reader, so check the completion frame once: it
	// carries both the transcript and the relabeled button.
	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("Completed sequential processing")) &&
			bytes.Contains(bts, []byte("Run Again"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}
