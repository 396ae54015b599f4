// Package sim implements the workflow simulation engine. A "run" performs
// no real orchestration: it flips the pattern's run state, waits a fixed
// delay, and substitutes the canned transcript for that pattern.
package sim

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/lessuselesss/agents/internal/log"
	"github.com/lessuselesss/agents/internal/pattern"
)

// DefaultDelay is the fixed duration of a simulated run.
const DefaultDelay = 2 * time.Second

// RunState is the per-pattern run record driving the display.
type RunState struct {
	Running bool
	Output  string
}

// States maps every pattern identifier to its run state.
// Transitions replace one entry copy-on-write; other entries are untouched.
type States map[pattern.ID]RunState

// NewStates returns the initial state record: every pattern idle with empty
// output.
func NewStates() States {
	s := make(States, len(pattern.All()))
	for _, id := range pattern.All() {
		s[id] = RunState{}
	}
	return s
}

// Clone returns a shallow copy of the state record.
func (s States) Clone() States {
	out := make(States, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// AnyRunning reports whether any pattern is mid-run.
func (s States) AnyRunning() bool {
	for _, st := range s {
		if st.Running {
			return true
		}
	}
	return false
}

// CompletedMsg is delivered when a simulated run's delay elapses.
type CompletedMsg struct {
	ID     pattern.ID
	RunID  string
	Output string
}

// Engine produces run-state transitions and the delayed completion command.
type Engine struct {
	delay  time.Duration
	tracer trace.Tracer
}

// NewEngine creates an engine with the given run delay.
// Tracing is a no-op until WithTracer is called.
func NewEngine(delay time.Duration) Engine {
	return Engine{
		delay:  delay,
		tracer: noop.NewTracerProvider().Tracer("sim"),
	}
}

// WithTracer returns a copy of the engine that records a span per run.
func (e Engine) WithTracer(tracer trace.Tracer) Engine {
	e.tracer = tracer
	return e
}

// Delay returns the configured run duration.
func (e Engine) Delay() time.Duration {
	return e.delay
}

// Begin starts a simulated run: it returns a new state record with only the
// given pattern's entry replaced by a running state, plus a command that
// delivers CompletedMsg after the fixed delay. There is no cancellation;
// once begun, a run always completes.
//
// Begin does not check whether the pattern is already running. Callers keep
// the trigger disabled while a run is in flight.
func (e Engine) Begin(states States, id pattern.ID) (States, tea.Cmd) {
	if !id.Valid() {
		return states, nil
	}

	runID := uuid.NewString()
	log.Info(log.CatSim, "run started", "pattern", id, "run_id", runID, "delay", e.delay)

	_, span := e.tracer.Start(context.Background(), "sim.run",
		trace.WithAttributes(
			attribute.String("pattern.id", string(id)),
			attribute.String("run.id", runID),
			attribute.Int64("delay_ms", e.delay.Milliseconds()),
		))

	next := states.Clone()
	entry := next[id]
	entry.Running = true
	next[id] = entry

	return next, tea.Tick(e.delay, func(time.Time) tea.Msg {
		span.End()
		return CompletedMsg{
			ID:     id,
			RunID:  runID,
			Output: pattern.Transcript(id),
		}
	})
}

// Complete applies a finished run to the state record: the pattern's entry
// is replaced by an idle state carrying the produced output. Re-running a
// pattern overwrites its previous output.
func Complete(states States, msg CompletedMsg) States {
	if !msg.ID.Valid() {
		return states
	}

	log.Info(log.CatSim, "run completed", "pattern", msg.ID, "run_id", msg.RunID)

	next := states.Clone()
	next[msg.ID] = RunState{
		Running: false,
		Output:  msg.Output,
	}
	return next
}
