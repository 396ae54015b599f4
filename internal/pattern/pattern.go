// Package pattern defines the five agent workflow patterns the demo
// displays: their identifiers, display metadata, diagrams, and the canned
// transcripts shown by simulated runs.
package pattern

import (
	"embed"
	"fmt"
)

// ID identifies one of the five workflow patterns.
type ID string

const (
	Sequential   ID = "sequential"
	Routing      ID = "routing"
	Parallel     ID = "parallel"
	Orchestrator ID = "orchestrator"
	Evaluator    ID = "evaluator"
)

// All returns the pattern identifiers in display order.
func All() []ID {
	return []ID{Sequential, Routing, Parallel, Orchestrator, Evaluator}
}

// Valid reports whether id names a known pattern.
func (id ID) Valid() bool {
	_, ok := catalog[id]
	return ok
}

// Ordinal returns the 1-based display position of the pattern, or 0 for an
// unknown identifier.
func (id ID) Ordinal() int {
	for i, p := range All() {
		if p == id {
			return i + 1
		}
	}
	return 0
}

// Metadata is the static display record for one pattern.
type Metadata struct {
	Title       string
	Description string // markdown
	DiagramPath string // embedded asset path, ordinal-prefixed
	DocsAnchor  string // fragment on the reference article
}

// DocsBaseURL is the reference article the per-pattern docs anchors
// resolve against.
const DocsBaseURL = "https://www.anthropic.com/research/building-effective-agents"

// DocsURL returns the full documentation link for the pattern.
func (m Metadata) DocsURL() string {
	if m.DocsAnchor == "" {
		return DocsBaseURL
	}
	return DocsBaseURL + "#" + m.DocsAnchor
}

// Get returns the metadata for a pattern identifier.
func Get(id ID) (Metadata, bool) {
	m, ok := catalog[id]
	return m, ok
}

var catalog = map[ID]Metadata{
	Sequential: {
		Title: "Sequential Chaining",
		Description: "Decomposes a task into a fixed series of steps where each " +
			"agent call processes the output of the previous one. Best when the " +
			"task has a clear, predictable decomposition, trading latency for " +
			"higher accuracy on each step.",
		DiagramPath: "assets/01-sequential.txt",
		DocsAnchor:  "workflow-prompt-chaining",
	},
	Routing: {
		Title: "Routing",
		Description: "Classifies the input and dispatches it to a specialized " +
			"follow-up handler. Keeps each handler's prompt narrow and lets " +
			"easy and hard inputs take different paths.",
		DiagramPath: "assets/02-routing.txt",
		DocsAnchor:  "workflow-routing",
	},
	Parallel: {
		Title: "Parallelization",
		Description: "Splits the work into independent sections that run " +
			"concurrently, then aggregates the results. Useful for sectioning " +
			"large inputs or voting across multiple attempts.",
		DiagramPath: "assets/03-parallel.txt",
		DocsAnchor:  "workflow-parallelization",
	},
	Orchestrator: {
		Title: "Orchestrator-Workers",
		Description: "A central orchestrator dynamically breaks the task into " +
			"subtasks, delegates each to a worker, and synthesizes their " +
			"results. Fits tasks where the decomposition itself depends on the " +
			"input.",
		DiagramPath: "assets/04-orchestrator.txt",
		DocsAnchor:  "workflow-orchestrator-workers",
	},
	Evaluator: {
		Title: "Evaluator-Optimizer",
		Description: "One agent generates a response while another evaluates " +
			"it against explicit criteria, looping with feedback until the " +
			"draft is accepted. Effective when a clear evaluation rubric " +
			"exists.",
		DiagramPath: "assets/05-evaluator.txt",
		DocsAnchor:  "workflow-evaluator-optimizer",
	},
}

// Canned transcripts substituted for real execution by the simulation.
var transcripts = map[ID]string{
	Sequential:   "1. Processing input text...\n2. Generating response...\n3. Final output: Completed sequential processing",
	Routing:      "1. Classifying query intent...\n2. Routing to specialist handler...\n3. Final output: Resolved by selected route",
	Parallel:     "1. Splitting input into sections...\n2. Processing 3 sections concurrently...\n3. Final output: Aggregated parallel results",
	Orchestrator: "1. Planning subtasks...\n2. Delegating to 2 workers...\n3. Final output: Synthesized worker results",
	Evaluator:    "1. Generating initial draft...\n2. Evaluating against criteria...\n3. Final output: Accepted after refinement loop",
}

// Transcript returns the canned run output for a pattern identifier.
// The same string is produced on every run.
func Transcript(id ID) string {
	return transcripts[id]
}

//go:embed assets/*.txt
var assets embed.FS

// Diagram returns the box-drawing diagram for a pattern.
func Diagram(id ID) (string, error) {
	m, ok := catalog[id]
	if !ok {
		return "", fmt.Errorf("unknown pattern: %s", id)
	}
	data, err := assets.ReadFile(m.DiagramPath)
	if err != nil {
		return "", fmt.Errorf("reading diagram %s: %w", m.DiagramPath, err)
	}
	return string(data), nil
}
