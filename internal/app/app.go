// Package app contains the root application model.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"

	"github.com/lessuselesss/agents/internal/config"
	"github.com/lessuselesss/agents/internal/keys"
	"github.com/lessuselesss/agents/internal/log"
	"github.com/lessuselesss/agents/internal/pattern"
	"github.com/lessuselesss/agents/internal/pubsub"
	"github.com/lessuselesss/agents/internal/rendercache"
	"github.com/lessuselesss/agents/internal/sim"
	"github.com/lessuselesss/agents/internal/theme"
	"github.com/lessuselesss/agents/internal/ui/help"
	"github.com/lessuselesss/agents/internal/ui/logoverlay"
	"github.com/lessuselesss/agents/internal/ui/runner"
	"github.com/lessuselesss/agents/internal/ui/section"
	"github.com/lessuselesss/agents/internal/ui/styles"
	"github.com/lessuselesss/agents/internal/ui/toaster"
	"github.com/lessuselesss/agents/internal/watcher"
)

const (
	headerHeight = 2
	footerHeight = 2
	maxBodyWidth = 100
)

var docLinks = []struct {
	title string
	url   string
}{
	{"Building effective agents", "https://www.anthropic.com/research/building-effective-agents"},
	{"Pattern cookbook", "https://github.com/anthropics/anthropic-cookbook/tree/main/patterns/agents"},
}

// Config carries the collaborators the root model needs.
type Config struct {
	AppConfig  config.Config
	Engine     sim.Engine
	Theme      theme.Controller
	Watcher    *watcher.Watcher
	ReloadConf func() (config.Config, error)

	// Debug enables the in-app log overlay (ctrl+x).
	Debug bool
}

// Model is the root application state.
type Model struct {
	cfg    config.Config
	engine sim.Engine
	states sim.States
	themes theme.Controller
	keymap keys.KeyMap

	sections  []section.Model
	focus     int
	descCache rendercache.Cache[string, string]

	vp       viewport.Model
	toaster  toaster.Model
	help     help.Model
	showHelp bool

	debugMode   bool
	logs        logoverlay.Model
	logCancel   context.CancelFunc
	logListener *pubsub.ContinuousListener[string]

	width  int
	height int
	ready  bool

	// Spinner tick loop runs while any simulation is in flight.
	spinning bool

	reloadConf      func() (config.Config, error)
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Event]
}

// New creates the root application model.
func New(cfg Config) Model {
	descCache := rendercache.New[string, string](
		"markdown", rendercache.DefaultExpiration, rendercache.DefaultCleanupInterval)

	mdStyle := cfg.Theme.MarkdownStyle()
	sections := make([]section.Model, 0, len(pattern.All()))
	for _, id := range pattern.All() {
		sections = append(sections,
			section.New(id, descCache, mdStyle).
				SetShowDiagrams(cfg.AppConfig.UI.ShowDiagrams))
	}

	var (
		cancel   context.CancelFunc
		listener *pubsub.ContinuousListener[watcher.Event]
	)
	if cfg.Watcher != nil {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())
		listener = pubsub.NewContinuousListener(ctx, cfg.Watcher.Broker())
	}

	var (
		logCancel   context.CancelFunc
		logListener *pubsub.ContinuousListener[string]
	)
	if cfg.Debug {
		var ctx context.Context
		ctx, logCancel = context.WithCancel(context.Background())
		logListener = log.NewListener(ctx)
	}

	m := Model{
		cfg:             cfg.AppConfig,
		engine:          cfg.Engine,
		states:          sim.NewStates(),
		themes:          cfg.Theme,
		keymap:          keys.DefaultKeyMap(),
		sections:        sections,
		descCache:       descCache,
		toaster:         toaster.New(),
		help:            help.New(keys.DefaultKeyMap()),
		debugMode:       cfg.Debug,
		logs:            logoverlay.New(),
		logCancel:       logCancel,
		logListener:     logListener,
		reloadConf:      cfg.ReloadConf,
		watcherHandle:   cfg.Watcher,
		watcherCancel:   cancel,
		watcherListener: listener,
	}
	return m.syncSections()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Close releases the watcher and log subscriptions.
func (m Model) Close() {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.logCancel != nil {
		m.logCancel()
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case runner.SpinnerTickMsg:
		return m.handleSpinnerTick()

	case sim.CompletedMsg:
		return m.handleCompleted(msg)

	case toaster.DismissMsg:
		m.toaster = m.toaster.Hide()
		return m, nil

	case pubsub.Event[watcher.Event]:
		return m.handleConfigChanged(msg)

	case log.LogEvent:
		return m.handleLogEvent()
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.toaster = m.toaster.SetSize(msg.Width, msg.Height)
	m.help = m.help.SetSize(msg.Width, msg.Height)
	m.logs.SetSize(msg.Width, msg.Height)

	bodyHeight := max(msg.Height-headerHeight-footerHeight, 1)
	if !m.ready {
		m.vp = viewport.New(msg.Width, bodyHeight)
		m.ready = true
	} else {
		m.vp.Width = msg.Width
		m.vp.Height = bodyHeight
	}

	sectionWidth := min(msg.Width, maxBodyWidth)
	for i := range m.sections {
		m.sections[i] = m.sections[i].SetWidth(sectionWidth)
	}
	return m.refreshViewport()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs.Visible() {
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}

	// The log overlay is a debug affordance, not part of the keymap shown
	// in help.
	if m.debugMode && msg.String() == "ctrl+x" {
		m.logs.Toggle()
		return m, nil
	}

	if m.showHelp {
		if key.Matches(msg, m.keymap.Help) || key.Matches(msg, m.keymap.Escape) || key.Matches(msg, m.keymap.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keymap.Escape):
		m.toaster = m.toaster.Hide()
		return m, nil

	case key.Matches(msg, m.keymap.Up):
		return m.moveFocus(m.focus - 1), nil

	case key.Matches(msg, m.keymap.Down):
		return m.moveFocus(m.focus + 1), nil

	case key.Matches(msg, m.keymap.Top):
		return m.moveFocus(0), nil

	case key.Matches(msg, m.keymap.Bot):
		return m.moveFocus(len(m.sections) - 1), nil

	case key.Matches(msg, m.keymap.Run):
		return m.triggerRun(m.sections[m.focus].ID())

	case key.Matches(msg, m.keymap.ToggleTheme):
		return m.toggleTheme()
	}

	// Everything else scrolls the catalog.
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
		for i, s := range m.sections {
			if z := zone.Get(s.ZoneID()); z != nil && z.InBounds(msg) {
				next := m.moveFocus(i)
				return next.triggerRun(s.ID())
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// triggerRun starts a simulation for the pattern unless one is already in
// flight for it.
func (m Model) triggerRun(id pattern.ID) (tea.Model, tea.Cmd) {
	if m.states[id].Running {
		log.Debug(log.CatSim, "run ignored, already in flight", "pattern", string(id))
		return m, nil
	}

	var cmd tea.Cmd
	m.states, cmd = m.engine.Begin(m.states, id)
	m = m.syncSections().refreshViewport()

	cmds := []tea.Cmd{cmd}
	if !m.spinning {
		m.spinning = true
		cmds = append(cmds, runner.SpinnerTick())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleSpinnerTick() (tea.Model, tea.Cmd) {
	if !m.states.AnyRunning() {
		m.spinning = false
		return m, nil
	}

	for i := range m.sections {
		if m.sections[i].Running() {
			m.sections[i] = m.sections[i].AdvanceSpinner()
		}
	}
	return m.refreshViewport(), runner.SpinnerTick()
}

func (m Model) handleCompleted(msg sim.CompletedMsg) (tea.Model, tea.Cmd) {
	m.states = sim.Complete(m.states, msg)
	m = m.syncSections().refreshViewport()

	meta, _ := pattern.Get(msg.ID)
	m.toaster = m.toaster.Show(meta.Title+" run complete", toaster.StyleSuccess)
	return m, toaster.ScheduleDismiss(toaster.DefaultDismissAfter)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.themes = m.themes.Toggle()

	// Rendered markdown is theme-dependent.
	if err := m.descCache.Flush(context.Background()); err != nil {
		log.Warn(log.CatCache, "failed to flush markdown cache on theme toggle", "error", err)
	}

	mdStyle := m.themes.MarkdownStyle()
	for i := range m.sections {
		m.sections[i] = m.sections[i].SetMarkdownStyle(mdStyle)
	}

	m.toaster = m.toaster.Show("Theme: "+m.themes.Preference().String(), toaster.StyleInfo)
	return m.refreshViewport(), toaster.ScheduleDismiss(toaster.DefaultDismissAfter)
}

// handleLogEvent refreshes the open log overlay and re-arms the listener.
func (m Model) handleLogEvent() (tea.Model, tea.Cmd) {
	if m.logs.Visible() {
		m.logs.Refresh()
	}
	if m.logListener != nil {
		return m, m.logListener.Listen()
	}
	return m, nil
}

// handleConfigChanged re-reads the config file and re-applies theme colors.
func (m Model) handleConfigChanged(msg pubsub.Event[watcher.Event]) (tea.Model, tea.Cmd) {
	listen := func() tea.Cmd {
		if m.watcherListener != nil {
			return m.watcherListener.Listen()
		}
		return nil
	}()

	if m.reloadConf == nil {
		return m, listen
	}

	cfg, err := m.reloadConf()
	if err != nil {
		log.Warn(log.CatConfig, "config reload failed", "path", msg.Payload.Path, "error", err)
		return m, listen
	}

	if err := styles.ApplyTheme(cfg.Theme.FlattenedColors()); err != nil {
		log.Warn(log.CatConfig, "config reload produced invalid colors", "error", err)
		return m, listen
	}

	m.cfg = cfg
	if err := m.descCache.Flush(context.Background()); err != nil {
		log.Warn(log.CatCache, "failed to flush markdown cache on config reload", "error", err)
	}
	for i := range m.sections {
		m.sections[i] = m.sections[i].SetShowDiagrams(cfg.UI.ShowDiagrams)
	}

	log.Info(log.CatConfig, "configuration reloaded", "path", msg.Payload.Path)
	m.toaster = m.toaster.Show("Configuration reloaded", toaster.StyleInfo)
	return m.refreshViewport(), tea.Batch(listen, toaster.ScheduleDismiss(toaster.DefaultDismissAfter))
}

// moveFocus clamps and applies a new focus index, keeping the focused
// section scrolled into view.
func (m Model) moveFocus(idx int) Model {
	if idx < 0 {
		idx = 0
	}
	if idx > len(m.sections)-1 {
		idx = len(m.sections) - 1
	}
	m.focus = idx
	m = m.syncSections().refreshViewport()
	return m.scrollToFocus()
}

func (m Model) syncSections() Model {
	for i := range m.sections {
		id := m.sections[i].ID()
		m.sections[i] = m.sections[i].
			SetRunState(m.states[id]).
			SetFocused(i == m.focus)
	}
	return m
}

func (m Model) refreshViewport() Model {
	if !m.ready {
		return m
	}
	m.vp.SetContent(m.catalogView())
	return m
}

func (m Model) scrollToFocus() Model {
	if !m.ready {
		return m
	}

	offset := 0
	for i := 0; i < m.focus; i++ {
		offset += lipgloss.Height(m.sections[i].View()) + 1
	}

	focusedHeight := lipgloss.Height(m.sections[m.focus].View())
	if offset < m.vp.YOffset {
		m.vp.SetYOffset(offset)
	} else if bottom := offset + focusedHeight; bottom > m.vp.YOffset+m.vp.Height {
		m.vp.SetYOffset(bottom - m.vp.Height)
	}
	return m
}

func (m Model) catalogView() string {
	parts := make([]string, 0, len(m.sections)*2)
	for _, s := range m.sections {
		parts = append(parts, s.View(), "")
	}
	return strings.Join(parts[:len(parts)-1], "\n")
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	view := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.vp.View(), m.footerView())
	view = m.toaster.Overlay(view, m.width, m.height)

	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.logs.Overlay(view)
	return zone.Scan(view)
}

func (m Model) headerView() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor).
		Render("Agent Workflow Patterns")

	subtitle := lipgloss.NewStyle().
		Foreground(styles.TextMutedColor).
		Render(fmt.Sprintf("  %d patterns · %s theme", len(m.sections), m.themes.Preference()))

	return title + subtitle + "\n"
}

func (m Model) footerView() string {
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	linkStyle := lipgloss.NewStyle().Foreground(styles.LinkColor).Underline(true)

	links := make([]string, 0, len(docLinks))
	for _, l := range docLinks {
		links = append(links, linkStyle.Render(termenv.Hyperlink(l.url, l.title)))
	}

	hints := hintStyle.Render("j/k navigate · enter run · t theme · ? help · q quit")
	return "\n" + hints + "  " + strings.Join(links, hintStyle.Render(" · "))
}
