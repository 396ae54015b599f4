package help

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessuselesss/agents/internal/keys"
	"github.com/lessuselesss/agents/internal/ui/styles"
)

func TestView_ContainsAllBindings(t *testing.T) {
	m := New(keys.DefaultKeyMap()).SetSize(100, 40)
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "Keybindings")
	assert.Contains(t, view, "Navigation")
	assert.Contains(t, view, "Actions")
	assert.Contains(t, view, "General")

	for _, b := range keys.DefaultKeyMap().Bindings() {
		assert.Contains(t, view, b.Help().Desc)
	}
}

func TestView_ContainsCloseHint(t *testing.T) {
	m := New(keys.DefaultKeyMap()).SetSize(100, 40)

	assert.Contains(t, ansi.Strip(m.View()), "Press ? or Esc to close")
}

func TestApplyTheme_RebuildsCachedStyles(t *testing.T) {
	prevTitle := styles.OverlayTitleColor
	prevBorder := styles.OverlayBorderColor
	t.Cleanup(func() {
		styles.OverlayTitleColor = prevTitle
		styles.OverlayBorderColor = prevBorder
		rebuildStyles()
	})

	require.NoError(t, styles.ApplyTheme(map[string]string{
		"overlay.title":  "#ABCDEF",
		"overlay.border": "#123456",
	}))

	title, ok := titleStyle.GetForeground().(lipgloss.AdaptiveColor)
	require.True(t, ok)
	assert.Equal(t, "#ABCDEF", title.Dark)
	assert.Equal(t, "#ABCDEF", title.Light)

	border, ok := dividerStyle.GetForeground().(lipgloss.AdaptiveColor)
	require.True(t, ok)
	assert.Equal(t, "#123456", border.Dark)
}

func TestOverlay_PlacesBoxOverBackground(t *testing.T) {
	m := New(keys.DefaultKeyMap()).SetSize(100, 40)
	bg := strings.Repeat(strings.Repeat(".", 100)+"\n", 40)
	bg = strings.TrimSuffix(bg, "\n")

	result := ansi.Strip(m.Overlay(bg))

	assert.Contains(t, result, "Keybindings")
	assert.Contains(t, result, ".")
}
