package panes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorderedPane_Dimensions(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "hello",
		Width:   20,
		Height:  5,
	})

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	for i, line := range lines {
		assert.Equal(t, 20, lipgloss.Width(line), "line %d width", i)
	}
}

func TestBorderedPane_CornersAndContent(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "hello",
		Width:   20,
		Height:  4,
	})

	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╮")
	assert.Contains(t, out, "╰")
	assert.Contains(t, out, "╯")
	assert.Contains(t, out, "hello")
}

func TestBorderedPane_TopLeftTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "body",
		Width:   30,
		Height:  4,
		TopLeft: "1. Sequential Chaining",
	})

	top := strings.Split(out, "\n")[0]
	assert.Contains(t, ansi.Strip(top), "1. Sequential Chaining")
}

func TestBorderedPane_DualTitles(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content:  "body",
		Width:    40,
		Height:   4,
		TopLeft:  "Left",
		TopRight: "Right",
	})

	top := ansi.Strip(strings.Split(out, "\n")[0])
	assert.Contains(t, top, "Left")
	assert.Contains(t, top, "Right")
	assert.Equal(t, 40, lipgloss.Width(strings.Split(out, "\n")[0]))
}

func TestBorderedPane_TruncatesLongTitle(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "body",
		Width:   16,
		Height:  4,
		TopLeft: "A very long title that cannot fit",
	})

	top := strings.Split(out, "\n")[0]
	assert.Equal(t, 16, lipgloss.Width(top))
	assert.Contains(t, ansi.Strip(top), "…")
}

func TestBorderedPane_NarrowWidthDoesNotPanic(t *testing.T) {
	out := BorderedPane(BorderConfig{
		Content: "x",
		Width:   2,
		Height:  3,
		TopLeft: "Title",
	})
	assert.NotEmpty(t, out)
}
