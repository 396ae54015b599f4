package overlay

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func background(width, height int) string {
	line := strings.Repeat(".", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func TestPlace_CenterOverlaysContent(t *testing.T) {
	bg := background(10, 5)
	out := Place(Config{Width: 10, Height: 5}, "XX", bg)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "....XX....", lines[2])
	assert.Equal(t, "..........", lines[0])
}

func TestPlace_BottomWithPadding(t *testing.T) {
	bg := background(10, 6)
	out := Place(Config{Width: 10, Height: 6, Position: Bottom, PadY: 1}, "XX", bg)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "....XX....", lines[4])
	assert.Equal(t, "..........", lines[5])
}

func TestPlace_PadsShortBackground(t *testing.T) {
	out := Place(Config{Width: 6, Height: 4}, "AB", "..")

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[1], "AB")
}

func TestPlace_ClampsNegativePosition(t *testing.T) {
	// Foreground wider than viewport still renders from column zero.
	out := Place(Config{Width: 2, Height: 1}, "WIDE", "..")
	assert.Contains(t, out, "WIDE")
}

func TestPlace_MultilineForeground(t *testing.T) {
	bg := background(8, 4)
	out := Place(Config{Width: 8, Height: 4}, "AA\nBB", bg)

	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "AA")
	assert.Contains(t, lines[2], "BB")
}
