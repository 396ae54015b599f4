package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTheme_OverridesToken(t *testing.T) {
	original := TextPrimaryColor
	defer func() {
		TextPrimaryColor = original
		rebuildStyles()
	}()

	err := ApplyTheme(map[string]string{"text.primary": "#FF0000"})

	require.NoError(t, err)
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF0000"}, TextPrimaryColor)
}

func TestApplyTheme_RejectsUnknownToken(t *testing.T) {
	err := ApplyTheme(map[string]string{"text.bogus": "#FF0000"})
	assert.ErrorContains(t, err, "unknown color token")
}

func TestApplyTheme_RejectsInvalidHex(t *testing.T) {
	for _, bad := range []string{"red", "#GG0000", "#12345", "123456"} {
		err := ApplyTheme(map[string]string{"text.primary": bad})
		assert.ErrorContains(t, err, "invalid hex color", "value %q", bad)
	}
}

func TestApplyTheme_ValidatesBeforeApplying(t *testing.T) {
	original := TextPrimaryColor
	defer func() {
		TextPrimaryColor = original
		rebuildStyles()
	}()

	// One valid and one invalid entry: nothing should apply.
	err := ApplyTheme(map[string]string{
		"text.primary": "#FF0000",
		"text.bogus":   "#00FF00",
	})

	require.Error(t, err)
	assert.Equal(t, original, TextPrimaryColor)
}

func TestApplyTheme_ShortHexAccepted(t *testing.T) {
	original := LinkColor
	defer func() {
		LinkColor = original
		rebuildStyles()
	}()

	err := ApplyTheme(map[string]string{"link": "#F00"})
	require.NoError(t, err)
	assert.Equal(t, "#F00", LinkColor.Dark)
}

func TestRegisterStyleRebuilder_CalledOnApply(t *testing.T) {
	called := false
	RegisterStyleRebuilder(func() { called = true })

	require.NoError(t, ApplyTheme(nil))
	assert.True(t, called)
}
