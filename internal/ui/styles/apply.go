// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
// This avoids import cycles (styles can't import ui packages, but they can
// register).
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on
// styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// ApplyTheme applies per-token color overrides and rebuilds the derived
// Style values. Unknown tokens and malformed hex colors are rejected.
func ApplyTheme(colors map[string]string) error {
	for key, value := range colors {
		if !isValidToken(ColorToken(key)) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
	}

	applyColors(colors)
	rebuildStyles()
	return nil
}

func applyColors(colors map[string]string) {
	// Overrides apply to both modes; adaptive pairs are a default-theme
	// affordance only.
	makeColor := func(hex string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: hex, Dark: hex}
	}

	targets := map[ColorToken]*lipgloss.AdaptiveColor{
		TokenTextPrimary:      &TextPrimaryColor,
		TokenTextSecondary:    &TextSecondaryColor,
		TokenTextMuted:        &TextMutedColor,
		TokenTextDescription:  &TextDescriptionColor,
		TokenTextPlaceholder:  &TextPlaceholderColor,
		TokenBorderDefault:    &BorderDefaultColor,
		TokenBorderHighlight:  &BorderHighlightFocusColor,
		TokenStatusSuccess:    &StatusSuccessColor,
		TokenStatusWarning:    &StatusWarningColor,
		TokenStatusError:      &StatusErrorColor,
		TokenStatusRunning:    &StatusRunningColor,
		TokenDiagramAccent:    &DiagramAccentColor,
		TokenButtonText:       &ButtonTextColor,
		TokenButtonPrimaryBg:  &ButtonPrimaryBgColor,
		TokenButtonFocusBg:    &ButtonFocusBgColor,
		TokenButtonDisabledBg: &ButtonDisabledBgColor,
		TokenOverlayTitle:     &OverlayTitleColor,
		TokenOverlayBorder:    &OverlayBorderColor,
		TokenToastSuccess:     &ToastBorderSuccessColor,
		TokenToastInfo:        &ToastBorderInfoColor,
		TokenLink:             &LinkColor,
	}

	for key, hex := range colors {
		if target, ok := targets[ColorToken(key)]; ok {
			*target = makeColor(hex)
		}
	}
}

func isValidToken(token ColorToken) bool {
	for _, t := range allTokens {
		if t == token {
			return true
		}
	}
	return false
}

// isValidHexColor accepts #RGB and #RRGGBB.
func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	digits := s[1:]
	if len(digits) != 3 && len(digits) != 6 {
		return false
	}
	_, err := strconv.ParseUint(digits, 16, 32)
	return err == nil
}
