// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"} // Ordinals, secondary info
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#696969"} // Hints, help text, footers
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"} // Description/body text
	TextPlaceholderColor = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#777777"} // Output placeholder

	// Semantic color names - Border
	BorderDefaultColor        = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"} // Unfocused borders
	BorderHighlightFocusColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // Focused section border

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Completed runs
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors
	StatusRunningColor = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"} // In-flight runs

	// Diagram art accent
	DiagramAccentColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Button colors
	ButtonTextColor        = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}
	ButtonPrimaryBgColor   = lipgloss.AdaptiveColor{Light: "#1A5276", Dark: "#1A5276"}
	ButtonFocusBgColor     = lipgloss.AdaptiveColor{Light: "#3498DB", Dark: "#3498DB"}
	ButtonDisabledBgColor  = lipgloss.AdaptiveColor{Light: "#2D2D2D", Dark: "#2D2D2D"}
	ButtonDisabledFgColor  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#8A8A8A"}

	// Overlay colors
	OverlayTitleColor  = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#C9C9C9"}
	OverlayBorderColor = lipgloss.AdaptiveColor{Light: "#8C8C8C", Dark: "#8C8C8C"}

	// Toast notification colors
	ToastBorderSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	ToastBorderInfoColor    = lipgloss.AdaptiveColor{Light: "#54A0FF", Dark: "#54A0FF"}

	// Footer hyperlink color
	LinkColor = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"}
)

// Button styles rebuilt by rebuildStyles after theme overrides apply.
var (
	baseButtonStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle lipgloss.Style

	PrimaryButtonFocusedStyle lipgloss.Style

	DisabledButtonStyle lipgloss.Style
)

func init() {
	rebuildStyles()
}

// rebuildStyles reconstructs the derived Style values from the current
// color variables.
func rebuildStyles() {
	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	DisabledButtonStyle = baseButtonStyle.
		Foreground(ButtonDisabledFgColor).
		Background(ButtonDisabledBgColor)

	for _, fn := range styleRebuilders {
		fn()
	}
}
