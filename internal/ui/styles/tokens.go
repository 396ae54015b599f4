// Package styles contains Lip Gloss style definitions.
package styles

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens organized by category.
// These are the keys users can override in their config.
const (
	// Text hierarchy
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	// Borders
	TokenBorderDefault   ColorToken = "border.default"
	TokenBorderHighlight ColorToken = "border.highlight"

	// Status indicators
	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"
	TokenStatusRunning ColorToken = "status.running"

	// Diagram art
	TokenDiagramAccent ColorToken = "diagram.accent"

	// Buttons
	TokenButtonText       ColorToken = "button.text"
	TokenButtonPrimaryBg  ColorToken = "button.primary.bg"
	TokenButtonFocusBg    ColorToken = "button.primary.focus"
	TokenButtonDisabledBg ColorToken = "button.disabled.bg"

	// Overlays
	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	// Toast notifications
	TokenToastSuccess ColorToken = "toast.success"
	TokenToastInfo    ColorToken = "toast.info"

	// Footer links
	TokenLink ColorToken = "link"
)

// allTokens lists every valid token for config validation.
var allTokens = []ColorToken{
	TokenTextPrimary,
	TokenTextSecondary,
	TokenTextMuted,
	TokenTextDescription,
	TokenTextPlaceholder,
	TokenBorderDefault,
	TokenBorderHighlight,
	TokenStatusSuccess,
	TokenStatusWarning,
	TokenStatusError,
	TokenStatusRunning,
	TokenDiagramAccent,
	TokenButtonText,
	TokenButtonPrimaryBg,
	TokenButtonFocusBg,
	TokenButtonDisabledBg,
	TokenOverlayTitle,
	TokenOverlayBorder,
	TokenToastSuccess,
	TokenToastInfo,
	TokenLink,
}
