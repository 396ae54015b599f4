// Package theme owns the light/dark preference. The ambient terminal
// background is read exactly once at startup; toggling flips the preference
// and re-propagates it to the lipgloss renderer so every adaptive color
// re-resolves on the next render. The preference is never persisted - a
// restart re-detects the terminal.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lessuselesss/agents/internal/log"
)

// Preference is the chosen color scheme.
type Preference int

const (
	Light Preference = iota
	Dark
)

func (p Preference) String() string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// Controller holds the current theme preference.
type Controller struct {
	pref Preference
}

// Detect initializes the controller. mode forces "light" or "dark"; when
// empty, the terminal background is queried once via lipgloss. There is no
// ongoing subscription to background changes.
func Detect(mode string) Controller {
	var pref Preference
	switch mode {
	case "dark":
		pref = Dark
	case "light":
		pref = Light
	default:
		if lipgloss.HasDarkBackground() {
			pref = Dark
		}
	}

	c := Controller{pref: pref}
	c.propagate()
	log.Debug(log.CatTheme, "theme detected", "preference", pref, "forced", mode != "")
	return c
}

// Preference returns the current choice.
func (c Controller) Preference() Preference {
	return c.pref
}

// IsDark reports whether the dark scheme is active.
func (c Controller) IsDark() bool {
	return c.pref == Dark
}

// MarkdownStyle returns the glamour style name for the current preference.
func (c Controller) MarkdownStyle() string {
	return c.pref.String()
}

// Toggle flips the preference and re-propagates it.
func (c Controller) Toggle() Controller {
	if c.pref == Dark {
		c.pref = Light
	} else {
		c.pref = Dark
	}
	c.propagate()
	log.Debug(log.CatTheme, "theme toggled", "preference", c.pref)
	return c
}

// propagate reflects the preference into the renderer-level background
// flag so adaptive colors re-resolve on the next render.
func (c Controller) propagate() {
	lipgloss.SetHasDarkBackground(c.pref == Dark)
}
