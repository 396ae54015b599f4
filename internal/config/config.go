// Package config provides configuration types and defaults for agents.
package config

import (
	"fmt"

	"github.com/lessuselesss/agents/internal/tracing"
)

// Config holds all configuration options for agents.
type Config struct {
	// AutoReload re-applies theme overrides when the config file changes.
	AutoReload bool           `mapstructure:"auto_reload"`
	UI         UIConfig       `mapstructure:"ui"`
	Theme      ThemeConfig    `mapstructure:"theme"`
	Sim        SimConfig      `mapstructure:"sim"`
	Tracing    tracing.Config `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowDiagrams bool `mapstructure:"show_diagrams"` // Render pattern diagrams in each section
}

// SimConfig holds simulation engine configuration.
type SimConfig struct {
	// DelayMS is the fixed duration of a simulated run in milliseconds.
	DelayMS int `mapstructure:"delay_ms"`
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Mode forces light or dark mode. If empty, uses terminal detection.
	// Valid values: "light", "dark", ""
	Mode string `mapstructure:"mode"`

	// Colors allows overriding individual color tokens.
	// Supports both nested YAML structure and dot notation.
	// Example YAML:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	// Or quoted dot notation:
	//   colors:
	//     "text.primary": "#FF0000"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
// This handles both nested YAML structures and already-flat keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

// flattenColors recursively flattens a nested map into dot-notation keys.
func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		AutoReload: true,
		UI: UIConfig{
			ShowDiagrams: true,
		},
		Theme: ThemeConfig{
			Mode: "",
		},
		Sim: SimConfig{
			DelayMS: 2000,
		},
		Tracing: tracing.DefaultConfig(),
	}
}

// Validate checks configuration values that viper cannot.
func Validate(cfg Config) error {
	switch cfg.Theme.Mode {
	case "", "light", "dark":
	default:
		return fmt.Errorf("invalid theme.mode %q: must be \"light\", \"dark\", or empty", cfg.Theme.Mode)
	}

	if cfg.Sim.DelayMS <= 0 {
		return fmt.Errorf("invalid sim.delay_ms %d: must be positive", cfg.Sim.DelayMS)
	}

	switch cfg.Tracing.Exporter {
	case "", "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("invalid tracing.exporter %q", cfg.Tracing.Exporter)
	}

	return nil
}
