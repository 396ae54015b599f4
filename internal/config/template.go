package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lessuselesss/agents/internal/log"
)

// DefaultConfigTemplate returns the commented YAML written for new installs.
// Values here must stay in sync with Defaults().
func DefaultConfigTemplate() string {
	return `# agents configuration

# Re-apply theme color overrides when this file changes.
auto_reload: true

ui:
  # Render the box-drawing diagram inside each pattern section.
  show_diagrams: true

theme:
  # Force light or dark mode. Leave empty to detect from the terminal.
  mode: ""
  # Override individual color tokens, e.g.:
  # colors:
  #   text:
  #     primary: "#FF0000"

sim:
  # Duration of a simulated run in milliseconds.
  delay_ms: 2000

tracing:
  # Record a span per simulated run.
  enabled: false
  # Exporter: "none", "file", "stdout", or "otlp".
  exporter: "file"
  # Output file for the "file" exporter. Empty derives from the config dir.
  file_path: ""
  # Collector endpoint for the "otlp" exporter.
  otlp_endpoint: "localhost:4317"
  # Fraction of runs to sample (1.0 = all).
  sample_rate: 1.0
  # Service name attached to exported spans.
  service_name: "agents-sim"
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments. Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
