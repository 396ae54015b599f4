package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommand_Flags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.Flags().Lookup("debug"))
	assert.NotNil(t, rootCmd.Flags().Lookup("theme"))
	assert.NotNil(t, rootCmd.Flags().Lookup("no-auto-reload"))
}

func TestReloadConfig_ValidFile(t *testing.T) {
	path := writeConfig(t, `
auto_reload: true
ui:
  show_diagrams: false
theme:
  mode: light
sim:
  delay_ms: 1500
`)
	viper.SetConfigFile(path)

	fresh, err := reloadConfig()
	require.NoError(t, err)

	assert.True(t, fresh.AutoReload)
	assert.False(t, fresh.UI.ShowDiagrams)
	assert.Equal(t, "light", fresh.Theme.Mode)
	assert.Equal(t, 1500, fresh.Sim.DelayMS)
}

func TestReloadConfig_RejectsInvalidDelay(t *testing.T) {
	path := writeConfig(t, `
sim:
  delay_ms: -5
`)
	viper.SetConfigFile(path)

	_, err := reloadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delay_ms")
}

func TestReloadConfig_RejectsInvalidThemeMode(t *testing.T) {
	path := writeConfig(t, `
theme:
  mode: sepia
sim:
  delay_ms: 2000
`)
	viper.SetConfigFile(path)

	_, err := reloadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "theme.mode")
}

func TestReloadConfig_MissingFile(t *testing.T) {
	viper.SetConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := reloadConfig()
	require.Error(t, err)
}

func TestReloadConfig_ThemeColorOverrides(t *testing.T) {
	path := writeConfig(t, `
sim:
  delay_ms: 2000
theme:
  colors:
    text:
      primary: "#FF0000"
`)
	viper.SetConfigFile(path)

	fresh, err := reloadConfig()
	require.NoError(t, err)

	colors := fresh.Theme.FlattenedColors()
	assert.Equal(t, "#FF0000", colors["text.primary"])
}
