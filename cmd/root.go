package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lessuselesss/agents/internal/app"
	"github.com/lessuselesss/agents/internal/config"
	"github.com/lessuselesss/agents/internal/log"
	"github.com/lessuselesss/agents/internal/sim"
	"github.com/lessuselesss/agents/internal/theme"
	"github.com/lessuselesss/agents/internal/tracing"
	"github.com/lessuselesss/agents/internal/ui/styles"
	"github.com/lessuselesss/agents/internal/watcher"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugMode bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "agents",
	Short:   "A terminal demo of agent workflow patterns",
	Long: `A terminal user interface demonstrating five agent orchestration patterns
(sequential chaining, routing, parallelization, orchestrator-workers, and
evaluator-optimizer) with simulated runs.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/agents/config.yaml)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false,
		"write structured debug logs to .agents/debug.log")
	rootCmd.Flags().String("theme", "",
		"force theme mode: light or dark (default: terminal detection)")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"disable automatic theme reload when the config file changes")

	_ = viper.BindPFlag("theme.mode", rootCmd.Flags().Lookup("theme"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("ui.show_diagrams", defaults.UI.ShowDiagrams)
	viper.SetDefault("theme.mode", defaults.Theme.Mode)
	viper.SetDefault("sim.delay_ms", defaults.Sim.DelayMS)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)
	viper.SetDefault("tracing.service_name", defaults.Tracing.ServiceName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .agents/config.yaml (current directory)
		// 2. ~/.config/agents/config.yaml (user config)
		if _, err := os.Stat(".agents/config.yaml"); err == nil {
			viper.SetConfigFile(".agents/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "agents"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .agents/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".agents/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// reloadConfig re-reads the config file for the auto-reload path.
func reloadConfig() (config.Config, error) {
	if err := viper.ReadInConfig(); err != nil {
		return config.Config{}, fmt.Errorf("re-reading config: %w", err)
	}

	var fresh config.Config
	if err := viper.Unmarshal(&fresh); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := config.Validate(fresh); err != nil {
		return config.Config{}, err
	}
	return fresh, nil
}

func runApp(cmd *cobra.Command, args []string) error {
	if noReload, _ := cmd.Flags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		configFilePath = ".agents/config.yaml"
	}

	debug := debugMode || os.Getenv("AGENTS_DEBUG") != ""
	if debug {
		logPath := filepath.Join(filepath.Dir(configFilePath), "debug.log")
		cleanup, err := log.InitWithTeaLog(logPath, "agents")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		defer cleanup()
		if level, ok := log.ParseLevel(os.Getenv("AGENTS_LOG_LEVEL")); ok {
			log.SetMinLevel(level)
		}
		log.Info(log.CatConfig, "starting", "version", version, "config", configFilePath)
	}

	if err := styles.ApplyTheme(cfg.Theme.FlattenedColors()); err != nil {
		return fmt.Errorf("invalid theme colors: %w", err)
	}

	controller := theme.Detect(cfg.Theme.Mode)

	tracingCfg := cfg.Tracing
	if tracingCfg.Enabled && tracingCfg.Exporter == "file" && tracingCfg.FilePath == "" {
		tracingCfg.FilePath = filepath.Join(filepath.Dir(configFilePath), "traces.jsonl")
	}
	provider, err := tracing.NewProvider(tracingCfg)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = provider.Shutdown(ctx)
	}()

	engine := sim.NewEngine(time.Duration(cfg.Sim.DelayMS) * time.Millisecond)
	if provider.Enabled() {
		engine = engine.WithTracer(provider.Tracer())
	}

	// Watch the config file so theme edits apply without a restart.
	var configWatcher *watcher.Watcher
	if cfg.AutoReload {
		if _, statErr := os.Stat(configFilePath); statErr == nil {
			if w, werr := watcher.New(watcher.DefaultConfig(configFilePath)); werr == nil {
				if startErr := w.Start(); startErr == nil {
					configWatcher = w
				} else {
					_ = w.Stop()
				}
			}
			// The app works fine without auto-reload, so watcher init
			// failures are not fatal.
		}
	}

	zone.NewGlobal()
	defer zone.Close()

	model := app.New(app.Config{
		AppConfig:  cfg,
		Engine:     engine,
		Theme:      controller,
		Watcher:    configWatcher,
		ReloadConf: reloadConfig,
		Debug:      debug,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	model.Close()
	if configWatcher != nil {
		_ = configWatcher.Stop()
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
