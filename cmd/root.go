package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/EugeneDevastator/TraVis/internal/config"
	"github.com/EugeneDevastator/TraVis/internal/log"
	"github.com/EugeneDevastator/TraVis/internal/pubsub"
	"github.com/EugeneDevastator/TraVis/internal/ui/browser"
	"github.com/EugeneDevastator/TraVis/internal/watcher"
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

const localConfigPath = ".travis/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	timeout   time.Duration
	cfg       config.Config
	cfgErr    error
)

var rootCmd = &cobra.Command{
	Use:   "travis",
	Short: "Browse disks, folders and windows as one tree",
	Long: `travis walks heterogeneous hierarchies (mounted volumes, folder trees,
open windows) with a single cursor. Providers are wired together in the
topology section of the config file.

Keys: enter/l open, backspace/h go up, : cd prompt, r refresh, ? help, q quit.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runBrowser,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .travis/config.yaml, then ~/.config/travis/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug logs (also TRAVIS_DEBUG=1; path from TRAVIS_LOG)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second,
		"bound on every provider call")
	rootCmd.PersistentFlags().String("start", "",
		"provider the cursor starts on (overrides topology.start)")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable reloading when the current directory changes")

	_ = viper.BindPFlag("topology.start", rootCmd.PersistentFlags().Lookup("start"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("filesystem.start_path", defaults.FileSystem.StartPath)
	viper.SetDefault("filesystem.separator", defaults.FileSystem.Separator)
	viper.SetDefault("disk.mounts_file", defaults.Disk.MountsFile)
	viper.SetDefault("windows.command", defaults.Windows.Command)
	viper.SetDefault("windows.skip_fields", defaults.Windows.SkipFields)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("auto_refresh_debounce", defaults.AutoRefreshDebounce)
	viper.SetDefault("ui.show_provider", defaults.UI.ShowProvider)
	viper.SetDefault("ui.show_help_bar", defaults.UI.ShowHelpBar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .travis/config.yaml (current directory)
		// 2. ~/.config/travis/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "travis"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			cfgErr = fmt.Errorf("reading config: %w", err)
			return
		}
		// No config file found anywhere - create default at .travis/config.yaml
		if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
			viper.SetConfigFile(localConfigPath)
			_ = viper.ReadInConfig()
		}
		// If write fails, just continue with defaults (no config file)
	}

	cfg = config.Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		cfgErr = fmt.Errorf("decoding config: %w", err)
		return
	}
	if len(cfg.Topology.Providers) == 0 {
		start := cfg.Topology.Start
		cfg.Topology = config.DefaultTopology()
		if start != "" {
			cfg.Topology.Start = start
		}
	}
	cfgErr = nil
}

// loadedConfig returns the validated configuration.
func loadedConfig() (config.Config, error) {
	if cfgErr != nil {
		return config.Config{}, cfgErr
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func runBrowser(cmd *cobra.Command, _ []string) error {
	c, err := loadedConfig()
	if err != nil {
		return err
	}
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		c.AutoRefresh = false
	}

	s, err := openSession(c)
	if err != nil {
		return err
	}
	defer s.Close()

	bcfg := browser.Config{
		Cursor:        s.cursor,
		Registry:      s.nav,
		Timeout:       timeout,
		ShowProvider:  c.UI.ShowProvider,
		ShowHelpBar:   c.UI.ShowHelpBar,
		MarkdownStyle: c.UI.MarkdownStyle,
	}

	if c.AutoRefresh {
		broker := pubsub.NewBroker[string]()
		defer broker.Close()

		w, err := watcher.New(watcher.Config{DebounceDur: c.AutoRefreshDebounce}, broker)
		if err != nil {
			log.Warn(log.CatWatcher, "Auto refresh disabled", "error", err)
		} else if err := w.Start(); err != nil {
			log.Warn(log.CatWatcher, "Auto refresh disabled", "error", err)
			_ = w.Stop()
		} else {
			defer func() { _ = w.Stop() }()
			bcfg.Watcher = w
			bcfg.Events = broker
		}
	}

	model := browser.New(bcfg)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
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
