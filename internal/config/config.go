// Package config provides configuration types and defaults for travis.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/EugeneDevastator/TraVis/internal/log"
)

// Provider kinds accepted in the topology.
const (
	KindComposite  = "composite"
	KindDisk       = "disk"
	KindFileSystem = "filesystem"
	KindWindows    = "windows"
)

// Config holds all configuration options for travis.
type Config struct {
	Topology            TopologyConfig   `mapstructure:"topology"`
	FileSystem          FileSystemConfig `mapstructure:"filesystem"`
	Disk                DiskConfig       `mapstructure:"disk"`
	Windows             WindowsConfig    `mapstructure:"windows"`
	Cache               CacheConfig      `mapstructure:"cache"`
	AutoRefresh         bool             `mapstructure:"auto_refresh"`
	AutoRefreshDebounce time.Duration    `mapstructure:"auto_refresh_debounce"`
	UI                  UIConfig         `mapstructure:"ui"`
	Tracing             TracingConfig    `mapstructure:"tracing"`
}

// TopologyConfig declares the provider registry and how the cursor moves
// between providers.
type TopologyConfig struct {
	Start     string           `mapstructure:"start"`
	Providers []ProviderConfig `mapstructure:"providers"`
}

// ProviderConfig declares one registry entry.
type ProviderConfig struct {
	ID       string   `mapstructure:"id"`
	Kind     string   `mapstructure:"kind"`     // composite, disk, filesystem or windows
	Parent   string   `mapstructure:"parent"`   // ascent target when ".." leaves the provider's root
	Child    string   `mapstructure:"child"`    // descent target for EndChild results
	Branches []string `mapstructure:"branches"` // composite only, in display order
}

// FileSystemConfig configures folder-tree providers.
type FileSystemConfig struct {
	StartPath  string `mapstructure:"start_path"`
	ShowHidden bool   `mapstructure:"show_hidden"`

	// Separator is appended to the selected name when descending into a
	// statically configured child. Default: the OS path separator.
	Separator string `mapstructure:"separator"`
}

// DiskConfig configures volume-list providers. A non-empty Volumes list
// replaces the mount table.
type DiskConfig struct {
	MountsFile string   `mapstructure:"mounts_file"`
	Volumes    []string `mapstructure:"volumes"`
}

// WindowsConfig configures window-list providers. A non-empty Titles list
// replaces the command.
type WindowsConfig struct {
	Command    []string `mapstructure:"command"`
	SkipFields int      `mapstructure:"skip_fields"`
	Titles     []string `mapstructure:"titles"`
}

// CacheConfig controls how long enumerations are reused.
type CacheConfig struct {
	// TTL of cached volume and window lists. Zero disables caching.
	TTL time.Duration `mapstructure:"ttl"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	ShowProvider  bool   `mapstructure:"show_provider"`
	ShowHelpBar   bool   `mapstructure:"show_help_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
}

// TracingConfig holds tracing configuration for cursor steps.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/travis/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// DefaultTracesFilePath returns ~/.config/travis/traces/traces.jsonl or an
// empty string if the home directory is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "travis", "traces", "traces.jsonl")
}

// DefaultTopology is a root composite over the volume list and the window
// list, with volumes descending into the folder tree.
func DefaultTopology() TopologyConfig {
	return TopologyConfig{
		Start: "Root",
		Providers: []ProviderConfig{
			{ID: "Root", Kind: KindComposite, Branches: []string{"Disk", "Windows"}},
			{ID: "Disk", Kind: KindDisk, Parent: "Root", Child: "FileSystem"},
			{ID: "FileSystem", Kind: KindFileSystem, Parent: "Disk"},
			{ID: "Windows", Kind: KindWindows, Parent: "Root"},
		},
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Topology: DefaultTopology(),
		FileSystem: FileSystemConfig{
			StartPath: string(filepath.Separator),
			Separator: string(filepath.Separator),
		},
		Disk: DiskConfig{
			MountsFile: "/proc/self/mounts",
		},
		Windows: WindowsConfig{
			Command:    []string{"wmctrl", "-l"},
			SkipFields: 3,
		},
		Cache: CacheConfig{
			TTL: 5 * time.Second,
		},
		AutoRefresh:         true,
		AutoRefreshDebounce: 300 * time.Millisecond,
		UI: UIConfig{
			ShowProvider:  true,
			ShowHelpBar:   true,
			MarkdownStyle: "dark",
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the whole configuration. Empty optional values use defaults.
func Validate(cfg Config) error {
	if err := ValidateTopology(cfg.Topology); err != nil {
		return err
	}
	if err := ValidateTracing(cfg.Tracing); err != nil {
		return err
	}
	if cfg.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %v", cfg.Cache.TTL)
	}
	if cfg.AutoRefreshDebounce < 0 {
		return fmt.Errorf("auto_refresh_debounce must not be negative, got %v", cfg.AutoRefreshDebounce)
	}
	if cfg.Windows.SkipFields < 0 {
		return fmt.Errorf("windows.skip_fields must not be negative, got %d", cfg.Windows.SkipFields)
	}
	switch cfg.UI.MarkdownStyle {
	case "", "dark", "light":
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", cfg.UI.MarkdownStyle)
	}
	return nil
}

// ValidateTopology checks that every provider is declared once with a known
// kind and that every reference names a declared provider.
func ValidateTopology(topo TopologyConfig) error {
	if len(topo.Providers) == 0 {
		return fmt.Errorf("topology.providers must declare at least one provider")
	}

	ids := make(map[string]bool, len(topo.Providers))
	for i, p := range topo.Providers {
		if p.ID == "" {
			return fmt.Errorf("topology provider %d: id is required", i)
		}
		if ids[p.ID] {
			return fmt.Errorf("topology provider %d: duplicate id %q", i, p.ID)
		}
		ids[p.ID] = true
	}

	for i, p := range topo.Providers {
		switch p.Kind {
		case KindComposite:
			if len(p.Branches) == 0 {
				return fmt.Errorf("topology provider %d (%s): composite needs at least one branch", i, p.ID)
			}
		case KindDisk, KindFileSystem, KindWindows:
			if len(p.Branches) > 0 {
				return fmt.Errorf("topology provider %d (%s): branches are only valid for composites", i, p.ID)
			}
		default:
			return fmt.Errorf("topology provider %d (%s): invalid kind %q (must be \"composite\", \"disk\", \"filesystem\" or \"windows\")", i, p.ID, p.Kind)
		}

		refs := append([]string{p.Parent, p.Child}, p.Branches...)
		for _, ref := range refs {
			if ref != "" && !ids[ref] {
				return fmt.Errorf("topology provider %d (%s): unknown provider %q", i, p.ID, ref)
			}
		}
	}

	if topo.Start == "" {
		return fmt.Errorf("topology.start is required")
	}
	if !ids[topo.Start] {
		return fmt.Errorf("topology.start names unknown provider %q", topo.Start)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled && tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Travis Configuration

# Provider topology. Each provider is one navigable namespace.
#   kind:     composite, disk, filesystem or windows
#   parent:   provider the cursor moves to when ".." leaves this provider's root
#   child:    provider the cursor moves to when a step selects a node of another
#             namespace (a volume, for example)
#   branches: composite only; shown as "<index>:<id>" at the composite root
topology:
  start: Root
  providers:
    - id: Root
      kind: composite
      branches: [Disk, Windows]
    - id: Disk
      kind: disk
      parent: Root
      child: FileSystem
    - id: FileSystem
      kind: filesystem
      parent: Disk
    - id: Windows
      kind: windows
      parent: Root

# Folder tree settings
filesystem:
  start_path: /
  show_hidden: false
  # separator: /         # Appended to a volume name when descending (default: OS separator)

# Volume list settings
disk:
  mounts_file: /proc/self/mounts
  # volumes: [/, /home]  # Fixed list instead of the mount table

# Window list settings
windows:
  command: [wmctrl, -l]
  skip_fields: 3         # Leading columns before the window title
  # titles: [Editor]     # Fixed list instead of the command

# How long volume and window lists are reused (0 disables caching)
cache:
  ttl: 5s

# Refresh the folder view when the current directory changes
auto_refresh: true
auto_refresh_debounce: 300ms

# UI settings
ui:
  show_provider: true    # Show the active provider next to the node name
  show_help_bar: true    # Show key hints at the bottom
  # markdown_style: dark # Help overlay style: "dark" (default) or "light"

# Tracing of cursor steps
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/travis/traces/traces.jsonl  # Output file for file exporter
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
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
