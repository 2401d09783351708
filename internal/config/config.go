package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/riordanpawley/weekplan/internal/types"
)

// Config file names looked up in the config directory, in order
const (
	JSONFile = "weekplan.json"
	TOMLFile = "weekplan.toml"
)

// Config represents the full planner configuration
type Config struct {
	Storage  StorageConfig  `json:"storage" toml:"storage" yaml:"storage"`
	Schedule ScheduleConfig `json:"schedule" toml:"schedule" yaml:"schedule"`
	UI       UIConfig       `json:"ui" toml:"ui" yaml:"ui"`
	Log      LogConfig      `json:"log" toml:"log" yaml:"log"`
}

// StorageConfig selects where tasks and the theme are kept
type StorageConfig struct {
	Backend string `json:"backend" toml:"backend" yaml:"backend"` // "file" or "sqlite"
	Dir     string `json:"dir" toml:"dir" yaml:"dir"`
}

// ScheduleConfig contains task store behavior
type ScheduleConfig struct {
	// StrictReassign rejects day moves that would overlap existing tasks.
	// When false, such moves succeed and are flagged with a warning.
	StrictReassign bool `json:"strictReassign" toml:"strictReassign" yaml:"strictReassign"`
}

// UIConfig contains terminal UI settings
type UIConfig struct {
	Theme          string `json:"theme" toml:"theme" yaml:"theme"`
	NotificationMs int    `json:"notificationMs" toml:"notificationMs" yaml:"notificationMs"`
	DisableMouse   bool   `json:"disableMouse" toml:"disableMouse" yaml:"disableMouse"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `json:"level" toml:"level" yaml:"level"`
	File  string `json:"file" toml:"file" yaml:"file"` // defaults to <storage.dir>/weekplan.log
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: "file",
			Dir:     DefaultDataDir(),
		},
		UI: UIConfig{
			Theme:          string(types.ThemeDark),
			NotificationMs: 3000,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultDataDir returns ~/.weekplan
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".weekplan"
	}
	return filepath.Join(home, ".weekplan")
}

// ConfigDir returns the directory searched for config files
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultDataDir()
	}
	return filepath.Join(dir, "weekplan")
}

// LogPath returns the log file path
func (c *Config) LogPath() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(c.Storage.Dir, "weekplan.log")
}

// Validate checks enumerated values
func (c *Config) Validate() error {
	var errs []error
	switch c.Storage.Backend {
	case "file", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("storage.backend must be \"file\" or \"sqlite\", got %q", c.Storage.Backend))
	}
	if !types.Theme(c.UI.Theme).Valid() {
		errs = append(errs, fmt.Errorf("ui.theme must be \"dark\" or \"light\", got %q", c.UI.Theme))
	}
	if c.UI.NotificationMs < 0 {
		errs = append(errs, fmt.Errorf("ui.notificationMs must not be negative"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// LoadConfig loads configuration with priority:
// 1. explicit path (JSON or TOML by extension), when not empty
// 2. weekplan.json in dir (with version migration support)
// 3. weekplan.toml in dir
// 4. Defaults
//
// It returns the file that was read, or "" when defaults were used.
func LoadConfig(dir, explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := loadFile(explicit)
		if err != nil {
			return nil, "", err
		}
		return MergeWithDefaults(cfg), explicit, nil
	}

	for _, name := range []string{JSONFile, TOMLFile} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return nil, "", err
		}
		return MergeWithDefaults(cfg), path, nil
	}

	return DefaultConfig(), "", nil
}

func loadFile(path string) (*Config, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var cfg Config
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys in %s: %s", filepath.Base(path), strings.Join(keys, ", "))
		}
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg, err := ParseVersionedConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return cfg, nil
}

// SaveConfig saves configuration to path. A .toml path is written as
// TOML; anything else as JSON with version information.
func SaveConfig(cfg *Config, path string) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		data = buf.Bytes()
	} else {
		var err error
		data, err = MarshalVersionedConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// MergeWithDefaults fills in missing values with defaults
func MergeWithDefaults(cfg *Config) *Config {
	defaults := DefaultConfig()

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = defaults.Storage.Backend
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = defaults.Storage.Dir
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.NotificationMs == 0 {
		cfg.UI.NotificationMs = defaults.UI.NotificationMs
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaults.Log.Level
	}

	return cfg
}

// Load reads config from the user config directory (or explicit, when
// set), applies environment overrides and validates the result.
func Load(explicit string) (*Config, string, error) {
	cfg, path, err := LoadConfig(ConfigDir(), explicit)
	if err != nil {
		return nil, "", err
	}
	if err := ApplyEnv(cfg, os.LookupEnv); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}
