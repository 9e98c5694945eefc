package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the application configuration.
type Config struct {
	PhotoDirs   []string `koanf:"photo_dirs"   env:"SLIDES_PHOTO_DIRS"   envSeparator:","`                   // folders loaded at startup
	Watch       bool     `koanf:"watch"        env:"SLIDES_WATCH"`                                           // ingest new images appearing in PhotoDirs
	LoadSamples bool     `koanf:"load_samples" env:"SLIDES_LOAD_SAMPLES"`                                    // load the sample set when nothing else is given
	Icons       string   `koanf:"icons"        env:"SLIDES_ICONS"        validate:"oneof=nerd unicode none"` // glyph set
	DBPath      string   `koanf:"db_path"      env:"SLIDES_DB_PATH"`                                         // empty means the XDG data dir
	MPRIS       bool     `koanf:"mpris"        env:"SLIDES_MPRIS"`                                           // media keys control the slideshow (Linux)

	Log     LogConfig     `koanf:"log"`
	Palette PaletteConfig `koanf:"palette"`
	Notify  NotifyConfig  `koanf:"notify"`
	Theme   ThemeConfig   `koanf:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level" env:"SLIDES_LOG_LEVEL" validate:"oneof=trace debug info warn error disabled"` // zerolog level name (default: info)
	File  string `koanf:"file"  env:"SLIDES_LOG_FILE"`                                                        // empty means the XDG state dir
}

// PaletteConfig holds command palette settings.
type PaletteConfig struct {
	ExecuteDelayMS *int `koanf:"execute_delay_ms" env:"SLIDES_PALETTE_EXECUTE_DELAY_MS" validate:"omitempty,min=0,max=5000"` // unset: 100, 0 runs at once
}

// NotifyConfig holds toast notification settings.
type NotifyConfig struct {
	Seconds *int `koanf:"seconds" env:"SLIDES_NOTIFY_SECONDS" validate:"omitempty,min=1,max=60"` // unset: 3
	Desktop bool `koanf:"desktop" env:"SLIDES_NOTIFY_DESKTOP"`                                   // desktop notification for watched folder batches
}

// ThemeConfig holds theme engine settings.
type ThemeConfig struct {
	MaxTransitionMS int `koanf:"max_transition_ms" env:"SLIDES_THEME_MAX_TRANSITION_MS" validate:"min=0"` // 0 leaves transition speed unclamped
}

// Load reads the config files then applies SLIDES_* environment overrides.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order, later files overriding
// earlier ones, then applies environment overrides. Missing files are
// skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{
		Icons: "unicode",
		MPRIS: true,
		Log:   LogConfig{Level: "info"},
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Expand ~ in paths
	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Log.File = expandPath(cfg.Log.File)
	for i, dir := range cfg.PhotoDirs {
		cfg.PhotoDirs[i] = expandPath(dir)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/slides/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "slides", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Defaults for settings left out of every source.
const (
	DefaultExecuteDelay   = 100 * time.Millisecond
	DefaultNotifyDuration = 3 * time.Second
)

// ExecuteDelay returns the palette execute delay. An explicit 0 runs
// commands as soon as the palette closes.
func (c *Config) ExecuteDelay() time.Duration {
	if c.Palette.ExecuteDelayMS == nil {
		return DefaultExecuteDelay
	}
	return time.Duration(*c.Palette.ExecuteDelayMS) * time.Millisecond
}

// NotifyDuration returns how long toasts stay visible.
func (c *Config) NotifyDuration() time.Duration {
	if c.Notify.Seconds == nil {
		return DefaultNotifyDuration
	}
	return time.Duration(*c.Notify.Seconds) * time.Second
}

// HasWatch returns true if folder watching is enabled and there is
// something to watch.
func (c *Config) HasWatch() bool {
	return c.Watch && len(c.PhotoDirs) > 0
}
