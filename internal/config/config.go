package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dshills/shortcuts/internal/input/keymap"
)

// EnvPrefix prefixes environment overrides, e.g. SHORTCUTS_LOG_LEVEL.
const EnvPrefix = "SHORTCUTS"

// Setting keys.
const (
	KeyDebug         = "debug"
	KeyLogLevel      = "log_level"
	KeyLogFile       = "log_file"
	KeyBindings      = "bindings"
	KeyWatch         = "watch"
	KeyWatchDebounce = "watch_debounce"
)

// Config holds the runtime settings.
type Config struct {
	// Debug logs every registration and dispatch step.
	Debug bool `mapstructure:"debug"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`

	// LogFile receives log output. Empty means stderr.
	LogFile string `mapstructure:"log_file"`

	// Bindings is a TOML or YAML bindings file layered over the defaults.
	Bindings string `mapstructure:"bindings"`

	// Watch reloads Bindings when the file changes.
	Watch bool `mapstructure:"watch"`

	// WatchDebounce is how long writes must settle before a reload.
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		LogLevel:      "info",
		WatchDebounce: keymap.DefaultDebounce,
	}
}

// SetDefaults registers the defaults on v. Every key needs a default for
// environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault(KeyDebug, d.Debug)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFile, d.LogFile)
	v.SetDefault(KeyBindings, d.Bindings)
	v.SetDefault(KeyWatch, d.Watch)
	v.SetDefault(KeyWatchDebounce, d.WatchDebounce)
}

// UserConfigDir returns ~/.config/shortcuts, or "" when there is no home.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "shortcuts")
}

// Load reads configuration into v and decodes it.
//
// With an explicit path the file must exist. Otherwise config.{yaml,toml}
// is looked up in the user config directory and may be absent.
// Environment variables prefixed SHORTCUTS_ override the file, and flags
// bound to v by the caller override both.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if dir := UserConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, &ParseError{Path: path, Err: err}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel))
	}
	if c.Bindings != "" {
		if _, err := keymap.FormatOf(c.Bindings); err != nil {
			errs = append(errs, fmt.Errorf("bindings: %w", err))
		}
	}
	if c.Watch && c.Bindings == "" {
		errs = append(errs, ErrWatchWithoutBindings)
	}
	if c.WatchDebounce < 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidDebounce, c.WatchDebounce))
	}
	return errors.Join(errs...)
}
