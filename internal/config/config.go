// Package config loads and saves application configuration for the demo
// binaries. The specified state core is configuration-free; this layer only
// feeds the apps their starting values and presentation preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Counter CounterConfig
	Todo    TodoConfig
}

// UIConfig holds presentation settings shared by all apps.
type UIConfig struct {
	Timezone    string
	AccentColor string `mapstructure:"accent_color"`
	DateFormat  string `mapstructure:"date_format"`
}

// CounterConfig holds counter app settings.
type CounterConfig struct {
	Start int
}

// TodoConfig holds to-do app settings.
type TodoConfig struct {
	WarnSimilar bool `mapstructure:"warn_similar"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// SAMTUI_; an absent config file is fine, defaults apply.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.timezone", "Local")
	v.SetDefault("ui.accent_color", "#f5c2e7")
	v.SetDefault("ui.date_format", "02/01 15:04")
	v.SetDefault("counter.start", 0)
	v.SetDefault("todo.warn_similar", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SAMTUI_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "samtui"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SAMTUI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed.
func Save(cfg Config) error {
	path := os.Getenv("SAMTUI_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "samtui", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.accent_color", cfg.UI.AccentColor)
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("counter.start", cfg.Counter.Start)
	v.Set("todo.warn_similar", cfg.Todo.WarnSimilar)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
