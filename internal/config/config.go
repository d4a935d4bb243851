// Package config loads runtime configuration for inputkit.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frudas24/inputkit/internal/wininput"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	defaultClickHoldMs  = 100
	defaultDragPressMs  = 100
	defaultDragSettleMs = 500
	defaultLogLevel     = "info"
	defaultLogFormat    = "console"
	defaultListenAddr   = "127.0.0.1:8788"

	envPrefix  = "INPUTKIT"
	configName = "inputkit"
)

// Config holds runtime configuration values.
type Config struct {
	ClickHoldMs  int    `mapstructure:"click_hold_ms" yaml:"click_hold_ms"`
	DragPressMs  int    `mapstructure:"drag_press_ms" yaml:"drag_press_ms"`
	DragSettleMs int    `mapstructure:"drag_settle_ms" yaml:"drag_settle_ms"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
	LogFormat    string `mapstructure:"log_format" yaml:"log_format"`
	ListenAddr   string `mapstructure:"listen_addr" yaml:"listen_addr"`
	Password     string `mapstructure:"password" yaml:"password,omitempty"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		ClickHoldMs:  defaultClickHoldMs,
		DragPressMs:  defaultDragPressMs,
		DragSettleMs: defaultDragSettleMs,
		LogLevel:     defaultLogLevel,
		LogFormat:    defaultLogFormat,
		ListenAddr:   defaultListenAddr,
	}
}

// Load reads configuration from cfgFile (or inputkit.yaml in the config dir or
// working directory when empty) and INPUTKIT_* environment variables.
// A missing default file is not an error; a missing explicit file is.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("click_hold_ms", def.ClickHoldMs)
	v.SetDefault("drag_press_ms", def.DragPressMs)
	v.SetDefault("drag_settle_ms", def.DragSettleMs)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("listen_addr", def.ListenAddr)
	v.SetDefault("password", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		if dir := Dir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.Password = strings.TrimSpace(cfg.Password)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.ClickHoldMs < 0 {
		return fmt.Errorf("click_hold_ms must be >= 0")
	}
	if c.DragPressMs < 0 {
		return fmt.Errorf("drag_press_ms must be >= 0")
	}
	if c.DragSettleMs < 0 {
		return fmt.Errorf("drag_settle_ms must be >= 0")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be debug, info, warn or error")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json")
	}
	return nil
}

// ValidateServe checks the extra values required by the control server.
func (c Config) ValidateServe() error {
	if strings.TrimSpace(c.ListenAddr) == "" {
		return errors.New("listen_addr is required")
	}
	if c.Password == "" {
		return errors.New("password is required (set INPUTKIT_PASSWORD)")
	}
	return nil
}

// Delays converts the configured millisecond values into injector timing.
func (c Config) Delays() wininput.Delays {
	return wininput.Delays{
		ClickHold:  time.Duration(c.ClickHoldMs) * time.Millisecond,
		DragPress:  time.Duration(c.DragPressMs) * time.Millisecond,
		DragSettle: time.Duration(c.DragSettleMs) * time.Millisecond,
	}
}

// Save writes cfg as yaml, creating parent directories as needed.
// The password is never written.
func Save(path string, cfg Config) error {
	cfg.Password = ""
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Dir returns the per-user config directory, or "" if it cannot be resolved.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "inputkit")
}

// DefaultPath returns the file written by "config init" when no path is given.
func DefaultPath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, configName+".yaml")
	}
	return configName + ".yaml"
}
