// Package config loads sdlgo-bridge settings with Viper.
//
// Precedence, highest first: command-line flags bound by the caller,
// SDLGO_* environment variables, the sdlgo-bridge.toml file, defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the sdlgo-bridge configuration
type Config struct {
	Stress StressConfig `mapstructure:"stress"`
	Log    LogConfig    `mapstructure:"log"`
	SDL    SDLConfig    `mapstructure:"sdl"`
}

// StressConfig sizes the registry stress run
type StressConfig struct {
	Workers    int   `mapstructure:"workers"`
	Iterations int   `mapstructure:"iterations"` // operations per worker
	Keys       int   `mapstructure:"keys"`       // keys per worker
	Seed       int64 `mapstructure:"seed"`       // 0 picks a random seed
}

// LogConfig contains logging settings
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// SDLConfig points at a specific SDL3 build
type SDLConfig struct {
	Library string `mapstructure:"library"` // full path; empty searches the usual places
}

const (
	configName = "sdlgo-bridge"
	envPrefix  = "SDLGO"
)

// DefaultConfig provides the defaults
var DefaultConfig = Config{
	Stress: StressConfig{
		Workers:    8,
		Iterations: 2000,
		Keys:       64,
	},
	Log: LogConfig{
		Level: "info",
	},
}

// New returns a Viper instance with defaults, search paths and environment
// bindings in place. Flags can be bound to it before Load.
func New(configFile string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sdlgo"))
		}
	}

	v.SetDefault("stress.workers", DefaultConfig.Stress.Workers)
	v.SetDefault("stress.iterations", DefaultConfig.Stress.Iterations)
	v.SetDefault("stress.keys", DefaultConfig.Stress.Keys)
	v.SetDefault("stress.seed", DefaultConfig.Stress.Seed)
	v.SetDefault("log.level", DefaultConfig.Log.Level)
	v.SetDefault("sdl.library", DefaultConfig.SDL.Library)

	// SDLGO_STRESS_WORKERS, SDLGO_LOG_LEVEL, SDLGO_SDL_LIBRARY, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file, if any, and returns the merged configuration.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Stress.Workers < 1 {
		return fmt.Errorf("stress.workers must be at least 1, got %d", c.Stress.Workers)
	}
	if c.Stress.Iterations < 0 {
		return fmt.Errorf("stress.iterations must not be negative, got %d", c.Stress.Iterations)
	}
	if c.Stress.Keys < 1 {
		return fmt.Errorf("stress.keys must be at least 1, got %d", c.Stress.Keys)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	return nil
}
