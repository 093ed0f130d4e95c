// Package config loads process configuration from tutord.yaml and the
// TUTORD_* environment.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/tutord/internal/engine"
)

// Config holds all configuration for the process.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Engine   EngineConfig   `mapstructure:"engine"`
}

// DatabaseConfig holds storage configuration.
type DatabaseConfig struct {
	// Path is the SQLite file path. Empty means the XDG default.
	Path string `mapstructure:"path"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// EngineConfig holds the tunable analysis parameters. The defaults are the
// engine's published constants.
type EngineConfig struct {
	TrajectoryWindow     int `mapstructure:"trajectory_window"`
	MasteryWindow        int `mapstructure:"mastery_window"`
	DominantErrorWindow  int `mapstructure:"dominant_error_window"`
	BreakCooldownMinutes int `mapstructure:"break_cooldown_minutes"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("tutord")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/tutord")

	setDefaults(v)

	v.SetEnvPrefix("TUTORD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("engine.trajectory_window", engine.DefaultTrajectoryWindow)
	v.SetDefault("engine.mastery_window", engine.DefaultMasteryWindow)
	v.SetDefault("engine.dominant_error_window", engine.DefaultDominantWindow)
	v.SetDefault("engine.break_cooldown_minutes", engine.DefaultCooldownMinutes)
}
