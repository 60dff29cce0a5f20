package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Config holds settings read from the environment. Command-line flags take
// precedence over every field.
type Config struct {
	// DB is the SQLite database path. Empty means the XDG default.
	DB string `env:"ACADEMY_DB"`

	// Tables is an optional YAML tables file replacing the built-in tables.
	Tables string `env:"ACADEMY_TABLES"`

	// Learner is the learner name or ID used when --learner is not given.
	Learner string `env:"ACADEMY_LEARNER"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"ACADEMY_LOG_LEVEL" envDefault:"warn"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Level returns the configured zap level.
func (c Config) Level() (zapcore.Level, error) {
	if c.LogLevel == "" {
		return zapcore.WarnLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.WarnLevel, fmt.Errorf("ACADEMY_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}
