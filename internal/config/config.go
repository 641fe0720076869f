// SPDX-License-Identifier: MIT

// Package config resolves service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/rowtrace/internal/logging"
)

// Environment variable names.
const (
	EnvAddr      = "ROWTRACE_ADDR"
	EnvLogLevel  = "ROWTRACE_LOG_LEVEL"
	EnvCacheSize = "ROWTRACE_CACHE_SIZE"
	EnvMaxDim    = "ROWTRACE_MAX_DIM"
)

// Defaults.
const (
	DefaultAddr      = ":8080"
	DefaultCacheSize = 256
	DefaultMaxDim    = 12
)

// Config is the resolved service configuration.
type Config struct {
	Addr      string
	LogLevel  slog.Level
	CacheSize int
	// MaxDim bounds rows and columns of accepted matrices.
	MaxDim int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Addr:      DefaultAddr,
		LogLevel:  slog.LevelInfo,
		CacheSize: DefaultCacheSize,
		MaxDim:    DefaultMaxDim,
	}
}

// Load reads an optional .env file from the working directory and then the
// process environment. A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	return FromEnv(os.LookupEnv)
}

// FromEnv resolves a Config through lookup, falling back to Default for
// anything unset or blank.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := get(lookup, EnvAddr); ok {
		if !strings.Contains(v, ":") {
			v = ":" + v
		}
		cfg.Addr = v
	}
	if v, ok := get(lookup, EnvLogLevel); ok {
		lvl, err := logging.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}
	if v, ok := get(lookup, EnvCacheSize); ok {
		n, err := positive(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvCacheSize, err)
		}
		cfg.CacheSize = n
	}
	if v, ok := get(lookup, EnvMaxDim); ok {
		n, err := positive(v)
		if err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvMaxDim, err)
		}
		cfg.MaxDim = n
	}

	return cfg, nil
}

func get(lookup func(string) (string, bool), key string) (string, bool) {
	v, ok := lookup(key)
	v = strings.TrimSpace(v)

	return v, ok && v != ""
}

func positive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("must be positive, got %d", n)
	}

	return n, nil
}
