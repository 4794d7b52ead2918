package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

const (
	defaultSelfPlayGames   = 100
	defaultSelfPlayWorkers = 4
)

// SelfPlayConfig holds the configuration of the self-play command, loaded from environment variables.
type SelfPlayConfig struct {
	Games   int
	Workers int
	Seed    int64
}

// LoadSelfPlayConfig loads configuration from environment variables.
func LoadSelfPlayConfig() *SelfPlayConfig {
	cfg, err := loadSelfPlayConfig(os.Getenv)
	if err != nil {
		slog.Error("Cannot load self-play config", "error", err)
		os.Exit(1)
	}
	return cfg
}

func loadSelfPlayConfig(getenv func(string) string) (*SelfPlayConfig, error) {
	games, err := getEnvInt(getenv, "FLIPPY_SELFPLAY_GAMES", defaultSelfPlayGames)
	if err != nil {
		return nil, err
	}

	workers, err := getEnvInt(getenv, "FLIPPY_SELFPLAY_WORKERS", defaultSelfPlayWorkers)
	if err != nil {
		return nil, err
	}

	seed, err := getEnvInt(getenv, "FLIPPY_SELFPLAY_SEED", int(time.Now().UnixNano()))
	if err != nil {
		return nil, err
	}

	if games < 0 {
		return nil, fmt.Errorf("FLIPPY_SELFPLAY_GAMES must not be negative, got %d", games)
	}

	if workers < 1 {
		return nil, fmt.Errorf("FLIPPY_SELFPLAY_WORKERS must be positive, got %d", workers)
	}

	return &SelfPlayConfig{
		Games:   games,
		Workers: workers,
		Seed:    int64(seed),
	}, nil
}

// getEnvInt returns the integer value of an environment variable or fallback if it is not set.
func getEnvInt(getenv func(string) string, key string, fallback int) (int, error) {
	value := getenv(key)
	if value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cannot load environment variable %s=%q: %w", key, value, err)
	}

	return parsed, nil
}
