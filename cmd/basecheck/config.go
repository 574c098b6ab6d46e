package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

type CheckerConfig struct {
	Sentinel string
	NoColor  bool
	LogLevel slog.Level
}

func (as *AppConfig) Load() (*CheckerConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/basecheck/.env")
	if err != nil {
		slog.Debug("Skipping .env environment variables...", "error", err)
	}

	sentinel := os.Getenv("BASECHECK_SENTINEL")
	if sentinel == "" {
		sentinel = session.DefaultSentinel
	}

	level, err := env.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	_, noColor := os.LookupEnv("NO_COLOR")

	return &CheckerConfig{
		Sentinel: sentinel,
		NoColor:  noColor,
		LogLevel: level,
	}, nil
}
