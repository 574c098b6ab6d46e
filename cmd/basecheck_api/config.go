package main

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type CheckerAPIConfig struct {
	SessionLimit int
	Sentinel     string
	LogLevel     slog.Level
	// CapacityHealth makes /health fail while the session store is full.
	CapacityHealth bool
}

func (as *AppConfig) Load() (*CheckerAPIConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/basecheck_api/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	level, err := env.ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	limit, err := strconv.Atoi(os.Getenv("SESSION_LIMIT"))
	if err != nil || limit <= 0 {
		limit = session.DefaultStoreLimit
	}

	sentinel := os.Getenv("BASECHECK_SENTINEL")
	if sentinel == "" {
		sentinel = session.DefaultSentinel
	}

	capacityHealth := true
	if v := os.Getenv("HEALTH_CHECK_CAPACITY"); v != "" {
		capacityHealth, err = strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
	}

	return &CheckerAPIConfig{
		SessionLimit:   limit,
		Sentinel:       sentinel,
		LogLevel:       level,
		CapacityHealth: capacityHealth,
	}, nil
}
