package env

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from .env files.
// ENV_PATH, when set, replaces defaultPaths. Missing files are an error only
// for local runs (env "local" or empty). Variables already present in the
// process environment are never overwritten.
func LoadDotEnv(env string, defaultPaths ...string) error {
	envPaths := defaultPaths
	if p := os.Getenv("ENV_PATH"); p != "" {
		envPaths = []string{p}
	} else {
		slog.Debug("ENV_PATH is not set, using default path", "defaultPaths", defaultPaths)
	}

	err := godotenv.Load(envPaths...)
	if err != nil {
		if env == "local" || env == "" {
			slog.Debug("Failed to load environment variables in local mode", "error", err)
			return err
		}
		slog.Debug("Skipping .env ...")
	}

	return nil
}
