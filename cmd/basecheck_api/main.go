// Package main Base Checker API
// @title Base Checker API
// @version 1.0
// @description Tokenizes and validates binary, octal and hexadecimal variable declarations and checks expressions against them
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"os"

	_ "github.com/DjordjeVuckovic/base-checker/docs"
	"github.com/DjordjeVuckovic/base-checker/internal/api/router"
	"github.com/DjordjeVuckovic/base-checker/internal/api/server"
	"github.com/DjordjeVuckovic/base-checker/internal/session"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	pkgserver "github.com/DjordjeVuckovic/base-checker/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
		return
	}
	slog.SetLogLoggerLevel(cfg.LogLevel)

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	store := session.NewStore(cfg.SessionLimit, session.WithSentinel(cfg.Sentinel))
	healthChecker := newHealthChecker(cfg, store)

	s := server.New(sCfg, healthChecker).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Base Checker API is running")
	})

	lexer := token.NewBaseLexer()
	router.NewLexerRouter(s.Echo, lexer).Bind()
	router.NewSessionRouter(s.Echo, store, lexer).Bind()

	slog.Info("Starting server", "port", sCfg.Port, "sessionLimit", cfg.SessionLimit)

	go func() {
		<-s.Context().Done()
		slog.Info("Shutdown started, discarding live sessions...", "sessions", store.Len())
	}()

	err = s.Start()
	if err != nil {
		s.Echo.Logger.Error("Failed to start server: ", err)
		os.Exit(1)
	}
}

// newHealthChecker reports unhealthy while the store is full, unless the
// capacity gate is disabled and /health only answers liveness.
func newHealthChecker(cfg *CheckerAPIConfig, store *session.Store) pkgserver.HealthChecker {
	if !cfg.CapacityHealth {
		return pkgserver.NewOkHealthChecker()
	}
	return pkgserver.NewCapacityHealthChecker(store, cfg.SessionLimit)
}
