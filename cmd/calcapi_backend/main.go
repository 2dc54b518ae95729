package main

import (
	"log/slog"
	"os"

	"github.com/fxcalc/currency-calculator-api/internal/core/domain"
	"github.com/fxcalc/currency-calculator-api/internal/core/services"
	"github.com/fxcalc/currency-calculator-api/internal/handlers"
	"github.com/fxcalc/currency-calculator-api/internal/middleware"
	"github.com/fxcalc/currency-calculator-api/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Currency Calculator API
// @version 1.0
// @description Currency conversion over a fixed rate table, plus an application version endpoint.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The rate table is built once here and injected into the services;
	// nothing mutates it after startup.
	rateTable := domain.DefaultRateTable()

	serviceContainer := services.NewServiceContainer(cfg, rateTable)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), cors.Default())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting",
		slog.String("port", cfg.Port),
		slog.String("version", cfg.AppVersion),
		slog.String("base_currency", rateTable.BaseCurrency()),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
