package main

import (
	"flag"
	"fmt"
	"os"

	"investment-outlook/src/config"
	"investment-outlook/src/engine"
	"investment-outlook/src/interfaces"
	"investment-outlook/src/logger"
	"investment-outlook/src/providers"
	"investment-outlook/src/server"
	"investment-outlook/src/storage"

	"github.com/joho/godotenv"
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Provider credentials live in the environment, optionally via .env
	_ = godotenv.Load()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)

	// Optional upstream price series cache
	var cache interfaces.IPriceCache
	if cfg.Storage.Enabled {
		switch cfg.Storage.DBType {
		case "postgres":
			cache, err = storage.NewPostgresCache(cfg.MConfig, appLogger)
		default:
			cache, err = storage.NewSQLiteCache(cfg.MConfig, appLogger)
		}
		if err != nil {
			appLogger.Critical("Failed to init cache: %v", err)
		}
		if err := cache.Initialize(); err != nil {
			appLogger.Critical("Failed to migrate cache: %v", err)
		}
		appLogger.Info("Price series cache enabled (%s, TTL %dh)", cfg.Storage.DBType, cfg.Storage.TTLHours)
	}

	// Providers get their credentials explicitly, resolved once at startup
	avKey := os.Getenv(cfg.Providers.AlphaVantage.APIKeyEnv)
	if avKey == "" {
		appLogger.Warning("%s is not set; stock endpoints will report the provider as unavailable", cfg.Providers.AlphaVantage.APIKeyEnv)
	}
	rcKey := os.Getenv(cfg.Providers.RentCast.APIKeyEnv)
	if rcKey == "" {
		appLogger.Warning("%s is not set; the valuation endpoint will report the provider as unavailable", cfg.Providers.RentCast.APIKeyEnv)
	}

	var priceHistory interfaces.IPriceHistoryProvider = providers.NewAlphaVantageSource(
		cfg.Providers.AlphaVantage, avKey, cfg.Network, cache,
		logger.NewLogger(cfg.LogLevel, "AlphaVantageSource"))
	var valuation interfaces.IValuationProvider = providers.NewRentCastSource(
		cfg.Providers.RentCast, rcKey, cfg.Network,
		logger.NewLogger(cfg.LogLevel, "RentCastSource"))

	// Engines
	equity := engine.NewEquityEngine(priceHistory, logger.NewLogger(cfg.LogLevel, "EquityEngine"))
	timeSeries := engine.NewTimeSeriesBuilder(priceHistory, logger.NewLogger(cfg.LogLevel, "TimeSeriesBuilder"))

	// HTTP surface
	srv := server.NewAPIServer(cfg.MConfig, appLogger, equity, timeSeries, valuation)
	if err := srv.Start(); err != nil {
		appLogger.Critical("Server failed: %v", err)
	}
}
