// Package main provides the API server entry point for the Sui DeFi
// advisor service.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sui-advisor/internal/advisor"
	"github.com/sui-advisor/internal/api"
	"github.com/sui-advisor/internal/config"
	"github.com/sui-advisor/internal/logging"
	"github.com/sui-advisor/internal/rpc"
	"github.com/sui-advisor/internal/storage"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := logging.ParseLogLevel(cfg.Logging.Level)
	logFormat := logging.ParseLogFormat(cfg.Logging.Format)
	logging.InitGlobalLogger(logLevel, logFormat)

	logger := logging.GetGlobalLogger()
	logger.WithFields(map[string]interface{}{
		"level":  cfg.Logging.Level,
		"format": cfg.Logging.Format,
	}).Info("Structured logging initialized")

	// Connect to the Sui fullnode
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	suiClient, err := rpc.NewSuiClient(ctx, &cfg.Sui)
	cancel()
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Sui fullnode")
	}
	defer suiClient.Close()

	logger.WithField("endpoint", suiClient.Endpoint()).Info("Sui fullnode connection established")

	// Response caching is optional and off by default
	var cache *storage.AnalysisCache
	if cfg.Cache.Enabled {
		redisCache, err := storage.NewRedisCache(&cfg.Cache)
		if err != nil {
			logger.WithError(err).Fatal("Failed to connect to Redis")
		}
		defer redisCache.Close()
		cache = storage.NewAnalysisCache(redisCache, cfg.Cache.TTL)
		logger.WithField("ttl", cfg.Cache.TTL.String()).Info("Response cache enabled")
	}

	advisorService := advisor.NewAdvisor(suiClient, logger)

	serverConfig := &api.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		FreeTierRPS:     cfg.RateLimit.FreeTierRPS,
		PaidTierRPS:     cfg.RateLimit.PaidTierRPS,
	}

	server := api.NewServer(serverConfig, advisorService, cache, logger)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Server failed to start")
		}
	}()

	logger.WithFields(map[string]interface{}{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Server started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), serverConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited")
}
