//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/proofofcontribution/permit-agent/internal/config"
	"github.com/proofofcontribution/permit-agent/internal/logger"
	"github.com/proofofcontribution/permit-agent/internal/server"
)

// @title           Proof-of-Contribution Permit Agent
// @version         1.0
// @description     Scores GitHub commits and issues EIP-712 signed mint permits

// @host      localhost:8000
// @BasePath  /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	// Initialize logger first
	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableJSON:  !cfg.IsDevelopment(),
		EnableColor: cfg.IsDevelopment(),
	})
	defer func() { _ = logger.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Unable to build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + cfg.APIPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", srv.Addr), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
}
