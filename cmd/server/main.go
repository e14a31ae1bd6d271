package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/codive/server/internal/config"
	"codeberg.org/codive/server/internal/logger"
)

// @title Codive API
// @version 1.0.0
// @description A powerful AI coding assistant built on Google Gemini Flash 2.0
// @description
// @description Forwards a prompt, an optional system instruction and optional
// @description conversation history to Gemini and returns the generated text.

// @BasePath /

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Configure(cfg.Environment)
	logger.Info("starting codive server")

	// the provider client is created once here and shared by every request
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	// no WriteTimeout: generation has no deadline
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	logger.Info("server stopped")
}
