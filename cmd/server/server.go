package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/codive/server/internal/config"
	"codeberg.org/codive/server/internal/logger"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return NewServerWithServices(cfg, services), nil
}

// builds the router around already-initialized services
func NewServerWithServices(cfg *config.Config, services *Services) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &Server{
		config:   cfg,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server)

	logger.Info("server configured",
		"environment", cfg.Environment,
		"cors_origins", cfg.CORSAllowedOrigins,
	)

	return server
}
