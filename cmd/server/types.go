package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/config"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the forwarder built around the provider client.
// created once at startup, read-only afterwards
type Services struct {
	Forwarder *completion.Forwarder
}
