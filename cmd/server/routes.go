package main

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"

	"codeberg.org/codive/server/api/docs"
	"codeberg.org/codive/server/api/rest/generate"
	"codeberg.org/codive/server/api/rest/health"
	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/logger"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler(completion.Model))
	router.GET("/docs/swagger.json", SwaggerHandler)

	generate.RegisterRoutes(router, server.services.Forwarder)
}

func CORSMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
	}

	return cors.New(corsConfig)
}

// serves the generated OpenAPI document
func SwaggerHandler(c *gin.Context) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		logger.ErrorErr(err, "failed to read swagger doc")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}
