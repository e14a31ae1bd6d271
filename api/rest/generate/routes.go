package generate

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/codive/server/internal/completion"
)

// registers code generation routes
func RegisterRoutes(router gin.IRoutes, forwarder completion.Generator) {
	router.POST("/generate_code", Handler(forwarder))
}
