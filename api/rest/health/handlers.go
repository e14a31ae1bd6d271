package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Health check
// @Description Reports that the service is up and which model it forwards to. Never contacts the provider.
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status: "healthy",
			Model:  model,
		})
	}
}
