package generate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"codeberg.org/codive/server/internal/completion"
	"codeberg.org/codive/server/internal/errors"
)

// Handler godoc
// @Summary Generate a completion
// @Description Forward a prompt and optional conversation history to the model and return the generated text
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Generation request"
// @Success 200 {object} Response
// @Failure 422 {object} errors.DetailResponse
// @Failure 500 {object} FailureResponse
// @Router /generate_code [post]
func Handler(forwarder completion.Generator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		resp, err := forwarder.Generate(c.Request.Context(), req.toCodeRequest())
		if err != nil {
			failure := completion.AsProviderFailure(err)
			errors.InternalError(c, "failed to generate completion", failure, failure.Response())
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}
