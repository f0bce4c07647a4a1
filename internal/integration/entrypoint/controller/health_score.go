// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/card-tracker/backend/internal/application/usecase/healthscore"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// HealthScoreController handles financial health score endpoints.
type HealthScoreController struct {
	getUseCase *healthscore.GetHealthScoreUseCase
}

// NewHealthScoreController creates a new health score controller instance.
func NewHealthScoreController(getUseCase *healthscore.GetHealthScoreUseCase) *HealthScoreController {
	return &HealthScoreController{getUseCase: getUseCase}
}

// Get handles GET /health-score requests.
func (c *HealthScoreController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), healthscore.GetHealthScoreInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHealthScoreResponse(output.Health))
}
