// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/usecase/projection"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// ProjectionController handles limit release projection endpoints.
type ProjectionController struct {
	limitReleaseUseCase *projection.GetLimitReleaseUseCase
}

// NewProjectionController creates a new projection controller instance.
func NewProjectionController(limitReleaseUseCase *projection.GetLimitReleaseUseCase) *ProjectionController {
	return &ProjectionController{limitReleaseUseCase: limitReleaseUseCase}
}

// GetLimitRelease handles GET /projections/limit-release requests.
func (c *ProjectionController) GetLimitRelease(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := projection.GetLimitReleaseInput{
		UserID: userID,
		Now:    time.Now().UTC(),
	}

	if cardIDParam := ctx.Query("card_id"); cardIDParam != "" {
		cardID, err := uuid.Parse(cardIDParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid card_id filter"})
			return
		}
		input.CardID = &cardID
	}

	if monthsParam := ctx.Query("months"); monthsParam != "" {
		months, err := strconv.Atoi(monthsParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid months parameter"})
			return
		}
		input.HorizonMonths = months
	}

	output, err := c.limitReleaseUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLimitReleaseResponse(output.Months))
}
