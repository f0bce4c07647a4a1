// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/card-tracker/backend/internal/application/usecase/timeline"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// TimelineController handles timeline projection endpoints.
type TimelineController struct {
	getUseCase *timeline.GetTimelineUseCase
}

// NewTimelineController creates a new timeline controller instance.
func NewTimelineController(getUseCase *timeline.GetTimelineUseCase) *TimelineController {
	return &TimelineController{getUseCase: getUseCase}
}

// Get handles GET /timeline requests. Accepts optional card_id and months
// query parameters; without card_id the timeline aggregates all cards.
func (c *TimelineController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input := timeline.GetTimelineInput{
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
		input.WindowMonths = months
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTimelineResponse(output.Timeline))
}
