// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/usecase/simulation"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// SimulationController handles what-if purchase simulation endpoints.
type SimulationController struct {
	simulateUseCase *simulation.SimulatePurchaseUseCase
}

// NewSimulationController creates a new simulation controller instance.
func NewSimulationController(simulateUseCase *simulation.SimulatePurchaseUseCase) *SimulationController {
	return &SimulationController{simulateUseCase: simulateUseCase}
}

// Simulate handles POST /simulate requests.
func (c *SimulationController) Simulate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.SimulateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeSimulationInvalidInput),
		})
		return
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card_id",
			Code:  string(domainerror.ErrCodeSimulationCardRequired),
		})
		return
	}

	output, err := c.simulateUseCase.Execute(ctx.Request.Context(), simulation.SimulatePurchaseInput{
		UserID:           userID,
		CardID:           cardID,
		Amount:           decimal.NewFromFloat(req.Amount),
		InstallmentCount: req.InstallmentCount,
		Now:              time.Now().UTC(),
	})
	if err != nil {
		c.handleSimulationError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(output.Simulation, output.FromCache, output.QuotaRemaining))
}

// handleSimulationError handles simulation errors and returns appropriate HTTP responses.
func (c *SimulationController) handleSimulationError(ctx *gin.Context, err error) {
	var simulationErr *domainerror.SimulationError
	if errors.As(err, &simulationErr) {
		switch simulationErr.Code {
		case domainerror.ErrCodeSimulationQuotaExceeded:
			ctx.JSON(http.StatusTooManyRequests, dto.QuotaExceededResponse{
				Error:    simulationErr.Message,
				Code:     string(simulationErr.Code),
				ResetsAt: simulationErr.ResetsAt,
			})
		case domainerror.ErrCodeSimulationCardRequired:
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: simulationErr.Message,
				Code:  string(simulationErr.Code),
			})
		case domainerror.ErrCodeSimulationInvalidInput:
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: simulationErr.Message,
				Code:  string(simulationErr.Code),
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: simulationErr.Message,
				Code:  string(simulationErr.Code),
			})
		}
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
