// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/usecase/income"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// IncomeController handles income endpoints.
type IncomeController struct {
	createUseCase *income.CreateIncomeUseCase
	listUseCase   *income.ListIncomesUseCase
	updateUseCase *income.UpdateIncomeUseCase
	deleteUseCase *income.DeleteIncomeUseCase
}

// NewIncomeController creates a new income controller instance.
func NewIncomeController(
	createUseCase *income.CreateIncomeUseCase,
	listUseCase *income.ListIncomesUseCase,
	updateUseCase *income.UpdateIncomeUseCase,
	deleteUseCase *income.DeleteIncomeUseCase,
) *IncomeController {
	return &IncomeController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /incomes requests.
func (c *IncomeController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeIncomeLabelRequired),
		})
		return
	}

	input := income.CreateIncomeInput{
		UserID:      userID,
		Label:       req.Label,
		Amount:      decimal.NewFromFloat(req.Amount),
		Month:       req.Month,
		Year:        req.Year,
		IsRecurring: req.IsRecurring,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToIncomeResponse(output.Income))
}

// List handles GET /incomes requests.
func (c *IncomeController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), income.ListIncomesInput{UserID: userID})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	incomes := make([]dto.IncomeResponse, 0, len(output.Incomes))
	for _, entry := range output.Incomes {
		incomes = append(incomes, dto.ToIncomeResponse(entry))
	}

	ctx.JSON(http.StatusOK, dto.IncomeListResponse{Incomes: incomes})
}

// Update handles PUT /incomes/:id requests.
func (c *IncomeController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID",
			Code:  string(domainerror.ErrCodeIncomeNotFound),
		})
		return
	}

	var req dto.IncomeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeIncomeLabelRequired),
		})
		return
	}

	input := income.UpdateIncomeInput{
		UserID:      userID,
		IncomeID:    incomeID,
		Label:       req.Label,
		Amount:      decimal.NewFromFloat(req.Amount),
		Month:       req.Month,
		Year:        req.Year,
		IsRecurring: req.IsRecurring,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIncomeResponse(output.Income))
}

// Delete handles DELETE /incomes/:id requests.
func (c *IncomeController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	incomeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid income ID",
			Code:  string(domainerror.ErrCodeIncomeNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), income.DeleteIncomeInput{
		UserID:   userID,
		IncomeID: incomeID,
	})
	if err != nil {
		c.handleIncomeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleIncomeError handles income errors and returns appropriate HTTP responses.
func (c *IncomeController) handleIncomeError(ctx *gin.Context, err error) {
	var incomeErr *domainerror.IncomeError
	if errors.As(err, &incomeErr) {
		statusCode := http.StatusBadRequest
		if incomeErr.Code == domainerror.ErrCodeIncomeNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: incomeErr.Message,
			Code:  string(incomeErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
