// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/usecase/card"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// CardController handles card endpoints.
type CardController struct {
	createUseCase *card.CreateCardUseCase
	listUseCase   *card.ListCardsUseCase
	getUseCase    *card.GetCardUseCase
	updateUseCase *card.UpdateCardUseCase
	deleteUseCase *card.DeleteCardUseCase
}

// NewCardController creates a new card controller instance.
func NewCardController(
	createUseCase *card.CreateCardUseCase,
	listUseCase *card.ListCardsUseCase,
	getUseCase *card.GetCardUseCase,
	updateUseCase *card.UpdateCardUseCase,
	deleteUseCase *card.DeleteCardUseCase,
) *CardController {
	return &CardController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /cards requests.
func (c *CardController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCardMissingFields),
		})
		return
	}

	input := card.CreateCardInput{
		UserID:         userID,
		Name:           req.Name,
		LastFourDigits: req.LastFourDigits,
		ClosingDay:     req.ClosingDay,
		DueDay:         req.DueDay,
		CreditLimit:    decimal.NewFromFloat(req.CreditLimit),
		MonthlyBudget:  decimalPtr(req.MonthlyBudget),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCardResponse(output.Card))
}

// List handles GET /cards requests.
func (c *CardController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), card.ListCardsInput{UserID: userID})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	cards := make([]dto.CardResponse, 0, len(output.Cards))
	for _, entry := range output.Cards {
		cards = append(cards, dto.ToCardResponse(entry))
	}

	ctx.JSON(http.StatusOK, dto.CardListResponse{Cards: cards})
}

// Get handles GET /cards/:id requests.
func (c *CardController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID",
			Code:  string(domainerror.ErrCodeCardNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), card.GetCardInput{
		UserID: userID,
		CardID: cardID,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCardResponse(output.Card))
}

// Update handles PUT /cards/:id requests.
func (c *CardController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID",
			Code:  string(domainerror.ErrCodeCardNotFound),
		})
		return
	}

	var req dto.CardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCardMissingFields),
		})
		return
	}

	input := card.UpdateCardInput{
		UserID:         userID,
		CardID:         cardID,
		Name:           req.Name,
		LastFourDigits: req.LastFourDigits,
		ClosingDay:     req.ClosingDay,
		DueDay:         req.DueDay,
		CreditLimit:    decimal.NewFromFloat(req.CreditLimit),
		MonthlyBudget:  decimalPtr(req.MonthlyBudget),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdateCardResponse{
		Card:             dto.ToCardResponse(output.Card),
		RegeneratedPlans: output.RegeneratedPlans,
	})
}

// Delete handles DELETE /cards/:id requests.
func (c *CardController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	cardID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card ID",
			Code:  string(domainerror.ErrCodeCardNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), card.DeleteCardInput{
		UserID: userID,
		CardID: cardID,
	})
	if err != nil {
		c.handleCardError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// handleCardError handles card errors and returns appropriate HTTP responses.
func (c *CardController) handleCardError(ctx *gin.Context, err error) {
	var cardErr *domainerror.CardError
	if errors.As(err, &cardErr) {
		statusCode := http.StatusBadRequest
		if cardErr.Code == domainerror.ErrCodeCardNotFound {
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: cardErr.Message,
			Code:  string(cardErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthenticated writes the standard missing-authentication response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// decimalPtr converts an optional float into an optional decimal.
func decimalPtr(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}
