// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/card-tracker/backend/internal/application/adapter"
	"github.com/card-tracker/backend/internal/application/usecase/purchase"
	domainerror "github.com/card-tracker/backend/internal/domain/error"
	"github.com/card-tracker/backend/internal/integration/entrypoint/dto"
	"github.com/card-tracker/backend/internal/integration/entrypoint/middleware"
)

// PurchaseController handles purchase endpoints.
type PurchaseController struct {
	createUseCase *purchase.CreatePurchaseUseCase
	listUseCase   *purchase.ListPurchasesUseCase
	getUseCase    *purchase.GetPurchaseUseCase
	updateUseCase *purchase.UpdatePurchaseUseCase
	deleteUseCase *purchase.DeletePurchaseUseCase
}

// NewPurchaseController creates a new purchase controller instance.
func NewPurchaseController(
	createUseCase *purchase.CreatePurchaseUseCase,
	listUseCase *purchase.ListPurchasesUseCase,
	getUseCase *purchase.GetPurchaseUseCase,
	updateUseCase *purchase.UpdatePurchaseUseCase,
	deleteUseCase *purchase.DeletePurchaseUseCase,
) *PurchaseController {
	return &PurchaseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /purchases requests.
func (c *PurchaseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	input, ok := c.bindPurchaseRequest(ctx)
	if !ok {
		return
	}

	createInput := purchase.CreatePurchaseInput{
		UserID:           userID,
		CardID:           input.CardID,
		CategoryID:       input.CategoryID,
		Description:      input.Description,
		TotalAmount:      input.TotalAmount,
		InstallmentCount: input.InstallmentCount,
		PurchaseDate:     input.PurchaseDate,
		Tags:             input.Tags,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), createInput)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPurchaseResponse(output.Purchase))
}

// List handles GET /purchases requests with filter and pagination query params.
func (c *PurchaseController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	filter := adapter.PurchaseFilter{
		UserID:   userID,
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	if cardIDParam := ctx.Query("card_id"); cardIDParam != "" {
		cardID, err := uuid.Parse(cardIDParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid card_id filter",
				Code:  string(domainerror.ErrCodePurchaseMissingFields),
			})
			return
		}
		filter.CardID = &cardID
	}

	if startParam := ctx.Query("start_date"); startParam != "" {
		start, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date filter, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodePurchaseMissingFields),
			})
			return
		}
		filter.StartDate = &start
	}

	if endParam := ctx.Query("end_date"); endParam != "" {
		end, err := time.Parse("2006-01-02", endParam)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date filter, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodePurchaseMissingFields),
			})
			return
		}
		filter.EndDate = &end
	}

	if tagsParam := ctx.Query("tags"); tagsParam != "" {
		for _, tag := range strings.Split(tagsParam, ",") {
			tag = strings.TrimSpace(tag)
			if tag != "" {
				filter.Tags = append(filter.Tags, strings.ToLower(tag))
			}
		}
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), purchase.ListPurchasesInput{
		Filter: filter,
		Pagination: adapter.PurchasePagination{
			Page:  page,
			Limit: limit,
		},
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseListResponse(output.Result))
}

// Get handles GET /purchases/:id requests.
func (c *PurchaseController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID",
			Code:  string(domainerror.ErrCodePurchaseNotFound),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), purchase.GetPurchaseInput{
		UserID:     userID,
		PurchaseID: purchaseID,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPurchaseResponse(output.Purchase))
}

// Update handles PUT /purchases/:id requests.
func (c *PurchaseController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID",
			Code:  string(domainerror.ErrCodePurchaseNotFound),
		})
		return
	}

	input, ok := c.bindPurchaseRequest(ctx)
	if !ok {
		return
	}

	updateInput := purchase.UpdatePurchaseInput{
		UserID:           userID,
		PurchaseID:       purchaseID,
		CardID:           input.CardID,
		CategoryID:       input.CategoryID,
		Description:      input.Description,
		TotalAmount:      input.TotalAmount,
		InstallmentCount: input.InstallmentCount,
		PurchaseDate:     input.PurchaseDate,
		Tags:             input.Tags,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), updateInput)
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UpdatePurchaseResponse{
		Purchase:        dto.ToPurchaseResponse(output.Purchase),
		PlanRegenerated: output.PlanRegenerated,
	})
}

// Delete handles DELETE /purchases/:id requests.
func (c *PurchaseController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	purchaseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase ID",
			Code:  string(domainerror.ErrCodePurchaseNotFound),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), purchase.DeletePurchaseInput{
		UserID:     userID,
		PurchaseID: purchaseID,
	})
	if err != nil {
		c.handlePurchaseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: output.Message})
}

// boundPurchase carries the parsed and converted request fields.
type boundPurchase struct {
	CardID           uuid.UUID
	CategoryID       *uuid.UUID
	Description      string
	TotalAmount      decimal.Decimal
	InstallmentCount int
	PurchaseDate     time.Time
	Tags             []string
}

// bindPurchaseRequest parses the request body shared by create and update.
func (c *PurchaseController) bindPurchaseRequest(ctx *gin.Context) (boundPurchase, bool) {
	var req dto.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodePurchaseMissingFields),
		})
		return boundPurchase{}, false
	}

	cardID, err := uuid.Parse(req.CardID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid card_id",
			Code:  string(domainerror.ErrCodePurchaseMissingFields),
		})
		return boundPurchase{}, false
	}

	purchaseDate, err := time.Parse("2006-01-02", req.PurchaseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid purchase_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodePurchaseMissingFields),
		})
		return boundPurchase{}, false
	}

	bound := boundPurchase{
		CardID:           cardID,
		Description:      req.Description,
		TotalAmount:      decimal.NewFromFloat(req.TotalAmount),
		InstallmentCount: req.InstallmentCount,
		PurchaseDate:     purchaseDate,
		Tags:             req.Tags,
	}

	if req.CategoryID != nil && *req.CategoryID != "" {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category_id",
				Code:  string(domainerror.ErrCodePurchaseMissingFields),
			})
			return boundPurchase{}, false
		}
		bound.CategoryID = &categoryID
	}

	return bound, true
}

// handlePurchaseError handles purchase errors and returns appropriate HTTP responses.
func (c *PurchaseController) handlePurchaseError(ctx *gin.Context, err error) {
	var purchaseErr *domainerror.PurchaseError
	if errors.As(err, &purchaseErr) {
		statusCode := http.StatusBadRequest
		switch purchaseErr.Code {
		case domainerror.ErrCodePurchaseNotFound:
			statusCode = http.StatusNotFound
		case domainerror.ErrCodePurchaseInternalError:
			statusCode = http.StatusInternalServerError
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: purchaseErr.Message,
			Code:  string(purchaseErr.Code),
		})
		return
	}

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

	var categoryErr *domainerror.CategoryError
	if errors.As(err, &categoryErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: categoryErr.Message,
			Code:  string(categoryErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
