package handlers

import (
	"net/http"

	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"
	"pennywise/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget management endpoints
type BudgetHandler struct {
	budgetRepo   repositories.BudgetRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      services.MetricsRecorderInterface
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(
	budgetRepo repositories.BudgetRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *BudgetHandler {
	return &BudgetHandler{
		budgetRepo:   budgetRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// List returns the user's budgets, optionally filtered to one month
func (h *BudgetHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var budgets []models.Budget
	if raw := c.QueryParam("month"); raw != "" {
		month, err := parseMonth(raw)
		if err != nil {
			return SendError(c, errors.BudgetInvalidMonth)
		}
		budgets, err = h.budgetRepo.ListByMonth(userID, month)
		if err != nil {
			return SendSystemError(c, err)
		}
	} else {
		budgets, err = h.budgetRepo.ListByUserID(userID)
		if err != nil {
			return SendSystemError(c, err)
		}
	}

	responses := make([]dto.BudgetResponse, 0, len(budgets))
	for i := range budgets {
		responses = append(responses, toBudgetResponse(&budgets[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: responses})
}

// Create sets a monthly budget for one of the user's categories
func (h *BudgetHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.BudgetInvalidAmount)
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}
	if _, err := h.categoryRepo.GetByID(userID, categoryID); err != nil {
		return SendError(c, errors.CategoryNotFound)
	}

	month, err := parseMonth(req.Month)
	if err != nil {
		return SendError(c, errors.BudgetInvalidMonth)
	}

	budget := &models.Budget{
		Amount:     amount.Round(2),
		CategoryID: categoryID,
		UserID:     userID,
		Month:      month,
	}

	if err := h.budgetRepo.Create(budget); err != nil {
		if err == repositories.ErrBudgetAlreadyExists {
			return SendError(c, errors.BudgetAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget_operation", map[string]string{"operation": "create"})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toBudgetResponse(budget),
		Message: "Budget created successfully",
	})
}

// Update changes the amount of one of the user's budgets
func (h *BudgetHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.BudgetNotFound)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return SendError(c, errors.BudgetInvalidAmount)
	}

	budget, err := h.budgetRepo.GetByID(userID, budgetID)
	if err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	budget.Amount = amount.Round(2)
	if err := h.budgetRepo.Update(budget); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget_operation", map[string]string{"operation": "update"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toBudgetResponse(budget),
		Message: "Budget updated successfully",
	})
}

// Delete removes one of the user's budgets
func (h *BudgetHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	budgetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.BudgetNotFound)
	}

	if err := h.budgetRepo.Delete(userID, budgetID); err != nil {
		if err == repositories.ErrBudgetNotFound {
			return SendError(c, errors.BudgetNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("budget_operation", map[string]string{"operation": "delete"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Budget deleted successfully",
	})
}
