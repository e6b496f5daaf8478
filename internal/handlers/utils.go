package handlers

import (
	"fmt"
	"time"

	"pennywise/internal/dto"
	"pennywise/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"

	defaultPageLimit = 50
	maxPageLimit     = 200
)

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// parseDate parses a YYYY-MM-DD query or body value
func parseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// parseMonth parses a YYYY-MM month designator into the first of that month UTC
func parseMonth(value string) (time.Time, error) {
	t, err := time.Parse(monthLayout, value)
	if err != nil {
		return time.Time{}, err
	}
	return models.NormalizeMonth(t), nil
}

// toCategoryResponse converts a category model to its response shape
func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt,
	}
}

// toExpenseResponse converts an expense model to its response shape
func toExpenseResponse(expense *models.Expense) dto.ExpenseResponse {
	resp := dto.ExpenseResponse{
		ID:            expense.ID,
		Amount:        expense.Amount.StringFixed(2),
		Description:   expense.Description,
		Date:          expense.Date.Format(dateLayout),
		CategoryID:    expense.CategoryID,
		PaymentMethod: expense.PaymentMethod,
		CreatedAt:     expense.CreatedAt,
	}
	if expense.Category != nil {
		category := toCategoryResponse(expense.Category)
		resp.Category = &category
	}
	return resp
}

// toBudgetResponse converts a budget model to its response shape
func toBudgetResponse(budget *models.Budget) dto.BudgetResponse {
	resp := dto.BudgetResponse{
		ID:         budget.ID,
		Amount:     budget.Amount.StringFixed(2),
		CategoryID: budget.CategoryID,
		Month:      budget.Month.Format(monthLayout),
		CreatedAt:  budget.CreatedAt,
	}
	if budget.Category != nil {
		category := toCategoryResponse(budget.Category)
		resp.Category = &category
	}
	return resp
}

// toReceiptResponse converts a receipt model to its response shape
func toReceiptResponse(receipt *models.Receipt) dto.ReceiptResponse {
	return dto.ReceiptResponse{
		ID:         receipt.ID,
		ExpenseID:  receipt.ExpenseID,
		URL:        receipt.URL,
		UploadedAt: receipt.UploadedAt,
	}
}
