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

// ExpenseHandler handles expense management endpoints
type ExpenseHandler struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      services.MetricsRecorderInterface
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) *ExpenseHandler {
	return &ExpenseHandler{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		metrics:      metrics,
	}
}

// List returns a filtered, paginated page of the user's expenses
func (h *ExpenseHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	filters, err := h.parseFilters(c, userID)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	expenses, total, err := h.expenseRepo.GetWithFilters(*filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		responses = append(responses, toExpenseResponse(&expenses[i]))
	}

	return c.JSON(http.StatusOK, dto.ListExpensesResponse{
		Expenses: responses,
		Pagination: dto.PaginationInfo{
			Offset: filters.Offset,
			Limit:  filters.Limit,
			Total:  total,
		},
	})
}

// Create records a new expense
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, errCode := h.buildExpense(userID, req.Amount, req.Description, req.Date, req.CategoryID, req.PaymentMethod)
	if errCode != "" {
		return SendError(c, errCode)
	}

	if err := h.expenseRepo.Create(expense); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("expense_operation", map[string]string{"operation": "create"})

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toExpenseResponse(expense),
		Message: "Expense recorded successfully",
	})
}

// Get returns one of the user's expenses by ID
func (h *ExpenseHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	expense, err := h.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toExpenseResponse(expense)})
}

// Update replaces the mutable fields of one of the user's expenses
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.UpdateExpenseRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	expense, err := h.expenseRepo.GetByID(userID, expenseID)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	updated, errCode := h.buildExpense(userID, req.Amount, req.Description, req.Date, req.CategoryID, req.PaymentMethod)
	if errCode != "" {
		return SendError(c, errCode)
	}

	expense.Amount = updated.Amount
	expense.Description = updated.Description
	expense.Date = updated.Date
	expense.CategoryID = updated.CategoryID
	expense.PaymentMethod = updated.PaymentMethod
	expense.Category = nil

	if err := h.expenseRepo.Update(expense); err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("expense_operation", map[string]string{"operation": "update"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toExpenseResponse(expense),
		Message: "Expense updated successfully",
	})
}

// Delete removes one of the user's expenses together with its receipts
func (h *ExpenseHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	if err := h.expenseRepo.Delete(userID, expenseID); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("expense_operation", map[string]string{"operation": "delete"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Expense deleted successfully",
	})
}

// DeleteBatch removes a set of the user's expenses in one operation
func (h *ExpenseHandler) DeleteBatch(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.DeleteExpensesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.ExpenseInvalidID)
		}
		ids = append(ids, id)
	}

	deleted, err := h.expenseRepo.DeleteBatch(userID, ids)
	if err != nil {
		return SendSystemError(c, err)
	}

	h.metrics.IncrementCounter("expense_operation", map[string]string{"operation": "delete_batch"})

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int64{"deleted": deleted},
		Message: "Expenses deleted successfully",
	})
}

// buildExpense parses and validates the wire fields shared by create and update
func (h *ExpenseHandler) buildExpense(userID uuid.UUID, rawAmount, description, rawDate string, rawCategoryID *string, paymentMethod string) (*models.Expense, errors.ErrorCode) {
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil || !amount.IsPositive() {
		return nil, errors.ExpenseInvalidAmount
	}

	date, err := parseDate(rawDate)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}

	expense := &models.Expense{
		Amount:        amount.Round(2),
		Description:   description,
		Date:          date,
		PaymentMethod: paymentMethod,
		UserID:        userID,
	}
	if expense.PaymentMethod == "" {
		expense.PaymentMethod = models.PaymentMethodCash
	}

	if rawCategoryID != nil && *rawCategoryID != "" {
		categoryID, err := uuid.Parse(*rawCategoryID)
		if err != nil {
			return nil, errors.CategoryInvalidID
		}
		if _, err := h.categoryRepo.GetByID(userID, categoryID); err != nil {
			return nil, errors.CategoryNotFound
		}
		expense.CategoryID = &categoryID
	}

	return expense, ""
}

// parseFilters builds repository filters from query parameters
func (h *ExpenseHandler) parseFilters(c echo.Context, userID uuid.UUID) (*models.ExpenseFilters, error) {
	filters := &models.ExpenseFilters{
		UserID: userID,
		Offset: getIntParam(c, "offset", 0),
		Limit:  getIntParam(c, "limit", defaultPageLimit),
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.Limit <= 0 || filters.Limit > maxPageLimit {
		filters.Limit = defaultPageLimit
	}

	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.StartDate = &start
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return nil, err
		}
		filters.EndDate = &end
	}

	if raw := c.QueryParam("category_id"); raw != "" {
		if raw == "none" {
			filters.Uncategorized = true
		} else {
			categoryID, err := uuid.Parse(raw)
			if err != nil {
				return nil, err
			}
			filters.CategoryID = &categoryID
		}
	}

	if raw := c.QueryParam("payment_method"); raw != "" {
		filters.PaymentMethod = raw
	}

	if raw := c.QueryParam("min_amount"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		filters.MinAmount = &min
	}
	if raw := c.QueryParam("max_amount"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		filters.MaxAmount = &max
	}

	return filters, nil
}
