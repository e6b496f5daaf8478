package handlers

import (
	"net/http"

	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReceiptHandler handles receipt attachment endpoints. Receipts are URL
// references to externally stored documents; the API never stores file bytes.
type ReceiptHandler struct {
	receiptRepo repositories.ReceiptRepositoryInterface
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptRepo repositories.ReceiptRepositoryInterface) *ReceiptHandler {
	return &ReceiptHandler{
		receiptRepo: receiptRepo,
	}
}

// List returns the receipts attached to one of the user's expenses
func (h *ReceiptHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	receipts, err := h.receiptRepo.ListByExpenseID(userID, expenseID)
	if err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	responses := make([]dto.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		responses = append(responses, toReceiptResponse(&receipts[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: responses})
}

// Create attaches a receipt URL to one of the user's expenses
func (h *ReceiptHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ExpenseInvalidID)
	}

	var req dto.CreateReceiptRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	receipt := &models.Receipt{
		ExpenseID: expenseID,
		URL:       req.URL,
	}
	if err := receipt.Validate(); err != nil {
		return SendError(c, errors.ReceiptInvalidURL)
	}

	if err := h.receiptRepo.Create(userID, receipt); err != nil {
		if err == repositories.ErrExpenseNotFound {
			return SendError(c, errors.ExpenseNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toReceiptResponse(receipt),
		Message: "Receipt attached successfully",
	})
}

// Delete removes a receipt from one of the user's expenses
func (h *ReceiptHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	receiptID, err := uuid.Parse(c.Param("receiptId"))
	if err != nil {
		return SendError(c, errors.ReceiptNotFound)
	}

	if err := h.receiptRepo.Delete(userID, receiptID); err != nil {
		if err == repositories.ErrReceiptNotFound {
			return SendError(c, errors.ReceiptNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Receipt deleted successfully",
	})
}
