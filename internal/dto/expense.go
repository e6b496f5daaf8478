package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateExpenseRequest is the payload for recording an expense. Amount and
// date are strings on the wire; the handler parses them into exact types.
type CreateExpenseRequest struct {
	Amount        string  `json:"amount" validate:"required,money_amount"`
	Description   string  `json:"description" validate:"max=500"`
	Date          string  `json:"date" validate:"required"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid4"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,payment_method"`
}

// UpdateExpenseRequest is the payload for updating an expense
type UpdateExpenseRequest struct {
	Amount        string  `json:"amount" validate:"required,money_amount"`
	Description   string  `json:"description" validate:"max=500"`
	Date          string  `json:"date" validate:"required"`
	CategoryID    *string `json:"category_id" validate:"omitempty,uuid4"`
	PaymentMethod string  `json:"payment_method" validate:"omitempty,payment_method"`
}

// DeleteExpensesRequest is the payload for batch deletion by identifier list
type DeleteExpensesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid4"`
}

// ExpenseResponse is the public view of an expense
type ExpenseResponse struct {
	ID            uuid.UUID         `json:"id"`
	Amount        string            `json:"amount"`
	Description   string            `json:"description"`
	Date          string            `json:"date"`
	CategoryID    *uuid.UUID        `json:"category_id,omitempty"`
	Category      *CategoryResponse `json:"category,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	CreatedAt     time.Time         `json:"created_at"`
}

// ListExpensesResponse is a page of expenses with pagination info
type ListExpensesResponse struct {
	Expenses   []ExpenseResponse `json:"expenses"`
	Pagination PaginationInfo    `json:"pagination"`
}

// PaginationInfo describes the position of a page inside the full result set
type PaginationInfo struct {
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
	Total  int64 `json:"total"`
}
