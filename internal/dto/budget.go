package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateBudgetRequest is the payload for setting a monthly budget
type CreateBudgetRequest struct {
	Amount     string `json:"amount" validate:"required,money_amount"`
	CategoryID string `json:"category_id" validate:"required,uuid4"`
	Month      string `json:"month" validate:"required,month_format"`
}

// UpdateBudgetRequest is the payload for changing a budget's amount. The
// category, owner and month of an existing budget are immutable.
type UpdateBudgetRequest struct {
	Amount string `json:"amount" validate:"required,money_amount"`
}

// BudgetResponse is the public view of a budget
type BudgetResponse struct {
	ID         uuid.UUID         `json:"id"`
	Amount     string            `json:"amount"`
	CategoryID uuid.UUID         `json:"category_id"`
	Category   *CategoryResponse `json:"category,omitempty"`
	Month      string            `json:"month"`
	CreatedAt  time.Time         `json:"created_at"`
}
