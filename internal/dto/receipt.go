package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateReceiptRequest is the payload for attaching a receipt to an expense
type CreateReceiptRequest struct {
	URL string `json:"url" validate:"required,url,max=2048"`
}

// ReceiptResponse is the public view of a receipt
type ReceiptResponse struct {
	ID         uuid.UUID `json:"id"`
	ExpenseID  uuid.UUID `json:"expense_id"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploaded_at"`
}
