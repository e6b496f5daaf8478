package models

import (
	"errors"
	"net/url"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReceiptExpenseRequired = errors.New("receipt expense is required")
	ErrReceiptURLRequired     = errors.New("receipt URL is required")
	ErrReceiptURLInvalid      = errors.New("receipt URL must be a valid http(s) URL")
)

// Receipt links stored proof of purchase to an expense. Receipts are removed
// together with their expense.
type Receipt struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ExpenseID  uuid.UUID `gorm:"type:uuid;not null;index" json:"expense_id"`
	URL        string    `gorm:"type:varchar(2048);not null" json:"url"`
	UploadedAt time.Time `gorm:"not null" json:"uploaded_at"`

	// Associations
	Expense *Expense `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate hook for Receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.UploadedAt.IsZero() {
		r.UploadedAt = time.Now()
	}
	return r.Validate()
}

// Validate validates the receipt fields
func (r *Receipt) Validate() error {
	if r.ExpenseID == uuid.Nil {
		return ErrReceiptExpenseRequired
	}
	if r.URL == "" {
		return ErrReceiptURLRequired
	}
	parsed, err := url.Parse(r.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return ErrReceiptURLInvalid
	}
	return nil
}

// TableName returns the table name for Receipt
func (r *Receipt) TableName() string {
	return "receipts"
}
