package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment method labels accepted for an expense. Stored as free text, the
// handler layer constrains input to this set.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCreditCard   = "credit_card"
	PaymentMethodDebitCard    = "debit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodOther        = "other"
)

// UncategorizedLabel is the fallback group label used by aggregation when an
// expense has no category, e.g. after its category was deleted.
const UncategorizedLabel = "Uncategorized"

var (
	ErrExpenseAmountNotPositive  = errors.New("expense amount must be positive")
	ErrExpenseDateRequired       = errors.New("expense date is required")
	ErrInvalidPaymentMethod      = errors.New("invalid payment method")
	ErrExpenseDescriptionTooLong = errors.New("expense description must not exceed 500 characters")
)

// Expense represents a single recorded spend. The category reference is
// optional and is set to NULL when the category is deleted; the expense
// itself survives.
type Expense struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description   string          `gorm:"type:varchar(500)" json:"description"`
	Date          time.Time       `gorm:"type:date;not null;index" json:"date"`
	CategoryID    *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	PaymentMethod string          `gorm:"type:varchar(50);not null;default:'cash'" json:"payment_method"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

// BeforeCreate hook for Expense
func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.PaymentMethod == "" {
		e.PaymentMethod = PaymentMethodCash
	}
	e.Date = TruncateToDay(e.Date)
	return e.Validate()
}

// Validate validates the expense fields
func (e *Expense) Validate() error {
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrExpenseAmountNotPositive
	}
	if e.Date.IsZero() {
		return ErrExpenseDateRequired
	}
	if !IsValidPaymentMethod(e.PaymentMethod) {
		return ErrInvalidPaymentMethod
	}
	if len(e.Description) > 500 {
		return ErrExpenseDescriptionTooLong
	}
	if e.UserID == uuid.Nil {
		return errors.New("expense owner is required")
	}
	return nil
}

// CategoryName resolves the display label for aggregation and export. An
// expense whose category was deleted reports as Uncategorized.
func (e *Expense) CategoryName() string {
	if e.Category == nil || e.Category.Name == "" {
		return UncategorizedLabel
	}
	return e.Category.Name
}

// TableName returns the table name for Expense
func (e *Expense) TableName() string {
	return "expenses"
}

// AllPaymentMethods returns all valid payment method labels
func AllPaymentMethods() []string {
	return []string{
		PaymentMethodCash,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodBankTransfer,
		PaymentMethodOther,
	}
}

// IsValidPaymentMethod checks if a payment method label is valid
func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard,
		PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	default:
		return false
	}
}

// TruncateToDay drops the time-of-day component, keeping the calendar date.
// Daily aggregation buckets are keyed on this value.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
