package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrBudgetAmountNotPositive = errors.New("budget amount must be positive")
	ErrBudgetCategoryRequired  = errors.New("budget category is required")
	ErrBudgetMonthRequired     = errors.New("budget month is required")
)

// Budget caps spending for one category during one calendar month. The month
// column anchors the period; it is normalized to the first day of the month.
// At most one budget exists per (category, owner, month). The "spent" figure
// is never stored, it is derived at read time from the expense table.
type Budget struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_budgets_category_user_month" json:"category_id"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_budgets_category_user_month" json:"user_id"`
	Month      time.Time       `gorm:"type:date;not null;uniqueIndex:idx_budgets_category_user_month" json:"month"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`

	// Associations
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
}

// BeforeCreate hook for Budget
func (b *Budget) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.Month = NormalizeMonth(b.Month)
	return b.Validate()
}

// Validate validates the budget fields
func (b *Budget) Validate() error {
	if b.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrBudgetAmountNotPositive
	}
	if b.CategoryID == uuid.Nil {
		return ErrBudgetCategoryRequired
	}
	if b.Month.IsZero() {
		return ErrBudgetMonthRequired
	}
	if b.UserID == uuid.Nil {
		return errors.New("budget owner is required")
	}
	return nil
}

// PeriodStart returns the first day of the budget's month.
func (b *Budget) PeriodStart() time.Time {
	return NormalizeMonth(b.Month)
}

// PeriodEnd returns the last instant of the budget's month.
func (b *Budget) PeriodEnd() time.Time {
	return b.PeriodStart().AddDate(0, 1, 0).Add(-time.Second)
}

// TableName returns the table name for Budget
func (b *Budget) TableName() string {
	return "budgets"
}

// NormalizeMonth collapses any date to the first day of its month at midnight UTC.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
