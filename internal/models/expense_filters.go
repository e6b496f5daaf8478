package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseFilters holds optional predicates for listing expenses. The user ID
// is always required; everything else narrows the result set.
type ExpenseFilters struct {
	UserID        uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	CategoryID    *uuid.UUID
	Uncategorized bool
	PaymentMethod string
	MinAmount     *decimal.Decimal
	MaxAmount     *decimal.Decimal
	Offset        int
	Limit         int
}
