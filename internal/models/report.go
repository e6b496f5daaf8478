package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget health classification thresholds, in percent of the budget amount.
const (
	BudgetStatusOK       = "ok"
	BudgetStatusWarning  = "warning"
	BudgetStatusExceeded = "exceeded"

	BudgetWarningThreshold = 80
)

// SpendingReport is the aggregation result for a bounded date range: total
// spend, per-category rollups and one bucket per calendar day in the range.
type SpendingReport struct {
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	Total          decimal.Decimal `json:"total"`
	ExpenseCount   int             `json:"expense_count"`
	CategoryTotals []CategoryTotal `json:"category_totals"`
	DailyTotals    []DailyTotal    `json:"daily_totals"`
	GeneratedAt    time.Time       `json:"generated_at"`
}

// CategoryTotal is one per-category aggregation bucket. Expenses without a
// category roll up under the Uncategorized label.
type CategoryTotal struct {
	Category     string          `json:"category"`
	Color        string          `json:"color,omitempty"`
	Total        decimal.Decimal `json:"total"`
	ExpenseCount int             `json:"expense_count"`
}

// DailyTotal is one per-day aggregation bucket. Every calendar day in the
// requested range appears exactly once, zero-spend days included, so charts
// stay continuous.
type DailyTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// BudgetStatus pairs a budget with its derived spend for the budget's month.
// Spent and percentage are computed at read time and are only as fresh as the
// expense rows backing them.
type BudgetStatus struct {
	BudgetID   uuid.UUID       `json:"budget_id"`
	CategoryID uuid.UUID       `json:"category_id"`
	Category   string          `json:"category"`
	Month      time.Time       `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	Spent      decimal.Decimal `json:"spent"`
	Percentage decimal.Decimal `json:"percentage"`
	Status     string          `json:"status"`
}

// ClassifyBudgetUsage maps a spend percentage to a budget health label.
func ClassifyBudgetUsage(percentage decimal.Decimal) string {
	switch {
	case percentage.GreaterThan(decimal.NewFromInt(100)):
		return BudgetStatusExceeded
	case percentage.GreaterThanOrEqual(decimal.NewFromInt(BudgetWarningThreshold)):
		return BudgetStatusWarning
	default:
		return BudgetStatusOK
	}
}
