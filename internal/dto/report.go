package dto

import (
	"time"

	"github.com/google/uuid"
)

// SpendingReportResponse is the serialized form of an aggregated report
type SpendingReportResponse struct {
	StartDate      string                  `json:"start_date"`
	EndDate        string                  `json:"end_date"`
	Total          string                  `json:"total"`
	ExpenseCount   int                     `json:"expense_count"`
	CategoryTotals []CategoryTotalResponse `json:"category_totals"`
	DailyTotals    []DailyTotalResponse    `json:"daily_totals"`
	GeneratedAt    time.Time               `json:"generated_at"`
}

// CategoryTotalResponse is one category slice of a spending report
type CategoryTotalResponse struct {
	Category     string `json:"category"`
	Color        string `json:"color"`
	Total        string `json:"total"`
	ExpenseCount int    `json:"expense_count"`
}

// DailyTotalResponse is one calendar-day bucket of a spending report
type DailyTotalResponse struct {
	Date  string `json:"date"`
	Total string `json:"total"`
}

// BudgetStatusResponse is the serialized form of a budget usage check
type BudgetStatusResponse struct {
	BudgetID   uuid.UUID `json:"budget_id"`
	CategoryID uuid.UUID `json:"category_id"`
	Category   string    `json:"category"`
	Month      string    `json:"month"`
	Amount     string    `json:"amount"`
	Spent      string    `json:"spent"`
	Percentage string    `json:"percentage"`
	Status     string    `json:"status"`
}
