package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validBudget() Budget {
	return Budget{
		Amount:     decimal.RequireFromString("300.00"),
		CategoryID: uuid.New(),
		UserID:     uuid.New(),
		Month:      time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestBudget_Validate(t *testing.T) {
	budget := validBudget()
	assert.NoError(t, budget.Validate())

	budget = validBudget()
	budget.Amount = decimal.Zero
	assert.ErrorIs(t, budget.Validate(), ErrBudgetAmountNotPositive)

	budget = validBudget()
	budget.CategoryID = uuid.Nil
	assert.ErrorIs(t, budget.Validate(), ErrBudgetCategoryRequired)

	budget = validBudget()
	budget.Month = time.Time{}
	assert.ErrorIs(t, budget.Validate(), ErrBudgetMonthRequired)
}

func TestBudget_Period(t *testing.T) {
	budget := validBudget()
	budget.Month = time.Date(2025, time.March, 17, 13, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), budget.PeriodStart())
	assert.Equal(t, time.Date(2025, time.March, 31, 23, 59, 59, 0, time.UTC), budget.PeriodEnd())
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		input    time.Time
		expected time.Time
	}{
		{
			input:    time.Date(2025, time.March, 17, 13, 30, 45, 0, time.UTC),
			expected: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			input:    time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
			expected: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			input:    time.Date(2025, time.December, 31, 23, 59, 59, 0, time.UTC),
			expected: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeMonth(tt.input))
	}
}
