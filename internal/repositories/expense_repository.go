package repositories

import (
	"errors"
	"fmt"
	"time"

	"pennywise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

// expenseRepository implements ExpenseRepositoryInterface
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) ExpenseRepositoryInterface {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense
func (r *expenseRepository) Create(expense *models.Expense) error {
	if err := r.db.Create(expense).Error; err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's expenses by ID, with its category preloaded
func (r *expenseRepository) GetByID(userID, id uuid.UUID) (*models.Expense, error) {
	var expense models.Expense
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &expense, nil
}

// GetWithFilters retrieves expenses matching the filter predicates
func (r *expenseRepository) GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error) {
	var expenses []models.Expense
	var total int64

	query := r.db.Model(&models.Expense{}).Where("user_id = ?", filters.UserID)

	if filters.StartDate != nil {
		query = query.Where("date >= ?", models.TruncateToDay(*filters.StartDate))
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", models.TruncateToDay(*filters.EndDate))
	}
	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Uncategorized {
		query = query.Where("category_id IS NULL")
	}
	if filters.PaymentMethod != "" {
		query = query.Where("payment_method = ?", filters.PaymentMethod)
	}
	if filters.MinAmount != nil {
		query = query.Where("amount >= ?", *filters.MinAmount)
	}
	if filters.MaxAmount != nil {
		query = query.Where("amount <= ?", *filters.MaxAmount)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered expenses: %w", err)
	}

	query = query.Preload("Category").Order("date DESC, created_at DESC")
	if filters.Offset > 0 {
		query = query.Offset(filters.Offset)
	}
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	if err := query.Find(&expenses).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered expenses: %w", err)
	}

	return expenses, total, nil
}

// GetByDateRange retrieves the user's expenses whose calendar date falls in
// [startDate, endDate], category preloaded for aggregation and export.
func (r *expenseRepository) GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error) {
	var expenses []models.Expense
	if err := r.db.Preload("Category").
		Where("user_id = ? AND date >= ? AND date <= ?",
			userID, models.TruncateToDay(startDate), models.TruncateToDay(endDate)).
		Order("date ASC, created_at ASC").
		Find(&expenses).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses by date range: %w", err)
	}
	return expenses, nil
}

// SumByCategoryAndRange sums the user's expenses for one category inside a
// date window. Backs the derived budget "spent" figure; never persisted.
func (r *expenseRepository) SumByCategoryAndRange(userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error) {
	var result struct {
		Total decimal.Decimal
	}
	if err := r.db.Model(&models.Expense{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("user_id = ? AND category_id = ? AND date >= ? AND date <= ?",
			userID, categoryID, models.TruncateToDay(startDate), models.TruncateToDay(endDate)).
		Scan(&result).Error; err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum expenses: %w", err)
	}
	return result.Total, nil
}

// Update updates an expense's mutable fields. The owner is immutable.
func (r *expenseRepository) Update(expense *models.Expense) error {
	result := r.db.Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", expense.ID, expense.UserID).
		Updates(map[string]interface{}{
			"amount":         expense.Amount,
			"description":    expense.Description,
			"date":           models.TruncateToDay(expense.Date),
			"category_id":    expense.CategoryID,
			"payment_method": expense.PaymentMethod,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update expense: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrExpenseNotFound
	}
	return nil
}

// Delete removes an expense and its receipts in one transaction
func (r *expenseRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var expense models.Expense
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&expense).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrExpenseNotFound
			}
			return fmt.Errorf("failed to get expense: %w", err)
		}

		if err := tx.Where("expense_id = ?", id).Delete(&models.Receipt{}).Error; err != nil {
			return fmt.Errorf("failed to delete receipts: %w", err)
		}

		if err := tx.Delete(&expense).Error; err != nil {
			return fmt.Errorf("failed to delete expense: %w", err)
		}

		return nil
	})
}

// DeleteBatch removes the user's expenses matching the ID list, together with
// their receipts. Returns the number of expenses removed; IDs belonging to
// other users are silently skipped by the ownership predicate.
func (r *expenseRepository) DeleteBatch(userID uuid.UUID, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("expense_id IN (SELECT id FROM expenses WHERE id IN ? AND user_id = ?)", ids, userID).
			Delete(&models.Receipt{}).Error; err != nil {
			return fmt.Errorf("failed to delete receipts: %w", err)
		}

		result := tx.Where("id IN ? AND user_id = ?", ids, userID).Delete(&models.Expense{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete expenses: %w", result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	return deleted, err
}
