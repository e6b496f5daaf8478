package repositories

import (
	"errors"
	"fmt"
	"time"

	"pennywise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBudgetNotFound      = errors.New("budget not found")
	ErrBudgetAlreadyExists = errors.New("budget for this category and month already exists")
)

// budgetRepository implements BudgetRepositoryInterface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepositoryInterface {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget
func (r *budgetRepository) Create(budget *models.Budget) error {
	if err := r.db.Create(budget).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrBudgetAlreadyExists
		}
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// GetByID retrieves one of the user's budgets by ID, category preloaded
func (r *budgetRepository) GetByID(userID, id uuid.UUID) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Preload("Category").
		Where("id = ? AND user_id = ?", id, userID).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// GetByCategoryAndMonth retrieves the budget keyed by (category, user, month)
func (r *budgetRepository) GetByCategoryAndMonth(userID, categoryID uuid.UUID, month time.Time) (*models.Budget, error) {
	var budget models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ? AND category_id = ? AND month = ?",
			userID, categoryID, models.NormalizeMonth(month)).
		First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	return &budget, nil
}

// ListByUserID retrieves all budgets owned by the user
func (r *budgetRepository) ListByUserID(userID uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ?", userID).
		Order("month DESC, created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	return budgets, nil
}

// ListByMonth retrieves the user's budgets anchored to a given month
func (r *budgetRepository) ListByMonth(userID uuid.UUID, month time.Time) ([]models.Budget, error) {
	var budgets []models.Budget
	if err := r.db.Preload("Category").
		Where("user_id = ? AND month = ?", userID, models.NormalizeMonth(month)).
		Order("created_at ASC").
		Find(&budgets).Error; err != nil {
		return nil, fmt.Errorf("failed to list budgets by month: %w", err)
	}
	return budgets, nil
}

// Update updates a budget's amount. Category, month and owner are immutable;
// changing the period means creating a new budget.
func (r *budgetRepository) Update(budget *models.Budget) error {
	result := r.db.Model(&models.Budget{}).
		Where("id = ? AND user_id = ?", budget.ID, budget.UserID).
		Update("amount", budget.Amount)
	if result.Error != nil {
		return fmt.Errorf("failed to update budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}

// Delete removes a budget
func (r *budgetRepository) Delete(userID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Budget{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete budget: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBudgetNotFound
	}
	return nil
}
