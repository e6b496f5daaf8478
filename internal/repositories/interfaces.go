package repositories

import (
	"time"

	"pennywise/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Every repository method that touches owned rows takes the owner's user ID
// and scopes the query to it. This is the row-level isolation boundary: a
// caller can never see or mutate another user's rows through this layer.

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	CreateBatch(categories []models.Category) error
	GetByID(userID, id uuid.UUID) (*models.Category, error)
	GetByName(userID uuid.UUID, name string) (*models.Category, error)
	ListByUserID(userID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	// Delete removes the category, nulls the category reference on expenses
	// that used it and deletes budgets attached to it, all in one transaction.
	Delete(userID, id uuid.UUID) error
	CountByUserID(userID uuid.UUID) (int64, error)
}

// ExpenseRepositoryInterface defines the contract for expense repository operations
type ExpenseRepositoryInterface interface {
	Create(expense *models.Expense) error
	GetByID(userID, id uuid.UUID) (*models.Expense, error)
	GetWithFilters(filters models.ExpenseFilters) ([]models.Expense, int64, error)
	GetByDateRange(userID uuid.UUID, startDate, endDate time.Time) ([]models.Expense, error)
	SumByCategoryAndRange(userID, categoryID uuid.UUID, startDate, endDate time.Time) (decimal.Decimal, error)
	Update(expense *models.Expense) error
	// Delete removes the expense together with its receipts.
	Delete(userID, id uuid.UUID) error
	DeleteBatch(userID uuid.UUID, ids []uuid.UUID) (int64, error)
}

// BudgetRepositoryInterface defines the contract for budget repository operations
type BudgetRepositoryInterface interface {
	Create(budget *models.Budget) error
	GetByID(userID, id uuid.UUID) (*models.Budget, error)
	GetByCategoryAndMonth(userID, categoryID uuid.UUID, month time.Time) (*models.Budget, error)
	ListByUserID(userID uuid.UUID) ([]models.Budget, error)
	ListByMonth(userID uuid.UUID, month time.Time) ([]models.Budget, error)
	Update(budget *models.Budget) error
	Delete(userID, id uuid.UUID) error
}

// ReceiptRepositoryInterface defines the contract for receipt repository
// operations. Receipts carry no owner column; they are scoped through their
// parent expense's owner.
type ReceiptRepositoryInterface interface {
	Create(userID uuid.UUID, receipt *models.Receipt) error
	GetByID(userID, id uuid.UUID) (*models.Receipt, error)
	ListByExpenseID(userID, expenseID uuid.UUID) ([]models.Receipt, error)
	Delete(userID, id uuid.UUID) error
}
