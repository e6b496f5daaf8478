package repositories

import (
	"errors"
	"fmt"

	"pennywise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
)

// receiptRepository implements ReceiptRepositoryInterface. Receipts have no
// owner column of their own, so every operation joins through the parent
// expense to enforce isolation.
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) ReceiptRepositoryInterface {
	return &receiptRepository{
		db: db,
	}
}

// Create attaches a receipt to one of the user's expenses
func (r *receiptRepository) Create(userID uuid.UUID, receipt *models.Receipt) error {
	var expense models.Expense
	if err := r.db.Where("id = ? AND user_id = ?", receipt.ExpenseID, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExpenseNotFound
		}
		return fmt.Errorf("failed to verify expense ownership: %w", err)
	}

	if err := r.db.Create(receipt).Error; err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}
	return nil
}

// GetByID retrieves a receipt scoped through the parent expense's owner
func (r *receiptRepository) GetByID(userID, id uuid.UUID) (*models.Receipt, error) {
	var receipt models.Receipt
	if err := r.db.
		Joins("JOIN expenses ON expenses.id = receipts.expense_id").
		Where("receipts.id = ? AND expenses.user_id = ?", id, userID).
		First(&receipt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get receipt: %w", err)
	}
	return &receipt, nil
}

// ListByExpenseID retrieves all receipts for one of the user's expenses
func (r *receiptRepository) ListByExpenseID(userID, expenseID uuid.UUID) ([]models.Receipt, error) {
	var expense models.Expense
	if err := r.db.Where("id = ? AND user_id = ?", expenseID, userID).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExpenseNotFound
		}
		return nil, fmt.Errorf("failed to verify expense ownership: %w", err)
	}

	var receipts []models.Receipt
	if err := r.db.Where("expense_id = ?", expenseID).
		Order("uploaded_at ASC").
		Find(&receipts).Error; err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}
	return receipts, nil
}

// Delete removes a receipt scoped through the parent expense's owner
func (r *receiptRepository) Delete(userID, id uuid.UUID) error {
	receipt, err := r.GetByID(userID, id)
	if err != nil {
		return err
	}

	if err := r.db.Delete(receipt).Error; err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	return nil
}
