package repositories

import (
	"errors"
	"fmt"

	"pennywise/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category with this name already exists")
)

// categoryRepository implements CategoryRepositoryInterface
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{
		db: db,
	}
}

// Create creates a new category
func (r *categoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// CreateBatch creates multiple categories in a single database transaction.
// Used to seed the default set at registration.
func (r *categoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to create categories: %w", err)
		}
		return nil
	})
}

// GetByID retrieves one of the user's categories by ID
func (r *categoryRepository) GetByID(userID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetByName retrieves one of the user's categories by name
func (r *categoryRepository) GetByName(userID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}
	return &category, nil
}

// ListByUserID retrieves all categories owned by the user
func (r *categoryRepository) ListByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Where("user_id = ?", userID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// Update updates a category's name and color
func (r *categoryRepository) Update(category *models.Category) error {
	result := r.db.Model(&models.Category{}).
		Where("id = ? AND user_id = ?", category.ID, category.UserID).
		Updates(map[string]interface{}{
			"name":  category.Name,
			"color": category.Color,
		})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// Delete removes a category. Expenses that referenced it keep existing with a
// null category; budgets attached to it are deleted. All three steps run in
// one transaction so a partial delete can never leave dangling references.
func (r *categoryRepository) Delete(userID, id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.Where("id = ? AND user_id = ?", id, userID).First(&category).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}
			return fmt.Errorf("failed to get category: %w", err)
		}

		if err := tx.Model(&models.Expense{}).
			Where("category_id = ? AND user_id = ?", id, userID).
			Update("category_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach expenses: %w", err)
		}

		if err := tx.Where("category_id = ? AND user_id = ?", id, userID).
			Delete(&models.Budget{}).Error; err != nil {
			return fmt.Errorf("failed to delete budgets: %w", err)
		}

		if err := tx.Delete(&category).Error; err != nil {
			return fmt.Errorf("failed to delete category: %w", err)
		}

		return nil
	})
}

// CountByUserID counts the user's categories
func (r *categoryRepository) CountByUserID(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count categories: %w", err)
	}
	return count, nil
}
