package models

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrCategoryNameTooLong  = errors.New("category name must not exceed 100 characters")
	ErrCategoryColorInvalid = errors.New("category color must be a hex value like #4ECDC4")

	hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// Category represents a user-defined spending category. Names are unique per
// owner. Deleting a category nulls the reference on expenses that used it and
// cascades to budgets attached to it.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name" json:"name"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#C7C7C7'" json:"color"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_categories_user_name" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// BeforeCreate hook for Category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.Color == "" {
		c.Color = "#C7C7C7"
	}
	return c.Validate()
}

// Validate validates the category fields
func (c *Category) Validate() error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return ErrCategoryNameRequired
	}
	if len(name) > 100 {
		return ErrCategoryNameTooLong
	}
	if c.Color != "" && !hexColorRegex.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}
	if c.UserID == uuid.Nil {
		return errors.New("category owner is required")
	}
	return nil
}

// TableName returns the table name for Category
func (c *Category) TableName() string {
	return "categories"
}

// DefaultCategory describes a category seeded for every new user.
type DefaultCategory struct {
	Name  string
	Color string
}

// DefaultCategories returns the set seeded at registration.
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Food", Color: "#FF6B6B"},
		{Name: "Transport", Color: "#4ECDC4"},
		{Name: "Housing", Color: "#45B7D1"},
		{Name: "Utilities", Color: "#98D8C8"},
		{Name: "Entertainment", Color: "#96CEB4"},
		{Name: "Health", Color: "#FFEAA7"},
		{Name: "Shopping", Color: "#DDA0DD"},
		{Name: "Other", Color: "#C7C7C7"},
	}
}
