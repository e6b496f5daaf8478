package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,category_color"`
}

// UpdateCategoryRequest is the payload for updating a category
type UpdateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Color string `json:"color" validate:"omitempty,category_color"`
}

// CategoryResponse is the public view of a category
type CategoryResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
