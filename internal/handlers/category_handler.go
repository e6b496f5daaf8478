package handlers

import (
	"net/http"

	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category management endpoints
type CategoryHandler struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryRepo repositories.CategoryRepositoryInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryRepo: categoryRepo,
	}
}

// List returns all of the user's categories
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryRepo.ListByUserID(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, toCategoryResponse(&categories[i]))
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: responses})
}

// Create adds a new category for the user
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category := &models.Category{
		Name:   req.Name,
		Color:  req.Color,
		UserID: userID,
	}

	if err := h.categoryRepo.Create(category); err != nil {
		if err == repositories.ErrCategoryAlreadyExists {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category created successfully",
	})
}

// Get returns one of the user's categories by ID
func (h *CategoryHandler) Get(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	category, err := h.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toCategoryResponse(category)})
}

// Update renames or recolors one of the user's categories
func (h *CategoryHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryRepo.GetByID(userID, categoryID)
	if err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	category.Name = req.Name
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := h.categoryRepo.Update(category); err != nil {
		if err == repositories.ErrCategoryAlreadyExists {
			return SendError(c, errors.CategoryAlreadyExists)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    toCategoryResponse(category),
		Message: "Category updated successfully",
	})
}

// Delete removes a category. Expenses that referenced it become uncategorized
// and budgets attached to it are removed.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.CategoryInvalidID)
	}

	if err := h.categoryRepo.Delete(userID, categoryID); err != nil {
		if err == repositories.ErrCategoryNotFound {
			return SendError(c, errors.CategoryNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}
