package handlers

import (
	"net/http"

	"pennywise/internal/errors"
	"pennywise/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface) *DevHandler {
	return &DevHandler{
		sampleData: sampleData,
	}
}

// GenerateSampleData fills the authenticated user's account with fake
// expense history spread over the last 90 days.
//
// Query parameters:
//   - count: Number of expenses to generate (default: 100, max: 1000)
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	count := getIntParam(c, "count", 100)

	expenses, err := h.sampleData.GenerateExpenses(userID, count)
	if err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    map[string]int{"expenses_created": len(expenses)},
		Message: "Sample data generated successfully",
	})
}
