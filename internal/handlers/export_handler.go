package handlers

import (
	"fmt"
	"net/http"
	"time"

	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"
	"pennywise/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ExportHandler handles expense export endpoints
type ExportHandler struct {
	expenseRepo   repositories.ExpenseRepositoryInterface
	exportService services.ExportServiceInterface
}

// NewExportHandler creates a new export handler
func NewExportHandler(
	expenseRepo repositories.ExpenseRepositoryInterface,
	exportService services.ExportServiceInterface,
) *ExportHandler {
	return &ExportHandler{
		expenseRepo:   expenseRepo,
		exportService: exportService,
	}
}

// CSV streams the user's expenses for a date range as a CSV download
func (h *ExportHandler) CSV(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, startDate, endDate, errCode := h.loadRange(c, userID)
	if errCode != "" {
		return SendError(c, errCode)
	}

	document, err := h.exportService.ExportCSV(expenses)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := exportFilename("expenses", startDate, endDate, "csv")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "text/csv", document)
}

// PDF streams the user's expense report for a date range as a PDF download
func (h *ExportHandler) PDF(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	expenses, startDate, endDate, errCode := h.loadRange(c, userID)
	if errCode != "" {
		return SendError(c, errCode)
	}

	document, err := h.exportService.ExportPDF(expenses, startDate, endDate)
	if err != nil {
		return SendSystemError(c, err)
	}

	filename := exportFilename("expense-report", startDate, endDate, "pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/pdf", document)
}

func (h *ExportHandler) loadRange(c echo.Context, userID uuid.UUID) ([]models.Expense, time.Time, time.Time, errors.ErrorCode) {
	rawStart := c.QueryParam("start_date")
	rawEnd := c.QueryParam("end_date")
	if rawStart == "" || rawEnd == "" {
		return nil, time.Time{}, time.Time{}, errors.ReportInvalidRange
	}

	startDate, err := parseDate(rawStart)
	if err != nil {
		return nil, time.Time{}, time.Time{}, errors.ValidationInvalidDate
	}
	endDate, err := parseDate(rawEnd)
	if err != nil {
		return nil, time.Time{}, time.Time{}, errors.ValidationInvalidDate
	}
	if startDate.After(endDate) {
		return nil, time.Time{}, time.Time{}, errors.ReportInvalidRange
	}

	expenses, err := h.expenseRepo.GetByDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, time.Time{}, time.Time{}, errors.SystemDatabaseError
	}

	return expenses, startDate, endDate, ""
}

func exportFilename(prefix string, startDate, endDate time.Time, ext string) string {
	return fmt.Sprintf("%s_%s_%s.%s",
		prefix, startDate.Format(dateLayout), endDate.Format(dateLayout), ext)
}
