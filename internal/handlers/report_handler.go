package handlers

import (
	"net/http"

	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ReportHandler handles spending report and budget status endpoints
type ReportHandler struct {
	reportService services.ReportServiceInterface
	chartService  services.ChartServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(
	reportService services.ReportServiceInterface,
	chartService services.ChartServiceInterface,
) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		chartService:  chartService,
	}
}

// Summary returns the aggregated spending report for a date range
func (h *ReportHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, errCode := h.loadReport(c, userID)
	if errCode != "" {
		return SendError(c, errCode)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: toSpendingReportResponse(report)})
}

// Budgets returns the budget statuses for a month
func (h *ReportHandler) Budgets(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	rawMonth := c.QueryParam("month")
	if rawMonth == "" {
		return SendError(c, errors.BudgetInvalidMonth)
	}
	month, err := parseMonth(rawMonth)
	if err != nil {
		return SendError(c, errors.BudgetInvalidMonth)
	}

	statuses, err := h.reportService.GetBudgetStatuses(userID, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	responses := make([]dto.BudgetStatusResponse, 0, len(statuses))
	for _, status := range statuses {
		responses = append(responses, dto.BudgetStatusResponse{
			BudgetID:   status.BudgetID,
			CategoryID: status.CategoryID,
			Category:   status.Category,
			Month:      status.Month.Format(monthLayout),
			Amount:     status.Amount.StringFixed(2),
			Spent:      status.Spent.StringFixed(2),
			Percentage: status.Percentage.StringFixed(2),
			Status:     status.Status,
		})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: responses})
}

// DailyChart renders the daily spending line chart for a date range as PNG
func (h *ReportHandler) DailyChart(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, errCode := h.loadReport(c, userID)
	if errCode != "" {
		return SendError(c, errCode)
	}

	png, err := h.chartService.DailySpendingChart(report)
	if err != nil {
		if err == services.ErrNoChartData {
			return SendError(c, errors.ReportNoData)
		}
		return SendSystemError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CategoryChart renders the category breakdown pie chart for a date range as PNG
func (h *ReportHandler) CategoryChart(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, errCode := h.loadReport(c, userID)
	if errCode != "" {
		return SendError(c, errCode)
	}

	png, err := h.chartService.CategoryBreakdownChart(report)
	if err != nil {
		if err == services.ErrNoChartData {
			return SendError(c, errors.ReportNoData)
		}
		return SendSystemError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// loadReport parses the shared start_date/end_date range and builds the report
func (h *ReportHandler) loadReport(c echo.Context, userID uuid.UUID) (*models.SpendingReport, errors.ErrorCode) {
	rawStart := c.QueryParam("start_date")
	rawEnd := c.QueryParam("end_date")
	if rawStart == "" || rawEnd == "" {
		return nil, errors.ReportInvalidRange
	}

	startDate, err := parseDate(rawStart)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}
	endDate, err := parseDate(rawEnd)
	if err != nil {
		return nil, errors.ValidationInvalidDate
	}

	report, err := h.reportService.GetSpendingReport(userID, startDate, endDate)
	if err != nil {
		if err == services.ErrInvalidDateRange {
			return nil, errors.ReportInvalidRange
		}
		return nil, errors.SystemInternalError
	}
	return report, ""
}

func toSpendingReportResponse(report *models.SpendingReport) dto.SpendingReportResponse {
	resp := dto.SpendingReportResponse{
		StartDate:      report.StartDate.Format(dateLayout),
		EndDate:        report.EndDate.Format(dateLayout),
		Total:          report.Total.StringFixed(2),
		ExpenseCount:   report.ExpenseCount,
		CategoryTotals: make([]dto.CategoryTotalResponse, 0, len(report.CategoryTotals)),
		DailyTotals:    make([]dto.DailyTotalResponse, 0, len(report.DailyTotals)),
		GeneratedAt:    report.GeneratedAt,
	}
	for _, ct := range report.CategoryTotals {
		resp.CategoryTotals = append(resp.CategoryTotals, dto.CategoryTotalResponse{
			Category:     ct.Category,
			Color:        ct.Color,
			Total:        ct.Total.StringFixed(2),
			ExpenseCount: ct.ExpenseCount,
		})
	}
	for _, dt := range report.DailyTotals {
		resp.DailyTotals = append(resp.DailyTotals, dto.DailyTotalResponse{
			Date:  dt.Date.Format(dateLayout),
			Total: dt.Total.StringFixed(2),
		})
	}
	return resp
}
