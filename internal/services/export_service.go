package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"time"

	"pennywise/internal/models"

	"github.com/jung-kurt/gofpdf"
)

const (
	exportDateLayout = "01/02/2006"

	// Longer descriptions are truncated in the PDF detail table so rows
	// keep a fixed height.
	pdfDescriptionLimit = 30
	pdfPageBreakY       = 270.0
)

// ExportService renders expense lists into downloadable documents
type ExportService struct {
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(metrics MetricsRecorderInterface, logger *slog.Logger) ExportServiceInterface {
	return &ExportService{
		metrics: metrics,
		logger:  logger,
	}
}

// ExportCSV renders expenses as an RFC 4180 CSV document with a header row.
// One data row per expense, in the order given.
func (s *ExportService) ExportCSV(expenses []models.Expense) ([]byte, error) {
	began := time.Now()

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"Date", "Description", "Amount", "Category", "Payment Method"}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, expense := range expenses {
		record := []string{
			expense.Date.Format(exportDateLayout),
			expense.Description,
			expense.Amount.StringFixed(2),
			expense.CategoryName(),
			expense.PaymentMethod,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}

	s.metrics.IncrementCounter("exports_generated", map[string]string{"format": "csv"})
	s.metrics.RecordProcessingTime("export_csv", time.Since(began))

	return buf.Bytes(), nil
}

// ExportPDF renders expenses as a paginated PDF report with a summary block,
// a per-category breakdown and a detail table.
func (s *ExportService) ExportPDF(expenses []models.Expense, startDate, endDate time.Time) ([]byte, error) {
	began := time.Now()

	report := BuildSpendingReport(expenses, models.TruncateToDay(startDate), models.TruncateToDay(endDate))

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "Expense Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	rangeLine := fmt.Sprintf("%s - %s",
		startDate.Format(exportDateLayout), endDate.Format(exportDateLayout))
	pdf.CellFormat(0, 8, rangeLine, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Total: $%s", report.Total.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Expenses: %d", report.ExpenseCount), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	if len(report.CategoryTotals) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "By Category", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, ct := range report.CategoryTotals {
			line := fmt.Sprintf("%s: $%s (%d)", ct.Category, ct.Total.StringFixed(2), ct.ExpenseCount)
			pdf.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	s.writeDetailTable(pdf, expenses)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	s.metrics.IncrementCounter("exports_generated", map[string]string{"format": "pdf"})
	s.metrics.RecordProcessingTime("export_pdf", time.Since(began))

	return buf.Bytes(), nil
}

func (s *ExportService) writeDetailTable(pdf *gofpdf.Fpdf, expenses []models.Expense) {
	widths := []float64{25, 65, 28, 40, 32}
	headers := []string{"Date", "Description", "Amount", "Category", "Payment"}

	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		for i, h := range headers {
			pdf.CellFormat(widths[i], 8, h, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}
	writeHeader()

	for _, expense := range expenses {
		if pdf.GetY() > pdfPageBreakY {
			pdf.AddPage()
			writeHeader()
		}

		cells := []string{
			expense.Date.Format(exportDateLayout),
			truncateDescription(expense.Description),
			"$" + expense.Amount.StringFixed(2),
			expense.CategoryName(),
			expense.PaymentMethod,
		}
		aligns := []string{"L", "L", "R", "L", "L"}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 7, c, "1", 0, aligns[i], false, 0, "")
		}
		pdf.Ln(-1)
	}
}

func truncateDescription(description string) string {
	runes := []rune(description)
	if len(runes) <= pdfDescriptionLimit {
		return description
	}
	return string(runes[:pdfDescriptionLimit]) + "..."
}
