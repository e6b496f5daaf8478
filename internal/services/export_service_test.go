package services

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"testing"
	"time"

	"pennywise/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// ExportServiceTestSuite defines the test suite for ExportService
type ExportServiceTestSuite struct {
	suite.Suite
	service ExportServiceInterface
}

func (s *ExportServiceTestSuite) SetupTest() {
	s.service = NewExportService(noopMetrics{}, slog.Default())
}

func TestExportServiceSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}

func sampleExpenses() []models.Expense {
	food := &models.Category{Name: "Food", Color: "#FF6B6B"}
	return []models.Expense{
		{
			Amount:        decimal.RequireFromString("42.50"),
			Description:   "Weekly groceries",
			Date:          day(2025, time.March, 3),
			Category:      food,
			PaymentMethod: models.PaymentMethodCreditCard,
		},
		{
			Amount:        decimal.RequireFromString("9.99"),
			Description:   "Coffee, with \"quotes\" and, commas",
			Date:          day(2025, time.March, 5),
			PaymentMethod: models.PaymentMethodCash,
		},
	}
}

func (s *ExportServiceTestSuite) TestExportCSV_HeaderAndRows() {
	document, err := s.service.ExportCSV(sampleExpenses())
	s.Require().NoError(err)

	reader := csv.NewReader(bytes.NewReader(document))
	records, err := reader.ReadAll()
	s.Require().NoError(err)

	s.Require().Len(records, 3)
	s.Equal([]string{"Date", "Description", "Amount", "Category", "Payment Method"}, records[0])

	s.Equal([]string{"03/03/2025", "Weekly groceries", "42.50", "Food", "credit_card"}, records[1])

	// Quoted fields must survive the round trip intact
	s.Equal("Coffee, with \"quotes\" and, commas", records[2][1])
	s.Equal(models.UncategorizedLabel, records[2][3])
}

func (s *ExportServiceTestSuite) TestExportCSV_Empty() {
	document, err := s.service.ExportCSV(nil)
	s.Require().NoError(err)

	reader := csv.NewReader(bytes.NewReader(document))
	records, err := reader.ReadAll()
	s.Require().NoError(err)
	s.Len(records, 1)
}

func (s *ExportServiceTestSuite) TestExportCSV_AmountsAlwaysTwoDecimals() {
	expenses := []models.Expense{
		{
			Amount:        decimal.RequireFromString("5"),
			Description:   "flat",
			Date:          day(2025, time.March, 1),
			PaymentMethod: models.PaymentMethodCash,
		},
	}

	document, err := s.service.ExportCSV(expenses)
	s.Require().NoError(err)

	reader := csv.NewReader(bytes.NewReader(document))
	records, err := reader.ReadAll()
	s.Require().NoError(err)
	s.Equal("5.00", records[1][2])
}

func (s *ExportServiceTestSuite) TestExportPDF_ProducesDocument() {
	document, err := s.service.ExportPDF(sampleExpenses(), day(2025, time.March, 1), day(2025, time.March, 31))
	s.Require().NoError(err)
	s.NotEmpty(document)
	s.True(bytes.HasPrefix(document, []byte("%PDF")), "output must be a PDF document")
}

func (s *ExportServiceTestSuite) TestExportPDF_ManyRowsPaginate() {
	expenses := make([]models.Expense, 0, 120)
	for i := 0; i < 120; i++ {
		expenses = append(expenses, models.Expense{
			Amount:        decimal.RequireFromString("10.00"),
			Description:   "row filler expense with a fairly long description text",
			Date:          day(2025, time.March, 1).AddDate(0, 0, i%30),
			PaymentMethod: models.PaymentMethodDebitCard,
		})
	}

	document, err := s.service.ExportPDF(expenses, day(2025, time.March, 1), day(2025, time.March, 31))
	s.Require().NoError(err)
	s.True(bytes.HasPrefix(document, []byte("%PDF")))
}

func TestTruncateDescription(t *testing.T) {
	short := "short text"
	if got := truncateDescription(short); got != short {
		t.Errorf("short descriptions must pass through, got %q", got)
	}

	long := "this description is far longer than the limit allows in the table"
	got := truncateDescription(long)
	if len([]rune(got)) != 33 {
		t.Errorf("expected 30 runes plus ellipsis, got %d runes", len([]rune(got)))
	}
	if got[len(got)-3:] != "..." {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
}
