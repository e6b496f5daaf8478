package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"pennywise/internal/database"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"
	"pennywise/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ExportHandlerTestSuite struct {
	suite.Suite
	db       *database.DB
	e        *echo.Echo
	handler  *ExportHandler
	user     *models.User
	category *models.Category
}

func (s *ExportHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.e = newTestEcho()
	s.handler = NewExportHandler(
		repositories.NewExpenseRepository(s.db.DB),
		services.NewExportService(noopMetrics{}, slog.Default()),
	)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.category = database.CreateTestCategory(s.T(), s.db, s.user, "Food", "#FF6B6B")
}

func (s *ExportHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExportHandlerTestSuite))
}

func (s *ExportHandlerTestSuite) TestCSV() {
	createTestExpense(s.db, s.user, "42.50", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), s.category)

	c, rec := newJSONContext(s.e, http.MethodGet,
		"/api/v1/exports/csv?start_date=2025-03-01&end_date=2025-03-31", "", s.user)

	s.Require().NoError(s.handler.CSV(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/csv", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="expenses_2025-03-01_2025-03-31.csv"`,
		rec.Header().Get(echo.HeaderContentDisposition))

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	s.Require().Len(lines, 2)
	s.Equal("Date,Description,Amount,Category,Payment Method", strings.TrimSpace(lines[0]))
	s.Contains(lines[1], "03/03/2025")
	s.Contains(lines[1], "42.50")
	s.Contains(lines[1], "Food")
}

func (s *ExportHandlerTestSuite) TestCSV_ScopedToRange() {
	createTestExpense(s.db, s.user, "10.00", time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), nil)
	createTestExpense(s.db, s.user, "20.00", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), nil)

	c, rec := newJSONContext(s.e, http.MethodGet,
		"/api/v1/exports/csv?start_date=2025-03-01&end_date=2025-03-31", "", s.user)

	s.Require().NoError(s.handler.CSV(c))

	body := rec.Body.String()
	s.Contains(body, "20.00")
	s.NotContains(body, "02/15/2025")
}

func (s *ExportHandlerTestSuite) TestCSV_MissingRange() {
	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/exports/csv", "", s.user)

	s.Require().NoError(s.handler.CSV(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var errorResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal(string(errors.ReportInvalidRange), errorResp.Error.Code)
}

func (s *ExportHandlerTestSuite) TestCSV_InvertedRange() {
	c, rec := newJSONContext(s.e, http.MethodGet,
		"/api/v1/exports/csv?start_date=2025-03-31&end_date=2025-03-01", "", s.user)

	s.Require().NoError(s.handler.CSV(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ExportHandlerTestSuite) TestPDF() {
	createTestExpense(s.db, s.user, "42.50", time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), s.category)

	c, rec := newJSONContext(s.e, http.MethodGet,
		"/api/v1/exports/pdf?start_date=2025-03-01&end_date=2025-03-31", "", s.user)

	s.Require().NoError(s.handler.PDF(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("application/pdf", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="expense-report_2025-03-01_2025-03-31.pdf"`,
		rec.Header().Get(echo.HeaderContentDisposition))
	s.True(strings.HasPrefix(rec.Body.String(), "%PDF"))
}
