package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pennywise/internal/database"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReceiptHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	e       *echo.Echo
	handler *ReceiptHandler
	user    *models.User
	expense *models.Expense
}

func (s *ReceiptHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.e = newTestEcho()
	s.handler = NewReceiptHandler(repositories.NewReceiptRepository(s.db.DB))
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.expense = createTestExpense(s.db, s.user, "10.00",
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), nil)
}

func (s *ReceiptHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestReceiptHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReceiptHandlerTestSuite))
}

func (s *ReceiptHandlerTestSuite) attach(url string) (*httptest.ResponseRecorder, error) {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses/x/receipts",
		`{"url":"`+url+`"}`, s.user)
	c.SetParamNames("id")
	c.SetParamValues(s.expense.ID.String())
	return rec, s.handler.Create(c)
}

func (s *ReceiptHandlerTestSuite) TestCreateAndList() {
	rec, err := s.attach("https://files.example.com/receipt.jpg")
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/expenses/x/receipts", "", s.user)
	c.SetParamNames("id")
	c.SetParamValues(s.expense.ID.String())

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	receipts := response.Data.([]interface{})
	s.Require().Len(receipts, 1)
	s.Equal("https://files.example.com/receipt.jpg", receipts[0].(map[string]interface{})["url"])
}

func (s *ReceiptHandlerTestSuite) TestCreate_InvalidURL() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses/x/receipts",
		`{"url":"not a url"}`, s.user)
	c.SetParamNames("id")
	c.SetParamValues(s.expense.ID.String())

	s.Error(s.handler.Create(c))
}

func (s *ReceiptHandlerTestSuite) TestCreate_ForeignExpense() {
	other := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	theirs := createTestExpense(s.db, other, "5.00",
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), nil)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses/x/receipts",
		`{"url":"https://files.example.com/receipt.jpg"}`, s.user)
	c.SetParamNames("id")
	c.SetParamValues(theirs.ID.String())

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal(string(errors.ExpenseNotFound), errorResp.Error.Code)
}

func (s *ReceiptHandlerTestSuite) TestDelete() {
	rec, err := s.attach("https://files.example.com/receipt.jpg")
	s.Require().NoError(err)

	var created SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &created))
	receiptID := created.Data.(map[string]interface{})["id"].(string)

	c, rec := newJSONContext(s.e, http.MethodDelete, "/api/v1/expenses/x/receipts/y", "", s.user)
	c.SetParamNames("id", "receiptId")
	c.SetParamValues(s.expense.ID.String(), receiptID)

	s.Require().NoError(s.handler.Delete(c))
	s.Equal(http.StatusOK, rec.Code)

	var count int64
	s.Require().NoError(s.db.Model(&models.Receipt{}).Count(&count).Error)
	s.EqualValues(0, count)
}

func (s *ReceiptHandlerTestSuite) TestDelete_NotFound() {
	c, rec := newJSONContext(s.e, http.MethodDelete, "/api/v1/expenses/x/receipts/y", "", s.user)
	c.SetParamNames("id", "receiptId")
	c.SetParamValues(s.expense.ID.String(), uuid.NewString())

	s.Require().NoError(s.handler.Delete(c))
	s.Equal(http.StatusNotFound, rec.Code)
}
