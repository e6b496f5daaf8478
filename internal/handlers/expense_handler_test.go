package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"pennywise/internal/database"
	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ExpenseHandlerTestSuite struct {
	suite.Suite
	db       *database.DB
	e        *echo.Echo
	handler  *ExpenseHandler
	user     *models.User
	category *models.Category
}

func (s *ExpenseHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.e = newTestEcho()
	s.handler = NewExpenseHandler(
		repositories.NewExpenseRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		noopMetrics{},
	)
	s.user = database.CreateTestUser(s.T(), s.db, "owner@example.com")
	s.category = database.CreateTestCategory(s.T(), s.db, s.user, "Food", "#FF6B6B")
}

func (s *ExpenseHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestExpenseHandlerSuite(t *testing.T) {
	suite.Run(t, new(ExpenseHandlerTestSuite))
}

func (s *ExpenseHandlerTestSuite) TestCreate() {
	body := fmt.Sprintf(`{"amount":"42.50","description":"Weekly groceries","date":"2025-03-03","category_id":%q,"payment_method":"credit_card"}`, s.category.ID)
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses", body, s.user)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("42.50", data["amount"])
	s.Equal("2025-03-03", data["date"])
	s.Equal("credit_card", data["payment_method"])
}

func (s *ExpenseHandlerTestSuite) TestCreate_DefaultsToCash() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses",
		`{"amount":"5.00","description":"Bus fare","date":"2025-03-03"}`, s.user)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal(models.PaymentMethodCash, data["payment_method"])
}

func (s *ExpenseHandlerTestSuite) TestCreate_NonPositiveAmount() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses",
		`{"amount":"-3.00","description":"Refund","date":"2025-03-03"}`, s.user)

	// Rejected by the money_amount rule, surfaced through the error handler
	s.Error(s.handler.Create(c))
}

func (s *ExpenseHandlerTestSuite) TestCreate_UnknownCategory() {
	body := fmt.Sprintf(`{"amount":"5.00","description":"x","date":"2025-03-03","category_id":%q}`, uuid.NewString())
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses", body, s.user)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var errorResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal(string(errors.CategoryNotFound), errorResp.Error.Code)
}

func (s *ExpenseHandlerTestSuite) TestCreate_ForeignCategoryRejected() {
	other := database.CreateTestUser(s.T(), s.db, "stranger@example.com")
	theirs := database.CreateTestCategory(s.T(), s.db, other, "Theirs", "#FF6B6B")

	body := fmt.Sprintf(`{"amount":"5.00","description":"x","date":"2025-03-03","category_id":%q}`, theirs.ID)
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses", body, s.user)

	s.Require().NoError(s.handler.Create(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestList_FiltersAndPagination() {
	for day := 1; day <= 5; day++ {
		createTestExpense(s.db, s.user, "10.00",
			time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC), s.category)
	}

	c, rec := newJSONContext(s.e, http.MethodGet,
		"/api/v1/expenses?start_date=2025-03-02&end_date=2025-03-04&offset=1&limit=2", "", s.user)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListExpensesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.EqualValues(3, response.Pagination.Total)
	s.Equal(1, response.Pagination.Offset)
	s.Equal(2, response.Pagination.Limit)
	s.Require().Len(response.Expenses, 2)
	// Newest first, so offset 1 starts at March 3
	s.Equal("2025-03-03", response.Expenses[0].Date)
}

func (s *ExpenseHandlerTestSuite) TestList_UncategorizedFilter() {
	createTestExpense(s.db, s.user, "10.00", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), s.category)
	createTestExpense(s.db, s.user, "20.00", time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/expenses?category_id=none", "", s.user)

	s.Require().NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListExpensesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Expenses, 1)
	s.Equal("20.00", response.Expenses[0].Amount)
	s.Nil(response.Expenses[0].CategoryID)
}

func (s *ExpenseHandlerTestSuite) TestUpdate() {
	expense := createTestExpense(s.db, s.user, "10.00",
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), s.category)

	c, rec := newJSONContext(s.e, http.MethodPut, "/api/v1/expenses/x",
		`{"amount":"25.00","description":"Updated","date":"2025-03-05","payment_method":"debit_card"}`, s.user)
	c.SetParamNames("id")
	c.SetParamValues(expense.ID.String())

	s.Require().NoError(s.handler.Update(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.Equal("25.00", data["amount"])
	s.Equal("Updated", data["description"])
	s.Equal("2025-03-05", data["date"])
}

func (s *ExpenseHandlerTestSuite) TestDelete_NotFound() {
	c, rec := newJSONContext(s.e, http.MethodDelete, "/api/v1/expenses/x", "", s.user)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	s.Require().NoError(s.handler.Delete(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ExpenseHandlerTestSuite) TestDeleteBatch() {
	first := createTestExpense(s.db, s.user, "10.00", time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), nil)
	second := createTestExpense(s.db, s.user, "20.00", time.Date(2025, time.March, 2, 0, 0, 0, 0, time.UTC), nil)

	body := fmt.Sprintf(`{"ids":[%q,%q]}`, first.ID, second.ID)
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses/batch-delete", body, s.user)

	s.Require().NoError(s.handler.DeleteBatch(c))
	s.Equal(http.StatusOK, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	data := response.Data.(map[string]interface{})
	s.EqualValues(2, data["deleted"])
}

func (s *ExpenseHandlerTestSuite) TestDeleteBatch_EmptyIDs() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/expenses/batch-delete", `{"ids":[]}`, s.user)
	s.Error(s.handler.DeleteBatch(c))
}
