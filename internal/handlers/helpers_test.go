package handlers

import (
	"net/http/httptest"
	"strings"
	"time"

	"pennywise/internal/database"
	"pennywise/internal/models"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// noopMetrics satisfies the metrics recorder without touching Prometheus
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string) {}
func (noopMetrics) RecordProcessingTime(string, time.Duration) {}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds an echo context carrying the given JSON body and the
// authenticated user, the way the auth middleware would leave it.
func newJSONContext(e *echo.Echo, method, target, body string, user *models.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set("user_id", user.ID)
		c.Set("user_email", user.Email)
	}
	return c, rec
}

func createTestExpense(db *database.DB, user *models.User, amount string, date time.Time, category *models.Category) *models.Expense {
	expense := &models.Expense{
		Amount:        decimal.RequireFromString(amount),
		Description:   "test expense",
		Date:          date,
		PaymentMethod: models.PaymentMethodCash,
		UserID:        user.ID,
	}
	if category != nil {
		expense.CategoryID = &category.ID
	}
	if err := db.Create(expense).Error; err != nil {
		panic(err)
	}
	return expense
}
