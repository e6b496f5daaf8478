package services

import (
	"log/slog"
	"testing"
	"time"

	"pennywise/internal/database"
	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/stretchr/testify/suite"
)

// SampleDataServiceTestSuite defines the test suite for SampleDataService
type SampleDataServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	service SampleDataServiceInterface
	user    *models.User
}

func (s *SampleDataServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	expenseRepo := repositories.NewExpenseRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)
	s.service = NewSampleDataService(expenseRepo, categoryRepo, slog.Default())

	s.user = database.CreateTestUser(s.T(), s.db, "sample@example.com")
	database.CreateTestCategory(s.T(), s.db, s.user, "Food", "#FF6B6B")
	database.CreateTestCategory(s.T(), s.db, s.user, "Transport", "#4ECDC4")
}

func (s *SampleDataServiceTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestSampleDataServiceSuite(t *testing.T) {
	suite.Run(t, new(SampleDataServiceTestSuite))
}

func (s *SampleDataServiceTestSuite) TestGenerateExpenses() {
	expenses, err := s.service.GenerateExpenses(s.user.ID, 50)
	s.Require().NoError(err)
	s.Len(expenses, 50)

	cutoff := models.TruncateToDay(time.Now().AddDate(0, 0, -sampleHistoryDays))
	for _, expense := range expenses {
		s.Equal(s.user.ID, expense.UserID)
		s.True(expense.Amount.IsPositive())
		s.True(models.IsValidPaymentMethod(expense.PaymentMethod))
		s.False(expense.Date.Before(cutoff), "expense date must fall inside the history window")
	}
}

func (s *SampleDataServiceTestSuite) TestGenerateExpenses_Persisted() {
	_, err := s.service.GenerateExpenses(s.user.ID, 10)
	s.Require().NoError(err)

	var count int64
	s.Require().NoError(s.db.Model(&models.Expense{}).Where("user_id = ?", s.user.ID).Count(&count).Error)
	s.EqualValues(10, count)
}

func (s *SampleDataServiceTestSuite) TestGenerateExpenses_CountBounds() {
	_, err := s.service.GenerateExpenses(s.user.ID, 0)
	s.Error(err)

	_, err = s.service.GenerateExpenses(s.user.ID, maxSampleCount+1)
	s.Error(err)
}
