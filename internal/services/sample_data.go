package services

import (
	"fmt"
	"log/slog"
	"time"

	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	sampleHistoryDays = 90
	maxSampleCount    = 1000
)

// descriptionPools maps starter category names to realistic expense
// descriptions. Categories outside the pool fall back to faked product names.
var descriptionPools = map[string][]string{
	"Food": {
		"Grocery run", "Lunch at Chipotle", "Starbucks coffee", "Weekly groceries",
		"Dinner with friends", "Farmers market", "Takeout pizza", "Bakery",
	},
	"Transport": {
		"Uber ride", "Gas fill-up", "Monthly transit pass", "Parking garage",
		"Car wash", "Toll charge",
	},
	"Housing": {
		"Rent", "Renters insurance", "Furniture", "Home repairs",
	},
	"Utilities": {
		"Electric bill", "Water bill", "Internet service", "Phone bill",
	},
	"Entertainment": {
		"Netflix subscription", "Movie tickets", "Concert tickets", "Spotify",
		"Video game",
	},
	"Health": {
		"Pharmacy", "Gym membership", "Doctor visit copay", "Vitamins",
	},
	"Shopping": {
		"Amazon order", "New shoes", "Clothing", "Electronics",
	},
}

// amountRanges gives each category a plausible spend band in dollars.
var amountRanges = map[string][2]float64{
	"Food":          {5, 120},
	"Transport":     {3, 80},
	"Housing":       {50, 1800},
	"Utilities":     {20, 250},
	"Entertainment": {5, 90},
	"Health":        {10, 200},
	"Shopping":      {10, 300},
}

// SampleDataService generates realistic expense history for development and
// demo environments.
type SampleDataService struct {
	expenseRepo  repositories.ExpenseRepositoryInterface
	categoryRepo repositories.CategoryRepositoryInterface
	faker        *gofakeit.Faker
	logger       *slog.Logger
}

// NewSampleDataService creates a new sample data service
func NewSampleDataService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	logger *slog.Logger,
) SampleDataServiceInterface {
	return &SampleDataService{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		faker:        gofakeit.New(0),
		logger:       logger,
	}
}

// GenerateExpenses creates count fake expenses spread over the last 90 days,
// distributed across the user's existing categories.
func (s *SampleDataService) GenerateExpenses(userID uuid.UUID, count int) ([]models.Expense, error) {
	if count <= 0 || count > maxSampleCount {
		return nil, fmt.Errorf("sample count must be between 1 and %d", maxSampleCount)
	}

	categories, err := s.categoryRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	now := time.Now()
	expenses := make([]models.Expense, 0, count)
	for i := 0; i < count; i++ {
		expense := s.buildExpense(userID, categories, now)
		if err := s.expenseRepo.Create(&expense); err != nil {
			return nil, fmt.Errorf("failed to create sample expense: %w", err)
		}
		expenses = append(expenses, expense)
	}

	s.logger.Info("sample expenses generated",
		"user_id", userID,
		"count", len(expenses))

	return expenses, nil
}

func (s *SampleDataService) buildExpense(userID uuid.UUID, categories []models.Category, now time.Time) models.Expense {
	daysAgo := s.faker.Number(0, sampleHistoryDays-1)
	date := models.TruncateToDay(now.AddDate(0, 0, -daysAgo))

	expense := models.Expense{
		UserID:        userID,
		Date:          date,
		PaymentMethod: s.randomPaymentMethod(),
	}

	// A small share of expenses stays uncategorized to mirror real usage.
	if len(categories) > 0 && s.faker.Number(1, 10) > 1 {
		category := categories[s.faker.Number(0, len(categories)-1)]
		expense.CategoryID = &category.ID
		expense.Description = s.randomDescription(category.Name)
		expense.Amount = s.randomAmount(category.Name)
	} else {
		expense.Description = s.faker.ProductName()
		expense.Amount = s.randomAmount("")
	}

	return expense
}

func (s *SampleDataService) randomPaymentMethod() string {
	methods := models.AllPaymentMethods()
	return methods[s.faker.Number(0, len(methods)-1)]
}

func (s *SampleDataService) randomDescription(categoryName string) string {
	pool, ok := descriptionPools[categoryName]
	if !ok || len(pool) == 0 {
		return s.faker.ProductName()
	}
	return pool[s.faker.Number(0, len(pool)-1)]
}

func (s *SampleDataService) randomAmount(categoryName string) decimal.Decimal {
	bounds, ok := amountRanges[categoryName]
	if !ok {
		bounds = [2]float64{1, 150}
	}
	value := s.faker.Float64Range(bounds[0], bounds[1])
	return decimal.NewFromFloat(value).Round(2)
}
