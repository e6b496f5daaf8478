package services

import (
	"time"

	"pennywise/internal/dto"
	"pennywise/internal/models"

	"github.com/google/uuid"
)

// AuthServiceInterface defines authentication business operations
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines password hashing and validation operations
type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// ReportServiceInterface defines the aggregation and reporting operations
type ReportServiceInterface interface {
	GetSpendingReport(userID uuid.UUID, startDate, endDate time.Time) (*models.SpendingReport, error)
	GetBudgetStatuses(userID uuid.UUID, month time.Time) ([]models.BudgetStatus, error)
}

// ExportServiceInterface defines the report export operations
type ExportServiceInterface interface {
	ExportCSV(expenses []models.Expense) ([]byte, error)
	ExportPDF(expenses []models.Expense, startDate, endDate time.Time) ([]byte, error)
}

// ChartServiceInterface defines chart rendering operations
type ChartServiceInterface interface {
	DailySpendingChart(report *models.SpendingReport) ([]byte, error)
	CategoryBreakdownChart(report *models.SpendingReport) ([]byte, error)
}

// SampleDataServiceInterface defines the development-mode sample data generator
type SampleDataServiceInterface interface {
	GenerateExpenses(userID uuid.UUID, count int) ([]models.Expense, error)
}

// MetricsRecorderInterface defines the contract for recording operational metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
}
