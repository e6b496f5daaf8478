package services

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"pennywise/internal/models"
	"pennywise/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange = fmt.Errorf("start date must not be after end date")
)

// ReportService aggregates expenses into spending reports and budget
// status checks. Aggregation happens in memory over the user's rows for
// the requested range, so totals keep exact decimal arithmetic.
type ReportService struct {
	expenseRepo repositories.ExpenseRepositoryInterface
	budgetRepo  repositories.BudgetRepositoryInterface
	metrics     MetricsRecorderInterface
	logger      *slog.Logger
}

// NewReportService creates a new report service
func NewReportService(
	expenseRepo repositories.ExpenseRepositoryInterface,
	budgetRepo repositories.BudgetRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) ReportServiceInterface {
	return &ReportService{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetSpendingReport aggregates the user's expenses inside the inclusive date range
func (s *ReportService) GetSpendingReport(userID uuid.UUID, startDate, endDate time.Time) (*models.SpendingReport, error) {
	start := models.TruncateToDay(startDate)
	end := models.TruncateToDay(endDate)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}

	began := time.Now()
	expenses, err := s.expenseRepo.GetByDateRange(userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses for report: %w", err)
	}

	report := BuildSpendingReport(expenses, start, end)

	s.metrics.IncrementCounter("reports_generated", map[string]string{"type": "spending"})
	s.metrics.RecordProcessingTime("report_generation", time.Since(began))
	s.logger.Debug("spending report generated",
		"user_id", userID,
		"expense_count", report.ExpenseCount,
		"days", len(report.DailyTotals))

	return report, nil
}

// GetBudgetStatuses computes spend against every budget the user has set for
// the given month. A budget with no matching expenses reports zero spend.
func (s *ReportService) GetBudgetStatuses(userID uuid.UUID, month time.Time) ([]models.BudgetStatus, error) {
	budgets, err := s.budgetRepo.ListByMonth(userID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	statuses := make([]models.BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		spent, err := s.expenseRepo.SumByCategoryAndRange(
			userID, budget.CategoryID, budget.PeriodStart(), budget.PeriodEnd())
		if err != nil {
			return nil, fmt.Errorf("failed to sum expenses for budget %s: %w", budget.ID, err)
		}

		statuses = append(statuses, BuildBudgetStatus(&budget, spent))
	}

	s.metrics.IncrementCounter("reports_generated", map[string]string{"type": "budget_status"})

	return statuses, nil
}

// BuildSpendingReport aggregates a slice of expenses over an inclusive day
// range. The result carries one daily bucket per calendar day in the range,
// zero-spend days included, and per-category totals sorted by amount
// descending.
func BuildSpendingReport(expenses []models.Expense, startDate, endDate time.Time) *models.SpendingReport {
	report := &models.SpendingReport{
		StartDate:   startDate,
		EndDate:     endDate,
		Total:       decimal.Zero,
		GeneratedAt: time.Now().UTC(),
	}

	type categoryBucket struct {
		color string
		total decimal.Decimal
		count int
	}
	categoryBuckets := make(map[string]*categoryBucket)
	dailyBuckets := make(map[time.Time]decimal.Decimal)

	// Zero-initialize every day so charts stay continuous across gaps.
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		dailyBuckets[day] = decimal.Zero
	}

	for _, expense := range expenses {
		report.Total = report.Total.Add(expense.Amount)
		report.ExpenseCount++

		name := expense.CategoryName()
		bucket, ok := categoryBuckets[name]
		if !ok {
			bucket = &categoryBucket{}
			if expense.Category != nil {
				bucket.color = expense.Category.Color
			}
			categoryBuckets[name] = bucket
		}
		bucket.total = bucket.total.Add(expense.Amount)
		bucket.count++

		day := models.TruncateToDay(expense.Date)
		if existing, ok := dailyBuckets[day]; ok {
			dailyBuckets[day] = existing.Add(expense.Amount)
		}
	}

	report.CategoryTotals = make([]models.CategoryTotal, 0, len(categoryBuckets))
	for name, bucket := range categoryBuckets {
		report.CategoryTotals = append(report.CategoryTotals, models.CategoryTotal{
			Category:     name,
			Color:        bucket.color,
			Total:        bucket.total,
			ExpenseCount: bucket.count,
		})
	}
	sort.Slice(report.CategoryTotals, func(i, j int) bool {
		a, b := report.CategoryTotals[i], report.CategoryTotals[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	report.DailyTotals = make([]models.DailyTotal, 0, len(dailyBuckets))
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		report.DailyTotals = append(report.DailyTotals, models.DailyTotal{
			Date:  day,
			Total: dailyBuckets[day],
		})
	}

	return report
}

// BuildBudgetStatus derives the usage percentage and health label for one
// budget given the spend already computed for its month.
func BuildBudgetStatus(budget *models.Budget, spent decimal.Decimal) models.BudgetStatus {
	percentage := decimal.Zero
	if budget.Amount.IsPositive() {
		percentage = spent.Div(budget.Amount).Mul(decimal.NewFromInt(100)).Round(2)
	}

	status := models.BudgetStatus{
		BudgetID:   budget.ID,
		CategoryID: budget.CategoryID,
		Month:      budget.Month,
		Amount:     budget.Amount,
		Spent:      spent,
		Percentage: percentage,
		Status:     models.ClassifyBudgetUsage(percentage),
	}
	if budget.Category != nil {
		status.Category = budget.Category.Name
	}
	return status
}
