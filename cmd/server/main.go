package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pennywise/internal/config"
	"pennywise/internal/database"
	"pennywise/internal/handlers"
	"pennywise/internal/middleware"
	"pennywise/internal/repositories"
	"pennywise/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	expenseRepo := repositories.NewExpenseRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	receiptRepo := repositories.NewReceiptRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	passwordService := services.NewPasswordService(&cfg.Security)
	authService := services.NewAuthService(userRepo, categoryRepo, passwordService, tokenService, logger)
	reportService := services.NewReportService(expenseRepo, budgetRepo, metrics, logger)
	exportService := services.NewExportService(metrics, logger)
	chartService := services.NewChartService(logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, metrics)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	expenseHandler := handlers.NewExpenseHandler(expenseRepo, categoryRepo, metrics)
	budgetHandler := handlers.NewBudgetHandler(budgetRepo, categoryRepo, metrics)
	receiptHandler := handlers.NewReceiptHandler(receiptRepo)
	reportHandler := handlers.NewReportHandler(reportService, chartService)
	exportHandler := handlers.NewExportHandler(expenseRepo, exportService)
	healthHandler := handlers.NewHealthCheckHandler(db)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitPerSecond*2))
	e.Use(echomiddleware.CORS())

	// Unauthenticated surface
	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	// Authenticated surface
	auth := api.Group("", middleware.RequireAuth(tokenService))

	auth.GET("/categories", categoryHandler.List)
	auth.POST("/categories", categoryHandler.Create)
	auth.GET("/categories/:id", categoryHandler.Get)
	auth.PUT("/categories/:id", categoryHandler.Update)
	auth.DELETE("/categories/:id", categoryHandler.Delete)

	auth.GET("/expenses", expenseHandler.List)
	auth.POST("/expenses", expenseHandler.Create)
	auth.POST("/expenses/batch-delete", expenseHandler.DeleteBatch)
	auth.GET("/expenses/:id", expenseHandler.Get)
	auth.PUT("/expenses/:id", expenseHandler.Update)
	auth.DELETE("/expenses/:id", expenseHandler.Delete)

	auth.GET("/expenses/:id/receipts", receiptHandler.List)
	auth.POST("/expenses/:id/receipts", receiptHandler.Create)
	auth.DELETE("/expenses/:id/receipts/:receiptId", receiptHandler.Delete)

	auth.GET("/budgets", budgetHandler.List)
	auth.POST("/budgets", budgetHandler.Create)
	auth.PUT("/budgets/:id", budgetHandler.Update)
	auth.DELETE("/budgets/:id", budgetHandler.Delete)

	auth.GET("/reports/summary", reportHandler.Summary)
	auth.GET("/reports/budgets", reportHandler.Budgets)
	auth.GET("/reports/charts/daily", reportHandler.DailyChart)
	auth.GET("/reports/charts/categories", reportHandler.CategoryChart)

	auth.GET("/exports/csv", exportHandler.CSV)
	auth.GET("/exports/pdf", exportHandler.PDF)

	// Development-only endpoints
	if cfg.IsDevelopment() {
		sampleDataService := services.NewSampleDataService(expenseRepo, categoryRepo, logger)
		devHandler := handlers.NewDevHandler(sampleDataService)
		auth.POST("/dev/sample-data", devHandler.GenerateSampleData)
	}

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	go func() {
		logger.Info("starting server",
			"address", address,
			"environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
