package services

import (
	"errors"
	"fmt"
	"log/slog"

	"pennywise/internal/dto"
	"pennywise/internal/models"
	"pennywise/internal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		categoryRepo:    categoryRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
		logger:          logger,
	}
}

// Register creates a new user account and seeds its starter categories
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.seedDefaultCategories(user); err != nil {
		// Non-critical: the user can create categories manually
		s.logger.Error("failed to seed default categories",
			"error", err,
			"user_id", user.ID)
	}

	s.logger.Info("user registered",
		"user_id", user.ID,
		"email", user.Email)

	return user, nil
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.logger.Info("user logged in",
		"user_id", user.ID,
		"email", user.Email)

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User: dto.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			CreatedAt: user.CreatedAt,
		},
	}, nil
}

func (s *AuthService) seedDefaultCategories(user *models.User) error {
	defaults := models.DefaultCategories()
	categories := make([]models.Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, models.Category{
			Name:   d.Name,
			Color:  d.Color,
			UserID: user.ID,
		})
	}
	return s.categoryRepo.CreateBatch(categories)
}
