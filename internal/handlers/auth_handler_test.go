package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"pennywise/internal/config"
	"pennywise/internal/database"
	"pennywise/internal/dto"
	"pennywise/internal/errors"
	"pennywise/internal/repositories"
	"pennywise/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	e       *echo.Echo
	handler *AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.e = newTestEcho()

	userRepo := repositories.NewUserRepository(s.db.DB)
	categoryRepo := repositories.NewCategoryRepository(s.db.DB)

	passwordService := services.NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4,
		PasswordMinLength: 8,
	})

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)
	tokenService := services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: time.Hour,
	})

	authService := services.NewAuthService(userRepo, categoryRepo, passwordService, tokenService, slog.Default())
	s.handler = NewAuthHandler(authService, noopMetrics{})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

const registerBody = `{"email":"alice@example.com","password":"supersecret","first_name":"Alice","last_name":"Smith"}`

func (s *AuthHandlerTestSuite) TestRegister() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", registerBody, nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response SuccessResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.NotNil(response.Data)

	data := response.Data.(map[string]interface{})
	s.Equal("alice@example.com", data["email"])
	s.NotContains(rec.Body.String(), "password")
}

func (s *AuthHandlerTestSuite) TestRegister_DuplicateEmail() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", registerBody, nil)
	s.Require().NoError(s.handler.Register(c))

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", registerBody, nil)
	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusConflict, rec.Code)

	var errorResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal(string(errors.UserAlreadyExists), errorResp.Error.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_InvalidBody() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", `{"email": not json`, nil)

	s.Require().NoError(s.handler.Register(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AuthHandlerTestSuite) TestRegister_MissingFields() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", `{"email":"alice@example.com"}`, nil)

	// Validation failures propagate to the error handler middleware
	s.Error(s.handler.Register(c))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", registerBody, nil)
	s.Require().NoError(s.handler.Register(c))

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"supersecret"}`, nil)
	s.Require().NoError(s.handler.Login(c))
	s.Equal(http.StatusOK, rec.Code)

	var tokens dto.TokenResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &tokens))
	s.NotEmpty(tokens.AccessToken)
	s.Equal("Bearer", tokens.TokenType)
	s.Equal("alice@example.com", tokens.User.Email)
}

func (s *AuthHandlerTestSuite) TestLogin_WrongPassword() {
	c, _ := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/register", registerBody, nil)
	s.Require().NoError(s.handler.Register(c))

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"alice@example.com","password":"wrongwrong"}`, nil)
	s.Require().NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)

	var errorResp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &errorResp))
	s.Equal(string(errors.AuthInvalidCredentials), errorResp.Error.Code)
}

func (s *AuthHandlerTestSuite) TestLogin_UnknownEmail() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/auth/login",
		`{"email":"nobody@example.com","password":"supersecret"}`, nil)
	s.Require().NoError(s.handler.Login(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
