package services

import (
	"strings"
	"testing"

	"pennywise/internal/config"

	"github.com/stretchr/testify/suite"
)

// PasswordServiceTestSuite defines the test suite for PasswordService
type PasswordServiceTestSuite struct {
	suite.Suite
	service PasswordServiceInterface
}

func (s *PasswordServiceTestSuite) SetupTest() {
	s.service = NewPasswordService(&config.SecurityConfig{
		BCryptCost:        4, // minimum cost keeps the suite fast
		PasswordMinLength: 8,
	})
}

func TestPasswordServiceSuite(t *testing.T) {
	suite.Run(t, new(PasswordServiceTestSuite))
}

func (s *PasswordServiceTestSuite) TestValidatePassword() {
	s.NoError(s.service.ValidatePassword("longenough"))
	s.ErrorIs(s.service.ValidatePassword(""), ErrPasswordEmpty)
	s.ErrorIs(s.service.ValidatePassword("short"), ErrPasswordTooShort)
	s.ErrorIs(s.service.ValidatePassword(strings.Repeat("x", 80)), ErrPasswordTooLong)
}

func (s *PasswordServiceTestSuite) TestHashAndComparePassword() {
	hash, err := s.service.HashPassword("correct horse battery")
	s.Require().NoError(err)
	s.NotEqual("correct horse battery", hash)

	s.True(s.service.ComparePassword("correct horse battery", hash))
	s.False(s.service.ComparePassword("wrong password", hash))
}

func (s *PasswordServiceTestSuite) TestHashPassword_RejectsInvalid() {
	_, err := s.service.HashPassword("short")
	s.Error(err)
}

func (s *PasswordServiceTestSuite) TestHashPassword_Salted() {
	first, err := s.service.HashPassword("correct horse battery")
	s.Require().NoError(err)
	second, err := s.service.HashPassword("correct horse battery")
	s.Require().NoError(err)
	s.NotEqual(first, second)
}
