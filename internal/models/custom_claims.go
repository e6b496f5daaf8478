package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// CustomClaims extends the registered JWT claims with the fields the API
// needs to resolve a caller's identity.
type CustomClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}
