package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrEmailInvalid     = errors.New("email format is invalid")
	ErrPasswordRequired = errors.New("password hash is required")
)

// User represents an authenticated account that owns categories, expenses,
// budgets and receipts. Every row in those tables is scoped to the user's ID.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(100)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(100)" json:"last_name"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(u.Email, "@") || strings.HasPrefix(u.Email, "@") || strings.HasSuffix(u.Email, "@") {
		return ErrEmailInvalid
	}
	if u.PasswordHash == "" {
		return ErrPasswordRequired
	}
	return nil
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
