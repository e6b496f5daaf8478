package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr error
	}{
		{
			name: "valid user",
			user: User{Email: "test@example.com", PasswordHash: "hash"},
		},
		{
			name:    "empty email",
			user:    User{PasswordHash: "hash"},
			wantErr: ErrEmailRequired,
		},
		{
			name:    "email without at sign",
			user:    User{Email: "not-an-email", PasswordHash: "hash"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "email starting with at sign",
			user:    User{Email: "@example.com", PasswordHash: "hash"},
			wantErr: ErrEmailInvalid,
		},
		{
			name:    "missing password hash",
			user:    User{Email: "test@example.com"},
			wantErr: ErrPasswordRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUser_FullName(t *testing.T) {
	user := User{FirstName: "Alice", LastName: "Smith"}
	assert.Equal(t, "Alice Smith", user.FullName())

	user = User{FirstName: "Alice"}
	assert.Equal(t, "Alice", user.FullName())

	user = User{}
	assert.Equal(t, "", user.FullName())
}
