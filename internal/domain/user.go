package domain

import (
	"context"
	"time"
)

// User represents a registered user. The password hash is never serialized.
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User. ID is set by the repository on create.
func NewUser(username, email, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher hashes and verifies passwords. Implementations may use
// bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenService issues, verifies, and invalidates bearer tokens.
// Verify and Invalidate return ErrUnauthorized for tokens that are missing,
// malformed, expired, or revoked.
type TokenService interface {
	Issue(userID string) (string, error)
	Verify(ctx context.Context, token string) (userID string, err error)
	Invalidate(ctx context.Context, token string) error
}

// RevokedTokenRepository stores revoked token IDs until their natural expiry.
type RevokedTokenRepository interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// UserRepository defines the interface for user storage. Create returns
// ErrDuplicateEmail or ErrDuplicateUsername on unique-constraint violations.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines registration, login, and logout.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*User, string, error)
	Login(ctx context.Context, email, password string) (*User, string, error)
	Logout(ctx context.Context, token string) error
}
