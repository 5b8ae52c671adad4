package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventsplatform/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type authService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	tokens   domain.TokenService
}

// NewAuthService creates an AuthService with the given repository and auth ports.
func NewAuthService(userRepo domain.UserRepository, hasher domain.PasswordHasher, tokens domain.TokenService) domain.AuthService {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		ve := domain.NewValidationError()
		ve.Add("email", "The email must be a valid email address.")
		return nil, "", ve
	}
	if len(password) < minPasswordLen {
		ve := domain.NewValidationError()
		ve.Add("password", fmt.Sprintf("The password must be at least %d characters.", minPasswordLen))
		return nil, "", ve
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(username, email, hash, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		// The database unique constraints are authoritative; a concurrent
		// registration with the same email lands here, not in a pre-check.
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			ve := domain.NewValidationError()
			ve.Add("username", "The username has already been taken.")
			return nil, "", ve
		case errors.Is(err, domain.ErrDuplicateEmail):
			ve := domain.NewValidationError()
			ve.Add("email", "The email has already been taken.")
			return nil, "", ve
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Indistinguishable from a wrong password on purpose.
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to load user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.tokens.Invalidate(ctx, token)
}
