package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"eventsplatform/internal/domain"
)

type jwtTokenService struct {
	secret  []byte
	expiry  time.Duration
	revoked domain.RevokedTokenRepository
}

// NewJWTTokenService returns a TokenService that signs HS256 JWTs carrying a
// jti claim. Logout revokes the jti until the token's natural expiry; Verify
// rejects revoked tokens.
func NewJWTTokenService(secret string, expiry time.Duration, revoked domain.RevokedTokenRepository) domain.TokenService {
	return &jwtTokenService{secret: []byte(secret), expiry: expiry, revoked: revoked}
}

func (s *jwtTokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

func (s *jwtTokenService) Verify(ctx context.Context, token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return "", fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}

func (s *jwtTokenService) Invalidate(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return domain.ErrUnauthorized
	}
	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return fmt.Errorf("failed to check token revocation: %w", err)
	}
	if revoked {
		// Invalidating an already-invalid token reports the generic error.
		return domain.ErrUnauthorized
	}
	expiresAt := time.Now().Add(s.expiry)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, claims.ID, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *jwtTokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("token missing required claims")
	}
	return claims, nil
}
