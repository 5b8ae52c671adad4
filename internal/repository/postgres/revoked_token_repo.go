package postgres

import (
	"context"
	"database/sql"
	"time"

	"eventsplatform/internal/domain"
)

type revokedTokenRepository struct {
	DB *sql.DB
}

func NewRevokedTokenRepository(db *sql.DB) domain.RevokedTokenRepository {
	return &revokedTokenRepository{DB: db}
}

func (r *revokedTokenRepository) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens (jti, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (jti) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, jti, expiresAt)
	return err
}

// IsRevoked reports whether the token ID was revoked. Entries past their
// expiry no longer count; the token is rejected by its own exp claim anyway.
func (r *revokedTokenRepository) IsRevoked(ctx context.Context, jti string) (bool, error) {
	query := `
		SELECT 1
		FROM revoked_tokens
		WHERE jti = $1 AND expires_at > NOW()
	`
	var one int
	err := r.DB.QueryRowContext(ctx, query, jti).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
