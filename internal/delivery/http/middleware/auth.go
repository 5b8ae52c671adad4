package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

type contextKey string

const userIDKey contextKey = "userID"

// SetUserID returns a context with the user ID set. Used by auth middleware.
func SetUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the authenticated user ID from the context, if present.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// RequireAuth returns a wrapper that verifies the bearer token (signature,
// expiry, and revocation) and sets the user ID in the request context.
// Missing or invalid tokens get the generic 401 body and next is not called.
func RequireAuth(tokens domain.TokenService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, ok := helpers.BearerToken(r)
			if !ok {
				helpers.WriteUnauthorized(w)
				return
			}
			userID, err := tokens.Verify(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					logger.ErrorContext(r.Context(), "token verification failed", "err", err)
				}
				helpers.WriteUnauthorized(w)
				return
			}
			r = r.WithContext(SetUserID(r.Context(), userID))
			next(w, r)
		}
	}
}
