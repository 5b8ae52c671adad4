package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

type fakeTokenService struct {
	userID string
	err    error
}

func (f *fakeTokenService) Issue(string) (string, error) { return "", nil }

func (f *fakeTokenService) Verify(context.Context, string) (string, error) {
	return f.userID, f.err
}

func (f *fakeTokenService) Invalidate(context.Context, string) error { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestRequireAuth(t *testing.T) {
	t.Run("valid token reaches the handler with the user ID", func(t *testing.T) {
		wrap := RequireAuth(&fakeTokenService{userID: "user-1"}, discardLogger())
		called := false
		handler := wrap(func(w http.ResponseWriter, r *http.Request) {
			called = true
			id, ok := UserIDFromContext(r.Context())
			assert.True(t, ok)
			assert.Equal(t, "user-1", id)
			w.WriteHeader(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodPost, "/create-event", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
	})

	t.Run("missing header", func(t *testing.T) {
		wrap := RequireAuth(&fakeTokenService{}, discardLogger())
		handler := wrap(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodPost, "/create-event", nil)
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized: Invalid or expired token.")
	})

	t.Run("malformed authorization scheme", func(t *testing.T) {
		wrap := RequireAuth(&fakeTokenService{}, discardLogger())
		handler := wrap(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodPost, "/create-event", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
		rec := httptest.NewRecorder()
		handler(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		wrap := RequireAuth(&fakeTokenService{err: domain.ErrUnauthorized}, discardLogger())
		handler := wrap(func(http.ResponseWriter, *http.Request) {
			t.Fatal("handler must not run")
		})

		req := httptest.NewRequest(http.MethodPost, "/create-event", nil)
		req.Header.Set("Authorization", "Bearer revoked-token")
		rec := httptest.NewRecorder()
		handler(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Unauthorized: Invalid or expired token.")
	})
}
