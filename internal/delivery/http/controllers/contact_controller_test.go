package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

func TestContactController_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var gotInput domain.ContactInput
		svc := &fakeContactService{
			createFn: func(_ context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
				gotInput = in
				now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
				return &domain.ContactMessage{
					ID: "contact-1", Name: in.Name, Email: in.Email, Phone: in.Phone,
					Message: in.Message, CreatedAt: now, UpdatedAt: now,
				}, nil
			},
		}
		ctrl := NewContactController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/contact-us", strings.NewReader(
			`{"name":"Alice","email":"alice@example.com","phone":"01234567890","message":"Hello"}`))
		rec := doRequest(ctrl.Create, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Alice", gotInput.Name)
		require.NotNil(t, gotInput.Phone)
		assert.Equal(t, "01234567890", *gotInput.Phone)

		body := decodeBody(t, rec)
		assert.Equal(t, "Thank you for contacting us. We will get back to you soon.", body["message"])
		contact, ok := body["contact"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "contact-1", contact["id"])
	})

	t.Run("phone is optional", func(t *testing.T) {
		svc := &fakeContactService{
			createFn: func(_ context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
				assert.Nil(t, in.Phone)
				return &domain.ContactMessage{ID: "contact-1"}, nil
			},
		}
		ctrl := NewContactController(testLogger(), svc)

		req := httptest.NewRequest(http.MethodPost, "/contact-us", strings.NewReader(
			`{"name":"Alice","email":"alice@example.com","message":"Hello"}`))
		rec := doRequest(ctrl.Create, req)
		require.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("validation errors", func(t *testing.T) {
		tests := []struct {
			name      string
			payload   string
			wantField string
		}{
			{"missing name", `{"email":"alice@example.com","message":"Hello"}`, "name"},
			{"missing email", `{"name":"Alice","message":"Hello"}`, "email"},
			{"bad email", `{"name":"Alice","email":"nope","message":"Hello"}`, "email"},
			{"missing message", `{"name":"Alice","email":"alice@example.com"}`, "message"},
			{"long phone", `{"name":"Alice","email":"alice@example.com","phone":"012345678901","message":"Hello"}`, "phone"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				ctrl := NewContactController(testLogger(), &fakeContactService{})
				req := httptest.NewRequest(http.MethodPost, "/contact-us", strings.NewReader(tt.payload))
				rec := doRequest(ctrl.Create, req)

				require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
				body := decodeBody(t, rec)
				errs, ok := body["errors"].(map[string]any)
				require.True(t, ok)
				assert.Contains(t, errs, tt.wantField)
			})
		}
	})
}

func TestContactController_List(t *testing.T) {
	svc := &fakeContactService{
		listFn: func(context.Context) ([]*domain.ContactMessage, error) {
			return []*domain.ContactMessage{{ID: "contact-1", Name: "Alice"}}, nil
		},
	}
	ctrl := NewContactController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/contact-us", nil)
	rec := httptest.NewRecorder()
	ctrl.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), "["))
	assert.Contains(t, rec.Body.String(), "Alice")
}
