package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"eventsplatform/internal/domain"
)

// Function-field fakes for the service ports. Tests set only the methods
// they expect the controller to call.

type fakeAuthService struct {
	registerFn func(ctx context.Context, username, email, password string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (f *fakeAuthService) Register(ctx context.Context, username, email, password string) (*domain.User, string, error) {
	return f.registerFn(ctx, username, email, password)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	return f.logoutFn(ctx, token)
}

type fakeEventService struct {
	createFn func(ctx context.Context, in domain.EventInput, image *domain.ImageUpload) (*domain.Event, error)
	listFn   func(ctx context.Context) ([]*domain.Event, error)
	getFn    func(ctx context.Context, id string) (*domain.Event, error)
	updateFn func(ctx context.Context, id string, patch domain.EventPatch, image domain.ImageUpdate) (*domain.Event, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeEventService) Create(ctx context.Context, in domain.EventInput, image *domain.ImageUpload) (*domain.Event, error) {
	return f.createFn(ctx, in, image)
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	return f.listFn(ctx)
}

func (f *fakeEventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return f.getFn(ctx, id)
}

func (f *fakeEventService) Update(ctx context.Context, id string, patch domain.EventPatch, image domain.ImageUpdate) (*domain.Event, error) {
	return f.updateFn(ctx, id, patch, image)
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeGalleryService struct {
	createFn func(ctx context.Context, title string, description *string, images []domain.ImageUpload) (*domain.EventGallery, error)
	listFn   func(ctx context.Context) ([]*domain.EventGallery, error)
	getFn    func(ctx context.Context, id string) (*domain.EventGallery, error)
	updateFn func(ctx context.Context, id string, patch domain.GalleryPatch, images []domain.ImageUpload) (*domain.EventGallery, error)
	deleteFn func(ctx context.Context, id string) error
}

func (f *fakeGalleryService) Create(ctx context.Context, title string, description *string, images []domain.ImageUpload) (*domain.EventGallery, error) {
	return f.createFn(ctx, title, description, images)
}

func (f *fakeGalleryService) List(ctx context.Context) ([]*domain.EventGallery, error) {
	return f.listFn(ctx)
}

func (f *fakeGalleryService) Get(ctx context.Context, id string) (*domain.EventGallery, error) {
	return f.getFn(ctx, id)
}

func (f *fakeGalleryService) Update(ctx context.Context, id string, patch domain.GalleryPatch, images []domain.ImageUpload) (*domain.EventGallery, error) {
	return f.updateFn(ctx, id, patch, images)
}

func (f *fakeGalleryService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeContactService struct {
	createFn func(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error)
	listFn   func(ctx context.Context) ([]*domain.ContactMessage, error)
}

func (f *fakeContactService) Create(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	return f.createFn(ctx, in)
}

func (f *fakeContactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return f.listFn(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testAssetURL(path string) string {
	return "http://localhost:8080/" + path
}

// filePart is one uploaded file in a multipart test request.
type filePart struct {
	field    string
	filename string
	content  []byte
}

// multipartBody builds a multipart form body and returns it with its
// Content-Type header value.
func multipartBody(t *testing.T, fields map[string]string, files []filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, fp := range files {
		fw, err := mw.CreateFormFile(fp.field, fp.filename)
		require.NoError(t, err)
		_, err = fw.Write(fp.content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func doRequest(handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}
