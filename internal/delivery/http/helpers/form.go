package helpers

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"eventsplatform/internal/domain"
)

// MaxMultipartMemory bounds in-memory parsing of multipart bodies.
const MaxMultipartMemory = 10 << 20

// MaxImageBytes is the largest accepted image upload (2048 KB).
const MaxImageBytes = 2048 << 10

var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
}

// DecodeJSON decodes the request body into dest, rejecting unknown fields.
func DecodeJSON(r *http.Request, dest any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dest)
}

// ValidateImageHeader checks an uploaded file against the image constraints
// (jpg/jpeg/png, at most 2048 KB), recording violations under field.
func ValidateImageHeader(ve *domain.ValidationError, field string, fh *multipart.FileHeader) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if _, ok := allowedImageExts[ext]; !ok {
		ve.Add(field, "The "+field+" must be a file of type: jpg, jpeg, png.")
	}
	if fh.Size > MaxImageBytes {
		ve.Add(field, "The "+field+" may not be greater than 2048 kilobytes.")
	}
}

// ReadImageUpload reads the uploaded file's bytes into an ImageUpload.
// Callers validate the header first.
func ReadImageUpload(fh *multipart.FileHeader) (*domain.ImageUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file %q: %w", fh.Filename, err)
	}
	return &domain.ImageUpload{Filename: fh.Filename, Data: data}, nil
}

// FormFiles returns the uploaded files for a field, accepting both the bare
// name and the PHP-style "name[]" key that existing clients send.
func FormFiles(r *http.Request, field string) []*multipart.FileHeader {
	if r.MultipartForm == nil {
		return nil
	}
	files := r.MultipartForm.File[field]
	if len(files) == 0 {
		files = r.MultipartForm.File[field+"[]"]
	}
	return files
}

// FormValue returns a form field's value and whether it was present, so
// partial updates can distinguish "absent" from "empty".
func FormValue(r *http.Request, field string) (string, bool) {
	if r.MultipartForm != nil {
		if vs, ok := r.MultipartForm.Value[field]; ok && len(vs) > 0 {
			return vs[0], true
		}
	}
	if vs, ok := r.Form[field]; ok && len(vs) > 0 {
		return vs[0], true
	}
	return "", false
}

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return "", false
	}
	token := strings.TrimSpace(auth[len(prefix):])
	return token, token != ""
}
