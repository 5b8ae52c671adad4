// Package storage implements domain.BlobStore on the local filesystem.
// Files land under root/<dir>/<name> where root is the publicly served
// directory tree (the HTTP layer serves it at /uploads/...).
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"eventsplatform/internal/domain"
)

type localStore struct {
	root    string
	baseURL string
}

// NewLocalStore returns a BlobStore writing under root. baseURL (no trailing
// slash) prefixes relative paths in URL.
func NewLocalStore(root, baseURL string) domain.BlobStore {
	return &localStore{root: root, baseURL: strings.TrimSuffix(baseURL, "/")}
}

func (s *localStore) Save(_ context.Context, dir, name string, data []byte) (string, error) {
	// Uploaded names are client-controlled; keep only the final element so
	// they cannot escape the upload tree.
	name = filepath.Base(name)
	rel := filepath.ToSlash(filepath.Join(dir, name))
	abs := filepath.Join(s.root, dir, name)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return rel, nil
}

func (s *localStore) Delete(_ context.Context, path string) error {
	abs := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(abs); err != nil {
		if os.IsNotExist(err) {
			// Already gone; cleanup is best-effort.
			return nil
		}
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

func (s *localStore) URL(path string) string {
	return s.baseURL + "/" + strings.TrimPrefix(path, "/")
}
