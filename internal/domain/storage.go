package domain

import "context"

// BlobStore persists uploaded image bytes under a publicly servable tree.
// Save returns the relative path the file was stored under; URL turns that
// path into a fully-qualified, retrievable URL. Each stored file is owned
// exclusively by the record referencing it.
type BlobStore interface {
	Save(ctx context.Context, dir, name string, data []byte) (path string, err error)
	Delete(ctx context.Context, path string) error
	URL(path string) string
}
