package domain

import (
	"context"
	"time"
)

// GalleryImage is one entry of a gallery's ordered image set.
// swagger:model GalleryImage
type GalleryImage struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
}

// EventGallery is a titled, ordered set of images. The store keeps the set
// as a JSON-encoded string; malformed entries are filtered out at read time.
// swagger:model EventGallery
type EventGallery struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description *string        `json:"description"`
	Images      []GalleryImage `json:"images"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// GalleryPatch carries partial updates; nil fields are unchanged.
type GalleryPatch struct {
	Title       *string
	Description *string
}

// GalleryRepository defines the interface for gallery storage. List returns
// galleries newest-first. GetByID, Update, and Delete return ErrNotFound
// when the id does not exist.
type GalleryRepository interface {
	Create(ctx context.Context, gallery *EventGallery) error
	List(ctx context.Context) ([]*EventGallery, error)
	GetByID(ctx context.Context, id string) (*EventGallery, error)
	Update(ctx context.Context, gallery *EventGallery) error
	Delete(ctx context.Context, id string) error
}

// GalleryService defines the business logic for event photo galleries.
// Create and Update are all-or-nothing over the image batch: no file is
// persisted unless every one passed validation.
type GalleryService interface {
	Create(ctx context.Context, title string, description *string, images []ImageUpload) (*EventGallery, error)
	List(ctx context.Context) ([]*EventGallery, error)
	Get(ctx context.Context, id string) (*EventGallery, error)
	Update(ctx context.Context, id string, patch GalleryPatch, images []ImageUpload) (*EventGallery, error)
	Delete(ctx context.Context, id string) error
}
