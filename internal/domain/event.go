package domain

import (
	"context"
	"time"
)

// Event represents a catalog event. Image holds the relative stored path
// (e.g. "uploads/images/1714..jpg"); the public URL is derived at the HTTP
// boundary, never persisted.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Image       *string   `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventInput carries the validated fields for creating an event.
type EventInput struct {
	Title       string
	Description *string
	Date        string
	Time        string
	Location    string
	Category    string
	Price       float64
}

// EventPatch carries partial updates; nil fields are unchanged.
type EventPatch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	Category    *string
	Price       *float64
}

// ImageUpload is a validated image ready to be stored.
type ImageUpload struct {
	Filename string
	Data     []byte
}

// ImageUpdateKind tags the mutually exclusive ways an update request can
// change an event's image.
type ImageUpdateKind int

const (
	// ImageNoChange leaves the stored image untouched.
	ImageNoChange ImageUpdateKind = iota
	// ImageNewUpload replaces the image with freshly uploaded bytes.
	ImageNewUpload
	// ImageBase64 replaces the image with a decoded data-URI payload.
	ImageBase64
	// ImageRetain re-sends the already-stored filename; it must match the
	// event's current image.
	ImageRetain
)

// ImageUpdate is the tagged variant resolved once at the HTTP boundary:
// uploaded file first, then base64 payload, then bare filename, else no
// change. Exactly one of the payload fields is meaningful per kind.
type ImageUpdate struct {
	Kind     ImageUpdateKind
	Upload   *ImageUpload // ImageNewUpload
	DataURI  string       // ImageBase64
	Filename string       // ImageRetain
}

// EventRepository defines the interface for event storage. GetByID, Update,
// and Delete return ErrNotFound when the id does not exist.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, event *Event) error
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for the event catalog.
type EventService interface {
	Create(ctx context.Context, in EventInput, image *ImageUpload) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, id string, patch EventPatch, image ImageUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}
