package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"eventsplatform/internal/domain"
)

// eventImageDir is the blob-store subtree for event images.
const eventImageDir = "uploads/images"

// maxImageBytes caps stored image size (2048 KB). The multipart path checks
// the upload header before reading; base64 payloads are only measurable here,
// after decoding.
const maxImageBytes = 2048 << 10

// dataURIRegexp matches the accepted image data-URI formats for base64
// updates, capturing the image subtype and the payload.
var dataURIRegexp = regexp.MustCompile(`^data:image/(png|jpeg|jpg);base64,(.+)$`)

type eventService struct {
	eventRepo domain.EventRepository
	blobs     domain.BlobStore
	logger    *slog.Logger
}

// NewEventService creates an EventService with the given repository and blob store.
func NewEventService(eventRepo domain.EventRepository, blobs domain.BlobStore, logger *slog.Logger) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		blobs:     blobs,
		logger:    logger,
	}
}

func (s *eventService) Create(ctx context.Context, in domain.EventInput, image *domain.ImageUpload) (*domain.Event, error) {
	now := time.Now()
	event := &domain.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Category:    in.Category,
		Price:       in.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if image != nil {
		path, err := s.storeImage(ctx, image.Filename, image.Data)
		if err != nil {
			return nil, err
		}
		event.Image = &path
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		if event.Image != nil {
			s.cleanupFile(ctx, *event.Image)
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) Update(ctx context.Context, id string, patch domain.EventPatch, image domain.ImageUpdate) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
	if patch.Price != nil {
		event.Price = *patch.Price
	}

	var oldImage *string
	var storedNew bool
	switch image.Kind {
	case domain.ImageNoChange:
	case domain.ImageNewUpload:
		path, err := s.storeImage(ctx, image.Upload.Filename, image.Upload.Data)
		if err != nil {
			return nil, err
		}
		oldImage = event.Image
		event.Image = &path
		storedNew = true
	case domain.ImageBase64:
		ext, data, err := decodeImageDataURI(image.DataURI)
		if err != nil {
			ve := domain.NewValidationError()
			ve.Add("image_base64", "The image_base64 field must be a valid image data URI.")
			return nil, ve
		}
		if len(data) > maxImageBytes {
			ve := domain.NewValidationError()
			ve.Add("image_base64", "The image_base64 may not be greater than 2048 kilobytes.")
			return nil, ve
		}
		path, err := s.storeImage(ctx, "image."+ext, data)
		if err != nil {
			return nil, err
		}
		oldImage = event.Image
		event.Image = &path
		storedNew = true
	case domain.ImageRetain:
		// The client re-sent the stored location (possibly as a full URL);
		// it must name this event's current image. No file operations.
		rel := relativeImagePath(image.Filename)
		if event.Image == nil || rel != *event.Image {
			ve := domain.NewValidationError()
			ve.Add("image", "The image does not match the stored image.")
			return nil, ve
		}
		event.Image = &rel
	}

	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, event); err != nil {
		if storedNew {
			// The record was not repointed; drop the new file.
			s.cleanupFile(ctx, *event.Image)
		}
		return nil, err
	}
	if oldImage != nil {
		s.cleanupFile(ctx, *oldImage)
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.Image != nil {
		s.cleanupFile(ctx, *event.Image)
	}
	return s.eventRepo.Delete(ctx, id)
}

// storeImage writes image bytes under a collision-resistant name derived
// from the upload time plus the original extension.
func (s *eventService) storeImage(ctx context.Context, filename string, data []byte) (string, error) {
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), strings.ToLower(filepath.Ext(filename)))
	path, err := s.blobs.Save(ctx, eventImageDir, name, data)
	if err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return path, nil
}

// cleanupFile removes a superseded or orphaned file. Failure is logged and
// swallowed; it never aborts the surrounding operation.
func (s *eventService) cleanupFile(ctx context.Context, path string) {
	if err := s.blobs.Delete(ctx, path); err != nil {
		s.logger.WarnContext(ctx, "failed to delete image file", "path", path, "err", err)
	}
}

func decodeImageDataURI(uri string) (ext string, data []byte, err error) {
	m := dataURIRegexp.FindStringSubmatch(uri)
	if m == nil {
		return "", nil, fmt.Errorf("not an image data URI")
	}
	data, err = base64.StdEncoding.DecodeString(m[2])
	if err != nil {
		return "", nil, fmt.Errorf("invalid base64 payload: %w", err)
	}
	ext = m[1]
	if ext == "jpeg" {
		ext = "jpg"
	}
	return ext, data, nil
}

// relativeImagePath strips a scheme+host prefix so a re-sent public URL
// becomes the stored relative path again.
func relativeImagePath(name string) string {
	if i := strings.Index(name, "://"); i != -1 {
		rest := name[i+3:]
		if j := strings.Index(rest, "/"); j != -1 {
			return strings.TrimPrefix(rest[j:], "/")
		}
	}
	return strings.TrimPrefix(name, "/")
}
