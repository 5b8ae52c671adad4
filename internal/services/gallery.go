package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"eventsplatform/internal/domain"
)

// galleryImageDir is the blob-store subtree for gallery images.
const galleryImageDir = "uploads/gallery"

type galleryService struct {
	galleryRepo domain.GalleryRepository
	blobs       domain.BlobStore
	logger      *slog.Logger
}

// NewGalleryService creates a GalleryService with the given repository and blob store.
func NewGalleryService(galleryRepo domain.GalleryRepository, blobs domain.BlobStore, logger *slog.Logger) domain.GalleryService {
	return &galleryService{
		galleryRepo: galleryRepo,
		blobs:       blobs,
		logger:      logger,
	}
}

func (s *galleryService) Create(ctx context.Context, title string, description *string, images []domain.ImageUpload) (*domain.EventGallery, error) {
	if len(images) == 0 {
		ve := domain.NewValidationError()
		ve.Add("images", "The images field is required.")
		return nil, ve
	}

	stored, err := s.storeBatch(ctx, images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	gallery := &domain.EventGallery{
		Title:       title,
		Description: description,
		Images:      stored,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.galleryRepo.Create(ctx, gallery); err != nil {
		s.cleanupBatch(ctx, stored)
		return nil, fmt.Errorf("failed to create gallery: %w", err)
	}
	return gallery, nil
}

func (s *galleryService) List(ctx context.Context) ([]*domain.EventGallery, error) {
	galleries, err := s.galleryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list galleries: %w", err)
	}
	if galleries == nil {
		galleries = []*domain.EventGallery{}
	}
	return galleries, nil
}

func (s *galleryService) Get(ctx context.Context, id string) (*domain.EventGallery, error) {
	return s.galleryRepo.GetByID(ctx, id)
}

func (s *galleryService) Update(ctx context.Context, id string, patch domain.GalleryPatch, images []domain.ImageUpload) (*domain.EventGallery, error) {
	gallery, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		gallery.Title = *patch.Title
	}
	if patch.Description != nil {
		gallery.Description = patch.Description
	}

	var oldImages []domain.GalleryImage
	if len(images) > 0 {
		// Partial image replacement is not supported: a new batch replaces
		// the entire set and every old file goes away.
		stored, err := s.storeBatch(ctx, images)
		if err != nil {
			return nil, err
		}
		oldImages = gallery.Images
		gallery.Images = stored
	}

	gallery.UpdatedAt = time.Now()
	if err := s.galleryRepo.Update(ctx, gallery); err != nil {
		if len(images) > 0 {
			s.cleanupBatch(ctx, gallery.Images)
		}
		return nil, err
	}
	s.cleanupBatch(ctx, oldImages)
	return gallery, nil
}

func (s *galleryService) Delete(ctx context.Context, id string) error {
	gallery, err := s.galleryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	s.cleanupBatch(ctx, gallery.Images)
	return s.galleryRepo.Delete(ctx, id)
}

// storeBatch writes every upload, disambiguated within the batch by
// timestamp plus index plus original name. If any write fails, files stored
// so far are removed so the batch stays all-or-nothing.
func (s *galleryService) storeBatch(ctx context.Context, images []domain.ImageUpload) ([]domain.GalleryImage, error) {
	ts := time.Now().Unix()
	stored := make([]domain.GalleryImage, 0, len(images))
	for i, img := range images {
		original := filepath.Base(img.Filename)
		name := fmt.Sprintf("%d_%d_%s", ts, i, original)
		path, err := s.blobs.Save(ctx, galleryImageDir, name, img.Data)
		if err != nil {
			s.cleanupBatch(ctx, stored)
			return nil, fmt.Errorf("failed to store gallery image %q: %w", original, err)
		}
		stored = append(stored, domain.GalleryImage{Path: path, Filename: original})
	}
	return stored, nil
}

// cleanupBatch removes files best-effort; failures are logged, never returned.
func (s *galleryService) cleanupBatch(ctx context.Context, images []domain.GalleryImage) {
	for _, img := range images {
		if err := s.blobs.Delete(ctx, img.Path); err != nil {
			s.logger.WarnContext(ctx, "failed to delete gallery image file", "path", img.Path, "err", err)
		}
	}
}
