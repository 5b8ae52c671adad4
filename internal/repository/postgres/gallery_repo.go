package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"eventsplatform/internal/domain"
)

type galleryRepository struct {
	DB *sql.DB
}

func NewGalleryRepository(db *sql.DB) domain.GalleryRepository {
	return &galleryRepository{DB: db}
}

func (r *galleryRepository) Create(ctx context.Context, g *domain.EventGallery) error {
	images, err := encodeImages(g.Images)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO event_galleries (title, description, images, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, g.Title, g.Description, images, g.CreatedAt, g.UpdatedAt).Scan(&g.ID)
}

func (r *galleryRepository) List(ctx context.Context) ([]*domain.EventGallery, error) {
	query := `
		SELECT id, title, description, images, created_at, updated_at
		FROM event_galleries
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var galleries []*domain.EventGallery
	for rows.Next() {
		g, err := scanGallery(rows.Scan)
		if err != nil {
			return nil, err
		}
		galleries = append(galleries, g)
	}
	return galleries, rows.Err()
}

func (r *galleryRepository) GetByID(ctx context.Context, id string) (*domain.EventGallery, error) {
	query := `
		SELECT id, title, description, images, created_at, updated_at
		FROM event_galleries
		WHERE id = $1
	`
	g, err := scanGallery(r.DB.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (r *galleryRepository) Update(ctx context.Context, g *domain.EventGallery) error {
	images, err := encodeImages(g.Images)
	if err != nil {
		return err
	}
	query := `
		UPDATE event_galleries
		SET title = $1, description = $2, images = $3, updated_at = $4
		WHERE id = $5
	`
	res, err := r.DB.ExecContext(ctx, query, g.Title, g.Description, images, g.UpdatedAt, g.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *galleryRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM event_galleries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func encodeImages(images []domain.GalleryImage) (string, error) {
	if images == nil {
		images = []domain.GalleryImage{}
	}
	b, err := json.Marshal(images)
	if err != nil {
		return "", fmt.Errorf("failed to encode gallery images: %w", err)
	}
	return string(b), nil
}

// decodeImages tolerates corrupt stored data: an unparseable column or
// entries missing path/filename yield a smaller (possibly empty) set, never
// an error.
func decodeImages(raw string) []domain.GalleryImage {
	var entries []domain.GalleryImage
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return []domain.GalleryImage{}
	}
	images := make([]domain.GalleryImage, 0, len(entries))
	for _, img := range entries {
		if img.Path == "" || img.Filename == "" {
			continue
		}
		images = append(images, img)
	}
	return images
}

func scanGallery(scan func(dest ...any) error) (*domain.EventGallery, error) {
	g := &domain.EventGallery{}
	var descNull sql.NullString
	var imagesRaw string
	err := scan(&g.ID, &g.Title, &descNull, &imagesRaw, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		g.Description = &descNull.String
	}
	g.Images = decodeImages(imagesRaw)
	return g, nil
}
