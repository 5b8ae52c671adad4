package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

// GalleryResponse is a gallery with every image path rewritten to a
// publicly resolvable URL.
// swagger:model GalleryResponse
type GalleryResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Description *string               `json:"description"`
	Images      []domain.GalleryImage `json:"images"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
	// AssetURL turns a stored relative path into a fully-qualified URL.
	AssetURL func(path string) string
}

func NewGalleryController(logger *slog.Logger, svc domain.GalleryService, assetURL func(string) string) *GalleryController {
	return &GalleryController{
		Logger:   logger,
		Service:  svc,
		AssetURL: assetURL,
	}
}

func (c *GalleryController) galleryResponse(g *domain.EventGallery) GalleryResponse {
	images := make([]domain.GalleryImage, 0, len(g.Images))
	for _, img := range g.Images {
		images = append(images, domain.GalleryImage{
			Path:     c.AssetURL(img.Path),
			Filename: img.Filename,
		})
	}
	return GalleryResponse{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Images:      images,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}

// readImageBatch validates every uploaded file before a single byte is read,
// keeping gallery writes all-or-nothing.
func readImageBatch(r *http.Request, ve *domain.ValidationError) ([]domain.ImageUpload, error) {
	files := helpers.FormFiles(r, "images")
	for i, fh := range files {
		helpers.ValidateImageHeader(ve, fmt.Sprintf("images.%d", i), fh)
	}
	if !ve.Empty() {
		return nil, nil
	}
	uploads := make([]domain.ImageUpload, 0, len(files))
	for _, fh := range files {
		upload, err := helpers.ReadImageUpload(fh)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, *upload)
	}
	return uploads, nil
}

// Create godoc
// @Summary Create a gallery
// @Description Create a gallery from a multipart form with one or more images. The whole request is rejected if any image fails validation; no partial writes.
// @Tags galleries
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param images formData file true "Images (repeatable)"
// @Success 201 {object} helpers.Envelope "message, gallery"
// @Failure 422 {object} helpers.Envelope "message, errors"
// @Router /galleries [post]
func (c *GalleryController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(helpers.MaxMultipartMemory); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}

	ve := domain.NewValidationError()
	title := requireString(ve, r, "title", maxFieldLen)
	var description *string
	if desc, ok := helpers.FormValue(r, "description"); ok && desc != "" {
		description = &desc
	}
	if len(helpers.FormFiles(r, "images")) == 0 {
		ve.Add("images", "The images field is required.")
	}
	uploads, err := readImageBatch(r, ve)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	if !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, helpers.ErrorOptions{})
		return
	}

	gallery, err := c.Service.Create(r.Context(), title, description, uploads)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.Envelope{
		"message": "Gallery created successfully.",
		"gallery": c.galleryResponse(gallery),
	})
}

// List godoc
// @Summary List galleries newest-first
// @Description Galleries are globally scoped; the legacy /galleries/{eventID} path is routed here and the path segment ignored.
// @Tags galleries
// @Produce json
// @Success 200 {array} GalleryResponse
// @Router /galleries [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	galleries, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Gallery"})
		return
	}
	resp := make([]GalleryResponse, 0, len(galleries))
	for _, g := range galleries {
		resp = append(resp, c.galleryResponse(g))
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Get godoc
// @Summary Get a single gallery
// @Tags galleries
// @Produce json
// @Param id path string true "Gallery ID"
// @Success 200 {object} GalleryResponse
// @Failure 404 {object} helpers.Envelope "message, error"
// @Router /gallery/{id} [get]
func (c *GalleryController) Get(w http.ResponseWriter, r *http.Request) {
	gallery, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Gallery"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c.galleryResponse(gallery))
}

// Update godoc
// @Summary Update a gallery
// @Description Partial update. A new image batch replaces the entire set and deletes every previous file.
// @Tags galleries
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery ID"
// @Success 200 {object} helpers.Envelope "message, gallery"
// @Failure 404 {object} helpers.Envelope "message, error"
// @Failure 422 {object} helpers.Envelope "message, errors"
// @Router /gallery/{id} [put]
func (c *GalleryController) Update(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(helpers.MaxMultipartMemory); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}

	ve := domain.NewValidationError()
	var patch domain.GalleryPatch
	if v, ok := helpers.FormValue(r, "title"); ok {
		checkRequired(ve, "title", v, maxFieldLen)
		patch.Title = &v
	}
	if v, ok := helpers.FormValue(r, "description"); ok {
		patch.Description = &v
	}
	uploads, err := readImageBatch(r, ve)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	if !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, helpers.ErrorOptions{})
		return
	}

	gallery, err := c.Service.Update(r.Context(), r.PathValue("id"), patch, uploads)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Gallery"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{
		"message": "Gallery updated successfully.",
		"gallery": c.galleryResponse(gallery),
	})
}

// Delete godoc
// @Summary Delete a gallery
// @Description Deletes the gallery and best-effort removes all of its image files.
// @Tags galleries
// @Produce json
// @Security BearerAuth
// @Param id path string true "Gallery ID"
// @Success 200 {object} helpers.Envelope "message"
// @Failure 404 {object} helpers.Envelope "message, error"
// @Router /gallery/{id} [delete]
func (c *GalleryController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Gallery"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{"message": "Gallery deleted successfully."})
}
