package controllers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

const dateLayout = "2006-01-02"

// EventResponse is an event with its image rewritten to a publicly
// resolvable URL; the bare stored filename never leaves the API.
// swagger:model EventResponse
type EventResponse struct {
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

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	// AssetURL turns a stored relative path into a fully-qualified URL.
	AssetURL func(path string) string
}

func NewEventController(logger *slog.Logger, svc domain.EventService, assetURL func(string) string) *EventController {
	return &EventController{
		Logger:   logger,
		Service:  svc,
		AssetURL: assetURL,
	}
}

func (c *EventController) eventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        e.Date,
		Time:        e.Time,
		Location:    e.Location,
		Category:    e.Category,
		Price:       e.Price,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.Image != nil {
		url := c.AssetURL(*e.Image)
		resp.Image = &url
	}
	return resp
}

// Create godoc
// @Summary Create an event
// @Description Create an event from a multipart form. The optional image (jpg/jpeg/png, max 2048 KB) is stored and returned as a URL.
// @Tags events
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param time formData string true "Time"
// @Param location formData string true "Location"
// @Param category formData string true "Category"
// @Param price formData number true "Price"
// @Param image formData file false "Image"
// @Success 201 {object} helpers.Envelope "message, event"
// @Failure 422 {object} helpers.Envelope "message, errors"
// @Router /create-event [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(helpers.MaxMultipartMemory); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}

	ve := domain.NewValidationError()
	in := domain.EventInput{
		Title:    requireString(ve, r, "title", maxFieldLen),
		Date:     requireDate(ve, r),
		Time:     requireString(ve, r, "time", 0),
		Location: requireString(ve, r, "location", maxFieldLen),
		Category: requireString(ve, r, "category", 0),
		Price:    requirePrice(ve, r),
	}
	if desc, ok := helpers.FormValue(r, "description"); ok && desc != "" {
		in.Description = &desc
	}

	var image *domain.ImageUpload
	if files := helpers.FormFiles(r, "image"); len(files) > 0 {
		helpers.ValidateImageHeader(ve, "image", files[0])
		if ve.Empty() {
			upload, err := helpers.ReadImageUpload(files[0])
			if err != nil {
				helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
				return
			}
			image = upload
		}
	}

	if !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, helpers.ErrorOptions{})
		return
	}

	event, err := c.Service.Create(r.Context(), in, image)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.Envelope{
		"message": "Event created successfully.",
		"event":   c.eventResponse(event),
	})
}

// List godoc
// @Summary List all events
// @Tags events
// @Produce json
// @Success 200 {array} EventResponse
// @Router /get-all-events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Event"})
		return
	}
	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, c.eventResponse(e))
	}
	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Get godoc
// @Summary Get a single event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} helpers.Envelope "message, error"
// @Router /get-single-event/{id} [get]
func (c *EventController) Get(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, c.eventResponse(event))
}

// updateEventJSON is the JSON body variant for PUT /update-event/{id}.
// Omitted fields are unchanged. image, image_base64, and a new upload are
// mutually exclusive ways to change the image.
type updateEventJSON struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
	Time        *string  `json:"time"`
	Location    *string  `json:"location"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	ImageBase64 *string  `json:"image_base64"`
}

// Update godoc
// @Summary Update an event
// @Description Partial update via multipart form or JSON. Image precedence: uploaded file, then image_base64 data URI, then bare image filename, else unchanged. A newly stored image supersedes and deletes the previous file.
// @Tags events
// @Accept mpfd
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.Envelope "message, event"
// @Failure 404 {object} helpers.Envelope "message, error"
// @Failure 422 {object} helpers.Envelope "message, errors"
// @Router /update-event/{id} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var patch domain.EventPatch
	image := domain.ImageUpdate{Kind: domain.ImageNoChange}
	ve := domain.NewValidationError()

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req updateEventJSON
		if err := helpers.DecodeJSON(r, &req); err != nil {
			helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
			return
		}
		patch = domain.EventPatch{
			Title:       req.Title,
			Description: req.Description,
			Date:        req.Date,
			Time:        req.Time,
			Location:    req.Location,
			Category:    req.Category,
			Price:       req.Price,
		}
		validatePatch(ve, patch)
		switch {
		case req.ImageBase64 != nil && *req.ImageBase64 != "":
			image = domain.ImageUpdate{Kind: domain.ImageBase64, DataURI: *req.ImageBase64}
		case req.Image != nil && *req.Image != "":
			image = domain.ImageUpdate{Kind: domain.ImageRetain, Filename: *req.Image}
		}
	} else {
		if err := r.ParseMultipartForm(helpers.MaxMultipartMemory); err != nil {
			helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
			return
		}
		patch = patchFromForm(r)
		validatePatch(ve, patch)
		// Branch order is fixed: uploaded file wins, then base64 payload,
		// then a re-sent filename, otherwise the image is untouched.
		if files := helpers.FormFiles(r, "image"); len(files) > 0 {
			helpers.ValidateImageHeader(ve, "image", files[0])
			if ve.Empty() {
				upload, err := helpers.ReadImageUpload(files[0])
				if err != nil {
					helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
					return
				}
				image = domain.ImageUpdate{Kind: domain.ImageNewUpload, Upload: upload}
			}
		} else if b64, ok := helpers.FormValue(r, "image_base64"); ok && b64 != "" {
			image = domain.ImageUpdate{Kind: domain.ImageBase64, DataURI: b64}
		} else if name, ok := helpers.FormValue(r, "image"); ok && name != "" {
			image = domain.ImageUpdate{Kind: domain.ImageRetain, Filename: name}
		}
	}

	if !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, helpers.ErrorOptions{})
		return
	}

	event, err := c.Service.Update(r.Context(), id, patch, image)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{
		"message": "Event updated successfully.",
		"event":   c.eventResponse(event),
	})
}

// Delete godoc
// @Summary Delete an event
// @Description Deletes the event and best-effort removes its image file.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.Envelope "message"
// @Failure 404 {object} helpers.Envelope "message, error"
// @Router /delete-event/{id} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{Resource: "Event"})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{"message": "Event deleted successfully."})
}

func patchFromForm(r *http.Request) domain.EventPatch {
	var patch domain.EventPatch
	if v, ok := helpers.FormValue(r, "title"); ok {
		patch.Title = &v
	}
	if v, ok := helpers.FormValue(r, "description"); ok {
		patch.Description = &v
	}
	if v, ok := helpers.FormValue(r, "date"); ok {
		patch.Date = &v
	}
	if v, ok := helpers.FormValue(r, "time"); ok {
		patch.Time = &v
	}
	if v, ok := helpers.FormValue(r, "location"); ok {
		patch.Location = &v
	}
	if v, ok := helpers.FormValue(r, "category"); ok {
		patch.Category = &v
	}
	if v, ok := helpers.FormValue(r, "price"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			patch.Price = &f
		} else {
			neg := -1.0
			patch.Price = &neg // force the numeric validation error below
		}
	}
	return patch
}

// validatePatch applies the create-time rules to every field that is
// present; absent fields stay unvalidated and unchanged.
func validatePatch(ve *domain.ValidationError, patch domain.EventPatch) {
	if patch.Title != nil {
		checkRequired(ve, "title", *patch.Title, maxFieldLen)
	}
	if patch.Date != nil {
		if _, err := time.Parse(dateLayout, *patch.Date); err != nil {
			ve.Add("date", "The date is not a valid date.")
		}
	}
	if patch.Time != nil {
		checkRequired(ve, "time", *patch.Time, 0)
	}
	if patch.Location != nil {
		checkRequired(ve, "location", *patch.Location, maxFieldLen)
	}
	if patch.Category != nil {
		checkRequired(ve, "category", *patch.Category, 0)
	}
	if patch.Price != nil && *patch.Price < 0 {
		ve.Add("price", "The price must be a number of at least 0.")
	}
}

func checkRequired(ve *domain.ValidationError, field, value string, maxLen int) {
	if strings.TrimSpace(value) == "" {
		ve.Add(field, "The "+field+" field is required.")
		return
	}
	if maxLen > 0 && len(value) > maxLen {
		ve.Add(field, "The "+field+" may not be greater than 255 characters.")
	}
}

func requireString(ve *domain.ValidationError, r *http.Request, field string, maxLen int) string {
	v, _ := helpers.FormValue(r, field)
	checkRequired(ve, field, v, maxLen)
	return v
}

func requireDate(ve *domain.ValidationError, r *http.Request) string {
	v, _ := helpers.FormValue(r, "date")
	if strings.TrimSpace(v) == "" {
		ve.Add("date", "The date field is required.")
		return v
	}
	if _, err := time.Parse(dateLayout, v); err != nil {
		ve.Add("date", "The date is not a valid date.")
	}
	return v
}

func requirePrice(ve *domain.ValidationError, r *http.Request) float64 {
	v, ok := helpers.FormValue(r, "price")
	if !ok || strings.TrimSpace(v) == "" {
		ve.Add("price", "The price field is required.")
		return 0
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		ve.Add("price", "The price must be a number.")
		return 0
	}
	if f < 0 {
		ve.Add("price", "The price must be a number of at least 0.")
	}
	return f
}
