package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

const maxPhoneLen = 11

// ContactRequest is the request body for POST /contact-us.
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

func (req ContactRequest) Validate() *domain.ValidationError {
	ve := domain.NewValidationError()
	if strings.TrimSpace(req.Name) == "" {
		ve.Add("name", "The name field is required.")
	} else if len(req.Name) > maxFieldLen {
		ve.Add("name", "The name may not be greater than 255 characters.")
	}
	validateEmail(ve, req.Email, true)
	if req.Phone != nil && len(*req.Phone) > maxPhoneLen {
		ve.Add("phone", "The phone may not be greater than 11 characters.")
	}
	if strings.TrimSpace(req.Message) == "" {
		ve.Add("message", "The message field is required.")
	}
	return ve
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Submission"
// @Success 201 {object} helpers.Envelope "message, contact"
// @Failure 422 {object} helpers.Envelope "message, errors"
// @Router /contact-us [post]
func (c *ContactController) Create(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}
	if ve := req.Validate(); !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, helpers.ErrorOptions{})
		return
	}
	msg, err := c.Service.Create(r.Context(), domain.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.Envelope{
		"message": "Thank you for contacting us. We will get back to you soon.",
		"contact": msg,
	})
}

// List godoc
// @Summary List contact submissions
// @Description All submissions, unfiltered and unpaginated.
// @Tags contact
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ContactMessage
// @Router /contact-us [get]
func (c *ContactController) List(w http.ResponseWriter, r *http.Request) {
	messages, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, helpers.ErrorOptions{})
		return
	}
	helpers.WriteJSON(w, http.StatusOK, messages)
}
