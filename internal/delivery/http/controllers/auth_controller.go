package controllers

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"eventsplatform/internal/delivery/http/helpers"
	"eventsplatform/internal/domain"
)

const maxFieldLen = 255

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterRequest is the request body for POST /register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate returns every violated field; auth endpoints present only the
// first one at the boundary.
func (req RegisterRequest) Validate() *domain.ValidationError {
	ve := domain.NewValidationError()
	username := strings.TrimSpace(req.Username)
	if username == "" {
		ve.Add("username", "The username field is required.")
	} else if len(username) > maxFieldLen {
		ve.Add("username", "The username may not be greater than 255 characters.")
	}
	validateEmail(ve, req.Email, true)
	if req.Password == "" {
		ve.Add("password", "The password field is required.")
	} else if len(req.Password) < 8 {
		ve.Add("password", "The password must be at least 8 characters.")
	}
	return ve
}

// LoginRequest is the request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req LoginRequest) Validate() *domain.ValidationError {
	ve := domain.NewValidationError()
	validateEmail(ve, req.Email, true)
	if req.Password == "" {
		ve.Add("password", "The password field is required.")
	}
	return ve
}

func validateEmail(ve *domain.ValidationError, email string, required bool) {
	email = strings.TrimSpace(email)
	if email == "" {
		if required {
			ve.Add("email", "The email field is required.")
		}
		return
	}
	if len(email) > maxFieldLen {
		ve.Add("email", "The email may not be greater than 255 characters.")
	}
	if !emailRegexp.MatchString(email) {
		ve.Add("email", "The email must be a valid email address.")
	}
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// firstErrorOpts is the auth endpoints' error presentation.
var firstErrorOpts = helpers.ErrorOptions{FirstErrorOnly: true}

// Register godoc
// @Summary Register a new user
// @Description Create a user with a unique username and email. Returns the user (password excluded) and a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration data"
// @Success 201 {object} helpers.Envelope "message, user, token"
// @Failure 422 {object} helpers.Envelope "message, error: {field: message}"
// @Router /register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}
	if ve := req.Validate(); !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, firstErrorOpts)
		return
	}
	user, token, err := c.Service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, firstErrorOpts)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, helpers.Envelope{
		"message": "Registration successful.",
		"user":    user,
		"token":   token,
	})
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Unknown email and wrong password are indistinguishable.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.Envelope "message, user, token"
// @Failure 401 {object} helpers.Envelope "message"
// @Failure 422 {object} helpers.Envelope "message, error: {field: message}"
// @Router /login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := helpers.DecodeJSON(r, &req); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, helpers.Envelope{"message": "Invalid request body.", "error": err.Error()})
		return
	}
	if ve := req.Validate(); !ve.Empty() {
		helpers.WriteError(w, r, c.Logger, ve, firstErrorOpts)
		return
	}
	user, token, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		helpers.WriteError(w, r, c.Logger, err, firstErrorOpts)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{
		"message": "Login successful.",
		"user":    user,
		"token":   token,
	})
}

// Logout godoc
// @Summary Log out
// @Description Invalidate the presented bearer token. Already-invalid tokens get the generic 401.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.Envelope "message"
// @Failure 401 {object} helpers.Envelope "message"
// @Router /logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := helpers.BearerToken(r)
	if !ok {
		helpers.WriteUnauthorized(w)
		return
	}
	if err := c.Service.Logout(r.Context(), token); err != nil {
		helpers.WriteError(w, r, c.Logger, err, firstErrorOpts)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, helpers.Envelope{"message": "Logged out successfully."})
}
