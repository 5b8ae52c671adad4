package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsplatform/internal/delivery/http/controllers"
	"eventsplatform/internal/delivery/http/middleware"
	"eventsplatform/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
// Registration, login, contact submission, and reads are public; mutations
// and the contact inbox require a bearer token. uploadDir is served at
// /uploads/ so stored images resolve at their public URLs.
func NewRouter(
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	galleryController *controllers.GalleryController,
	contactController *controllers.ContactController,
	tokens domain.TokenService,
	logger *slog.Logger,
	uploadDir string,
) *http.ServeMux {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(tokens, logger)

	// Auth
	mux.HandleFunc("POST /register", authController.Register)
	mux.HandleFunc("POST /login", authController.Login)
	mux.HandleFunc("POST /logout", requireAuth(authController.Logout))

	// Events
	mux.HandleFunc("POST /create-event", requireAuth(eventController.Create))
	mux.HandleFunc("GET /get-all-events", eventController.List)
	mux.HandleFunc("GET /get-single-event/{id}", eventController.Get)
	mux.HandleFunc("PUT /update-event/{id}", requireAuth(eventController.Update))
	mux.HandleFunc("DELETE /delete-event/{id}", requireAuth(eventController.Delete))

	// Contact form
	mux.HandleFunc("POST /contact-us", contactController.Create)
	mux.HandleFunc("GET /contact-us", requireAuth(contactController.List))

	// Galleries. Galleries are globally scoped; the {eventID} variant is a
	// legacy path whose segment is ignored.
	mux.HandleFunc("POST /galleries", requireAuth(galleryController.Create))
	mux.HandleFunc("GET /galleries", galleryController.List)
	mux.HandleFunc("GET /galleries/{eventID}", galleryController.List)
	mux.HandleFunc("GET /gallery/{id}", galleryController.Get)
	mux.HandleFunc("PUT /gallery/{id}", requireAuth(galleryController.Update))
	mux.HandleFunc("DELETE /gallery/{id}", requireAuth(galleryController.Delete))

	// Uploaded images
	mux.Handle("GET /uploads/", http.FileServer(http.Dir(uploadDir)))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
