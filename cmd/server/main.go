// @title Events Platform API
// @version 1.0
// @description CRUD backend for an events platform: auth, events with image
// @description uploads, photo galleries, and a contact form.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"database/sql"
	"net/http"
	"os"

	_ "github.com/lib/pq"

	"eventsplatform/config"
	_ "eventsplatform/docs"
	"eventsplatform/internal/adapters/auth"
	"eventsplatform/internal/adapters/email"
	"eventsplatform/internal/adapters/storage"
	httpdelivery "eventsplatform/internal/delivery/http"
	"eventsplatform/internal/delivery/http/controllers"
	"eventsplatform/internal/delivery/http/middleware"
	"eventsplatform/internal/repository/postgres"
	"eventsplatform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	contactRepo := postgres.NewContactRepository(db)
	revokedRepo := postgres.NewRevokedTokenRepository(db)

	// Adapters
	hasher := auth.NewBcryptHasher(0)
	tokens := auth.NewJWTTokenService(cfg.JWTSecret, cfg.TokenExpiry, revokedRepo)
	blobs := storage.NewLocalStore(cfg.UploadDir, cfg.AssetBaseURL)
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKeyID,
			SecretAccessKey: cfg.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(userRepo, hasher, tokens)
	eventService := services.NewEventService(eventRepo, blobs, logger)
	galleryService := services.NewGalleryService(galleryRepo, blobs, logger)
	contactService := services.NewContactService(contactRepo, mailer, cfg.ContactNotifyAddr, logger)

	// Controllers
	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, eventService, blobs.URL)
	galleryController := controllers.NewGalleryController(logger, galleryService, blobs.URL)
	contactController := controllers.NewContactController(logger, contactService)

	mux := httpdelivery.NewRouter(
		authController,
		eventController,
		galleryController,
		contactController,
		tokens,
		logger,
		cfg.UploadDir,
	)

	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.CORSAllowedOrigins, mux)))

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
