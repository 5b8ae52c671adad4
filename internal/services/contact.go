package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"eventsplatform/internal/domain"
)

type contactService struct {
	contactRepo domain.ContactRepository
	mailer      domain.Mailer
	notifyAddr  string
	logger      *slog.Logger
}

// NewContactService creates a ContactService. mailer may be nil; notifyAddr
// is the admin address that receives submission notifications.
func NewContactService(contactRepo domain.ContactRepository, mailer domain.Mailer, notifyAddr string, logger *slog.Logger) domain.ContactService {
	return &contactService{
		contactRepo: contactRepo,
		mailer:      mailer,
		notifyAddr:  notifyAddr,
		logger:      logger,
	}
}

func (s *contactService) Create(ctx context.Context, in domain.ContactInput) (*domain.ContactMessage, error) {
	now := time.Now()
	msg := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	// Notification is best-effort; the submission is already persisted.
	if s.mailer != nil && s.notifyAddr != "" {
		subject := fmt.Sprintf("New contact form submission from %s", msg.Name)
		body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s\n", msg.Name, msg.Email, msg.Message)
		if err := s.mailer.Send(s.notifyAddr, subject, body); err != nil {
			s.logger.WarnContext(ctx, "failed to send contact notification", "err", err)
		}
	}
	return msg, nil
}

func (s *contactService) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	messages, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if messages == nil {
		messages = []*domain.ContactMessage{}
	}
	return messages, nil
}
