package domain

import (
	"context"
	"time"
)

// ContactMessage is a contact-form submission. Submissions are immutable;
// no update or delete is exposed.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInput carries the validated fields for a submission.
type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

// ContactRepository defines the interface for contact-message storage.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]*ContactMessage, error)
}

// ContactService defines the business logic for the contact form.
type ContactService interface {
	Create(ctx context.Context, in ContactInput) (*ContactMessage, error)
	List(ctx context.Context) ([]*ContactMessage, error)
}

// Mailer sends plain-text notification email.
type Mailer interface {
	Send(to, subject, text string) error
}
