package postgres

import (
	"context"
	"database/sql"

	"eventsplatform/internal/domain"
)

type contactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) domain.ContactRepository {
	return &contactRepository{DB: db}
}

func (r *contactRepository) Create(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, message, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, m.Name, m.Email, m.Phone, m.Message, m.CreatedAt, m.UpdatedAt).Scan(&m.ID)
}

func (r *contactRepository) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	query := `
		SELECT id, name, email, phone, message, created_at, updated_at
		FROM contact_messages
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		m := &domain.ContactMessage{}
		var phoneNull sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &phoneNull, &m.Message, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		if phoneNull.Valid {
			m.Phone = &phoneNull.String
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
