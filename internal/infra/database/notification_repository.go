package database

import (
	"context"
	"database/sql"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// NotificationRepository persists the records behind the send-email and
// send-mail endpoints (emails and postal_mail tables).
type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) SaveEmail(ctx context.Context, rec *entity.EmailRecord) error {
	query := `
		INSERT INTO emails (id, to_addr, subject, content, status, ts)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.To, rec.Subject, rec.Content, rec.Status, rec.Timestamp)
	return err
}

func (r *NotificationRepository) SavePostal(ctx context.Context, rec *entity.PostalRecord) error {
	query := `
		INSERT INTO postal_mail (id, to_addr, content, status, ts)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		rec.ID, rec.To, rec.Content, rec.Status, rec.Timestamp)
	return err
}
