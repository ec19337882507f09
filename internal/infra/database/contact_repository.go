package database

import (
	"context"
	"database/sql"

	"github.com/permitwatch/lead-portal/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// List returns the most recent records first; the dashboard shows a short
// activity feed, not the full log.
func (r *ContactRepository) List(ctx context.Context, limit int) ([]*entity.ContactRecord, error) {
	query := `
		SELECT id, lead_id, type, recipient, subject, content, status, ts, user_id
		FROM contact_history
		ORDER BY ts DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]*entity.ContactRecord, 0)
	for rows.Next() {
		rec := &entity.ContactRecord{}
		err := rows.Scan(&rec.ID, &rec.LeadID, &rec.Type, &rec.Recipient,
			&rec.Subject, &rec.Content, &rec.Status, &rec.Timestamp, &rec.UserID)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *ContactRepository) Create(ctx context.Context, rec *entity.ContactRecord) error {
	query := `
		INSERT INTO contact_history (id, lead_id, type, recipient, subject, content, status, ts, user_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query, rec.ID, rec.LeadID, rec.Type,
		rec.Recipient, rec.Subject, rec.Content, rec.Status, rec.Timestamp, rec.UserID)
	return err
}
