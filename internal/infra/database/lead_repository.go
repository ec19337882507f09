package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/permitwatch/lead-portal/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) List(ctx context.Context, limit int) ([]*entity.Lead, error) {
	query := `SELECT id, data, created_at, updated_at FROM leads LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := make([]*entity.Lead, 0)
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT id, data, created_at, updated_at FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Create(ctx context.Context, id string, fields map[string]any, now time.Time) (*entity.Lead, error) {
	if fields == nil {
		fields = map[string]any{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	query := `INSERT INTO leads (id, data, created_at, updated_at) VALUES ($1, $2::jsonb, $3, $3)`
	if _, err := r.DB.ExecContext(ctx, query, id, string(data), now); err != nil {
		return nil, err
	}

	lead := &entity.Lead{}
	lead.FromDocument(fields)
	lead.ID = id
	lead.CreatedAt = now
	lead.UpdatedAt = now
	return lead, nil
}

// Update shallow-merges the incoming fields into the stored document (jsonb
// || keeps untouched keys) and restamps updated_at, then returns the merged
// record in one round trip.
func (r *LeadRepository) Update(ctx context.Context, id string, fields map[string]any, now time.Time) (*entity.Lead, error) {
	// A nil map marshals to JSON null, which jsonb || rejects.
	if fields == nil {
		fields = map[string]any{}
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE leads
		SET data = data || $2::jsonb, updated_at = $3
		WHERE id = $1
		RETURNING id, data, created_at, updated_at
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id, string(patch), now))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		id        string
		data      []byte
		createdAt time.Time
		updatedAt time.Time
	)
	if err := row.Scan(&id, &data, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}

	lead := &entity.Lead{}
	lead.FromDocument(fields)
	lead.ID = id
	lead.CreatedAt = createdAt
	lead.UpdatedAt = updatedAt
	return lead, nil
}
