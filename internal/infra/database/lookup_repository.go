package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// uniqueViolation is the Postgres error code raised by the
// lookup_items(kind, name) unique index.
const uniqueViolation = "23505"

// LookupRepository serves all six reference collections from one table,
// discriminated by the kind column.
type LookupRepository struct {
	DB *sql.DB
}

func NewLookupRepository(db *sql.DB) *LookupRepository {
	return &LookupRepository{DB: db}
}

func (r *LookupRepository) List(ctx context.Context, kind entity.LookupKind) ([]*entity.LookupItem, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM lookup_items
		WHERE kind = $1
		ORDER BY name ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, kind.Key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.LookupItem, 0)
	for rows.Next() {
		item := &entity.LookupItem{}
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *LookupRepository) Create(ctx context.Context, kind entity.LookupKind, item *entity.LookupItem) error {
	query := `
		INSERT INTO lookup_items (id, kind, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query, item.ID, kind.Key, item.Name, item.CreatedAt, item.UpdatedAt)
	if isUniqueViolation(err) {
		return entity.ErrDuplicateName
	}
	return err
}

func (r *LookupRepository) Delete(ctx context.Context, kind entity.LookupKind, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM lookup_items WHERE kind = $1 AND id = $2`, kind.Key, id)
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

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
