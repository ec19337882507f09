package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/permitwatch/lead-portal/internal/entity"
)

// EngagementRepository backs one of the two engagement tables; saved_leads
// and prospection_leads have the same shape and operations.
type EngagementRepository struct {
	DB    *sql.DB
	table string
}

func NewSavedLeadRepository(db *sql.DB) *EngagementRepository {
	return &EngagementRepository{DB: db, table: "saved_leads"}
}

func NewProspectionLeadRepository(db *sql.DB) *EngagementRepository {
	return &EngagementRepository{DB: db, table: "prospection_leads"}
}

func (r *EngagementRepository) List(ctx context.Context) ([]*entity.Engagement, error) {
	query := fmt.Sprintf(`SELECT id, lead_id, user_id, created_at FROM %s`, r.table)

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]*entity.Engagement, 0)
	for rows.Next() {
		e := &entity.Engagement{}
		if err := rows.Scan(&e.ID, &e.LeadID, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *EngagementRepository) Create(ctx context.Context, e *entity.Engagement) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, lead_id, user_id, created_at) VALUES ($1, $2, $3, $4)`, r.table)

	_, err := r.DB.ExecContext(ctx, query, e.ID, e.LeadID, e.UserID, e.CreatedAt)
	return err
}

func (r *EngagementRepository) DeleteByLeadID(ctx context.Context, leadID string) (int64, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE lead_id = $1`, r.table)

	res, err := r.DB.ExecContext(ctx, query, leadID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
