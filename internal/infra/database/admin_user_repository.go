package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/permitwatch/lead-portal/internal/entity"
)

type AdminUserRepository struct {
	DB *sql.DB
}

func NewAdminUserRepository(db *sql.DB) *AdminUserRepository {
	return &AdminUserRepository{DB: db}
}

func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *AdminUserRepository) FindByID(ctx context.Context, id string) (*entity.AdminUser, error) {
	query := `
		SELECT id, email, password, role, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`
	return r.scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *AdminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	query := `
		INSERT INTO admin_users (id, email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Email, user.Password, user.Role, user.CreatedAt, user.UpdatedAt)
	return err
}

func (r *AdminUserRepository) scanUser(row *sql.Row) (*entity.AdminUser, error) {
	user := &entity.AdminUser{}
	err := row.Scan(&user.ID, &user.Email, &user.Password, &user.Role,
		&user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
