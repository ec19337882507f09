package auth

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/permitwatch/lead-portal/internal/entity"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// Seed credentials for the single console login. Demo-grade on purpose:
// override SEED_ADMIN_* in any environment that is reachable from outside.
const (
	DefaultAdminEmail    = "admin@gmail.com"
	DefaultAdminPassword = "12345678"
)

type Service struct {
	Users  entity.AdminUserRepositoryInterface
	Tokens *TokenManager
}

func NewService(users entity.AdminUserRepositoryInterface, tokens *TokenManager) *Service {
	return &Service{Users: users, Tokens: tokens}
}

// Login checks the credentials and issues a signed token. Email is matched
// lowercased, the way accounts are stored.
func (s *Service) Login(ctx context.Context, email, password string) (string, entity.UserSummary, error) {
	user, err := s.Users.FindByEmail(ctx, strings.ToLower(email))
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, entity.ErrNotFound) {
		return "", entity.UserSummary{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", entity.UserSummary{}, err
	}

	if HashPassword(password) != user.Password {
		return "", entity.UserSummary{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Summary())
	if err != nil {
		return "", entity.UserSummary{}, err
	}
	return token, user.Summary(), nil
}

// Verify validates the bearer token and re-checks that the referenced user
// still exists, so deleting an admin revokes outstanding tokens.
func (s *Service) Verify(ctx context.Context, tokenString string) (entity.UserSummary, error) {
	claims, err := s.Tokens.Verify(tokenString)
	if err != nil {
		return entity.UserSummary{}, err
	}

	user, err := s.Users.FindByID(ctx, claims.ID)
	if errors.Is(err, sql.ErrNoRows) || errors.Is(err, entity.ErrNotFound) {
		return entity.UserSummary{}, ErrUserNotFound
	}
	if err != nil {
		return entity.UserSummary{}, err
	}
	return user.Summary(), nil
}

// SeedAdmin creates the admin account on first start. Existing accounts are
// never touched.
func (s *Service) SeedAdmin(ctx context.Context, email, password string) error {
	email = strings.ToLower(email)

	_, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) && !errors.Is(err, entity.ErrNotFound) {
		return err
	}

	now := time.Now()
	user := &entity.AdminUser{
		ID:        uuid.New().String(),
		Email:     email,
		Password:  HashPassword(password),
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Users.Create(ctx, user); err != nil {
		return err
	}

	log.Printf("[AUTH] admin user created: %s", email)
	return nil
}
