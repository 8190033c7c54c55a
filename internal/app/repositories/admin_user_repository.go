package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/pkg/apperrors"
)

// AdminUserRepository handles admin account database operations
type AdminUserRepository struct {
	db *pgxpool.Pool
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(db *pgxpool.Pool) *AdminUserRepository {
	return &AdminUserRepository{
		db: db,
	}
}

// GetByEmail retrieves an admin user by email
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1`, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrAdminUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error retrieving admin user: %w", err)
	}
	return &user, nil
}

// Create creates an admin user if the email is not taken yet
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO admin_users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at`,
		user.Email, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrResourceAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("error creating admin user: %w", err)
	}
	return nil
}
