package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/deniz/campushub/internal/app/models"
	"github.com/deniz/campushub/internal/app/repositories"
	"github.com/deniz/campushub/internal/config"
	"github.com/deniz/campushub/internal/pkg/apperrors"
	"github.com/deniz/campushub/internal/pkg/auth"
)

// CreateDefaultData seeds the tag catalogs and the default admin user.
// Existing rows are left untouched, so it is safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	tagRepo := repositories.NewTagRepository(dbPool)
	adminRepo := repositories.NewAdminUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (tag catalogs, admin user)...")
	var finalErr error

	for _, tag := range models.LanguageCatalog {
		if err := tagRepo.EnsureTag(ctx, "languages", tag); err != nil {
			lgr.Error().Err(err).Str("language", tag.Name).Msg("Error seeding language tag")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, tag := range models.SpecializationCatalog {
		if err := tagRepo.EnsureTag(ctx, "specializations", tag); err != nil {
			lgr.Error().Err(err).Str("specialization", tag.Name).Msg("Error seeding specialization tag")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.Admin.Email != "" && cfg.Admin.Password != "" {
		if err := ensureAdminUser(ctx, adminRepo, cfg.Admin.Email, cfg.Admin.Password, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Warn().Msg("No admin credentials configured, skipping admin user seeding")
	}

	return finalErr
}

func ensureAdminUser(ctx context.Context, adminRepo *repositories.AdminUserRepository, email, password string, lgr zerolog.Logger) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	err = adminRepo.Create(ctx, &models.AdminUser{Email: email, PasswordHash: hash})
	if errors.Is(err, apperrors.ErrResourceAlreadyExists) {
		return nil
	}
	if err != nil {
		lgr.Error().Err(err).Str("email", email).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("email", email).Msg("Default admin user created")
	return nil
}
