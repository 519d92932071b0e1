package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/yigit/placementhub/internal/app/models"
	appRepos "github.com/yigit/placementhub/internal/app/repositories"
	"github.com/yigit/placementhub/internal/config"
	"github.com/yigit/placementhub/internal/pkg/auth"
)

// CreateDefaultData seeds the placement-cell admin account from configuration.
// Admin accounts have no registration endpoint, so a fresh deployment gets its
// admin here.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	adminRepo := appRepos.NewAdminRepository(dbPool)

	email := cfg.Admin.Email
	password := cfg.Admin.Password
	if email == "" || password == "" {
		lgr.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	exists, err := adminRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin account exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin account already exists, skipping creation")
		return nil
	}

	lgr.Info().Str("email", email).Msg("Creating default admin account...")

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	adminID, err := adminRepo.Create(ctx, &appModels.Admin{
		Email:    email,
		Password: hashedPassword,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return errors.Join(errors.New("admin seed failed"), err)
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin account created successfully")
	return nil
}
