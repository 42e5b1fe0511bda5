package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ozan/classtrack/internal/app/models"
	appRepos "github.com/ozan/classtrack/internal/app/repositories"
	pkgAuth "github.com/ozan/classtrack/internal/pkg/auth"
)

const defaultAdminEmail = "admin@classtrack.app"

// CreateDefaultData creates a default center and admin account on first
// startup so the API is usable before any real center is provisioned.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	centerRepo := appRepos.NewCenterRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Center/Admin)...")

	exists, err := userRepo.ExistsUserByEmail(ctx, defaultAdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if default admin exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Default admin already exists, skipping seed")
		return nil
	}

	center := &appModels.Center{Name: "Demo Tutoring Center"}
	centerID, err := centerRepo.CreateCenter(ctx, center)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default center")
		return err
	}

	// Default credentials are meant for local development only
	hashedPassword, err := pkgAuth.HashPassword("Admin123!")
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &appModels.User{
		CenterID:  centerID,
		Email:     defaultAdminEmail,
		Password:  hashedPassword,
		FirstName: "Default",
		LastName:  "Admin",
		RoleType:  appModels.RoleAdmin,
		IsActive:  true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin user")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Int64("centerId", centerID).Msg("Default center and admin created")
	return nil
}
