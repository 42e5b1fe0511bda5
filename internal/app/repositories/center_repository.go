package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// CenterRepository handles tutoring center database operations
type CenterRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCenterRepository creates a new CenterRepository
func NewCenterRepository(db *pgxpool.Pool) *CenterRepository {
	return &CenterRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateCenter inserts a new center and returns its ID
func (r *CenterRepository) CreateCenter(ctx context.Context, center *models.Center) (int64, error) {
	sql, args, err := r.sb.Insert("centers").
		Columns("name", "address", "phone").
		Values(center.Name, center.Address, center.Phone).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create center SQL")
		return 0, fmt.Errorf("failed to build create center query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Str("name", center.Name).Msg("Error executing create center query")
		return 0, fmt.Errorf("error creating center: %w", err)
	}

	return id, nil
}

// GetCenterByID retrieves a center by its ID
func (r *CenterRepository) GetCenterByID(ctx context.Context, id int64) (*models.Center, error) {
	sql, args, err := r.sb.Select("id", "name", "address", "phone", "created_at", "updated_at").
		From("centers").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get center by ID SQL")
		return nil, fmt.Errorf("failed to build get center query: %w", err)
	}

	var center models.Center
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&center.ID, &center.Name, &center.Address, &center.Phone,
		&center.CreatedAt, &center.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCenterNotFound
		}
		logger.Error().Err(err).Int64("centerID", id).Msg("Error scanning center row")
		return nil, fmt.Errorf("error retrieving center: %w", err)
	}

	return &center, nil
}

// UpdateCenter updates a center's contact details
func (r *CenterRepository) UpdateCenter(ctx context.Context, center *models.Center) error {
	sql, args, err := r.sb.Update("centers").
		Set("name", center.Name).
		Set("address", center.Address).
		Set("phone", center.Phone).
		Where(squirrel.Eq{"id": center.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update center SQL")
		return fmt.Errorf("failed to build update center query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("centerID", center.ID).Msg("Error executing update center query")
		return fmt.Errorf("error updating center: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCenterNotFound
	}

	return nil
}
