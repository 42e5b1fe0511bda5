package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/dberrors"
	"github.com/ozan/classtrack/internal/pkg/helpers"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// TestRepository handles test database operations
type TestRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTestRepository creates a new TestRepository
func NewTestRepository(db *pgxpool.Pool) *TestRepository {
	return &TestRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanTest(row pgx.Row) (*models.Test, error) {
	var test models.Test
	err := row.Scan(
		&test.ID, &test.CenterID, &test.Name, &test.Subject,
		&test.TotalMarks, &test.LessonPlanID, &test.CreatedAt, &test.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *TestRepository) selectTestQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "center_id", "name", "subject",
		"total_marks", "lesson_plan_id", "created_at", "updated_at",
	).From("tests")
}

// CreateTest inserts a new test and returns its ID
func (r *TestRepository) CreateTest(ctx context.Context, test *models.Test) (int64, error) {
	sql, args, err := r.sb.Insert("tests").
		Columns("center_id", "name", "subject", "total_marks", "lesson_plan_id").
		Values(test.CenterID, test.Name, test.Subject, test.TotalMarks, test.LessonPlanID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create test SQL")
		return 0, fmt.Errorf("failed to build create test query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Msg("Error executing create test query")
		return 0, fmt.Errorf("error creating test: %w", err)
	}

	return id, nil
}

// GetTestByID retrieves a test by its ID
func (r *TestRepository) GetTestByID(ctx context.Context, id int64) (*models.Test, error) {
	sql, args, err := r.selectTestQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get test by ID SQL")
		return nil, fmt.Errorf("failed to build get test query: %w", err)
	}

	test, err := scanTest(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTestNotFound
		}
		logger.Error().Err(err).Int64("testID", id).Msg("Error scanning test row")
		return nil, fmt.Errorf("error retrieving test: %w", err)
	}

	return test, nil
}

// GetAllTestsByCenter retrieves a paginated list of a center's tests
func (r *TestRepository) GetAllTestsByCenter(ctx context.Context, centerID int64, page, size int) ([]*models.Test, dto.PaginationInfo, error) {
	sqlBuilder := r.selectTestQuery().Where(squirrel.Eq{"center_id": centerID})
	countBuilder := r.sb.Select("count(*)").From("tests").Where(squirrel.Eq{"center_id": centerID})

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count tests SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count tests query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Test{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("created_at DESC").
		Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all tests SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all tests query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	tests := make([]*models.Test, 0)
	for rows.Next() {
		test, err := scanTest(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one test during get all")
			continue
		}
		tests = append(tests, test)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through test rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return tests, pagination, nil
}

// UpdateTest updates an existing test
func (r *TestRepository) UpdateTest(ctx context.Context, test *models.Test) error {
	sql, args, err := r.sb.Update("tests").
		Set("name", test.Name).
		Set("subject", test.Subject).
		Set("total_marks", test.TotalMarks).
		Set("lesson_plan_id", test.LessonPlanID).
		Where(squirrel.Eq{"id": test.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update test SQL")
		return fmt.Errorf("failed to build update test query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Int64("testID", test.ID).Msg("Error executing update test query")
		return fmt.Errorf("error updating test: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestNotFound
	}

	return nil
}

// DeleteTest deletes a test by its ID
func (r *TestRepository) DeleteTest(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("tests").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete test SQL")
		return fmt.Errorf("failed to build delete test query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("testID", id).Msg("Error executing delete test query")
		return fmt.Errorf("error deleting test: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestNotFound
	}

	return nil
}
