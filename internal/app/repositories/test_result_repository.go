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
	"github.com/ozan/classtrack/internal/pkg/dberrors"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// TestResultRepository handles test result database operations
type TestResultRepository struct {
	DB *pgxpool.Pool
}

// NewTestResultRepository creates a new instance of TestResultRepository.
func NewTestResultRepository(db *pgxpool.Pool) *TestResultRepository {
	return &TestResultRepository{DB: db}
}

// Common select query builder for test results with their test and student
// name joined in.
func (r *TestResultRepository) selectTestResultQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"tr.id", "tr.student_id", "tr.test_id", "tr.marks_obtained", "tr.date_taken",
		"tr.created_at", "tr.updated_at",
		"s.first_name", "s.last_name",
		"t.id", "t.center_id", "t.name", "t.subject", "t.total_marks",
		"t.lesson_plan_id", "t.created_at", "t.updated_at",
	).From("test_results tr").
		Join("students s ON tr.student_id = s.id").
		Join("tests t ON tr.test_id = t.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ScanTestResult scans a joined row into a TestResult with its test embedded.
func ScanTestResult(row pgx.Row) (*models.TestResult, error) {
	var result models.TestResult
	var test models.Test
	var firstName, lastName string

	err := row.Scan(
		&result.ID, &result.StudentID, &result.TestID, &result.MarksObtained, &result.DateTaken,
		&result.CreatedAt, &result.UpdatedAt,
		&firstName, &lastName,
		&test.ID, &test.CenterID, &test.Name, &test.Subject, &test.TotalMarks,
		&test.LessonPlanID, &test.CreatedAt, &test.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	result.StudentName = firstName + " " + lastName
	result.Test = &test
	return &result, nil
}

// CreateTestResult inserts a new test result and returns its ID
func (r *TestResultRepository) CreateTestResult(ctx context.Context, result *models.TestResult) (int64, error) {
	sql, args, err := squirrel.Insert("test_results").
		Columns("student_id", "test_id", "marks_obtained", "date_taken").
		Values(result.StudentID, result.TestID, result.MarksObtained, result.DateTaken).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create test result SQL")
		return 0, fmt.Errorf("failed to build create test result query: %w", err)
	}

	var id int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error executing create test result query")
		return 0, fmt.Errorf("error creating test result: %w", err)
	}

	return id, nil
}

// GetTestResultByID retrieves a single test result with details
func (r *TestResultRepository) GetTestResultByID(ctx context.Context, id int64) (*models.TestResult, error) {
	sqlStr, args, err := r.selectTestResultQuery().Where(squirrel.Eq{"tr.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get test result by ID SQL")
		return nil, fmt.Errorf("failed to build get test result query: %w", err)
	}

	result, err := ScanTestResult(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTestResultNotFound
		}
		logger.Error().Err(err).Int64("testResultID", id).Msg("Error scanning test result row")
		return nil, fmt.Errorf("error retrieving test result: %w", err)
	}

	return result, nil
}

func (r *TestResultRepository) listTestResults(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.TestResult, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list test results SQL")
		return nil, fmt.Errorf("failed to build list test results query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list test results query")
		return nil, fmt.Errorf("error listing test results: %w", err)
	}
	defer rows.Close()

	results := make([]*models.TestResult, 0)
	for rows.Next() {
		result, err := ScanTestResult(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one test result during list")
			continue
		}
		results = append(results, result)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through test result rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return results, nil
}

// ListTestResultsByCenter retrieves all test results of a center
func (r *TestResultRepository) ListTestResultsByCenter(ctx context.Context, centerID int64) ([]*models.TestResult, error) {
	builder := r.selectTestResultQuery().
		Where(squirrel.Eq{"t.center_id": centerID}).
		OrderBy("tr.date_taken DESC")
	return r.listTestResults(ctx, builder)
}

// ListTestResultsByStudent retrieves all test results of one student
func (r *TestResultRepository) ListTestResultsByStudent(ctx context.Context, studentID int64) ([]*models.TestResult, error) {
	builder := r.selectTestResultQuery().
		Where(squirrel.Eq{"tr.student_id": studentID}).
		OrderBy("tr.date_taken DESC")
	return r.listTestResults(ctx, builder)
}

// ListTestResultsByTest retrieves all results recorded for one test
func (r *TestResultRepository) ListTestResultsByTest(ctx context.Context, testID int64) ([]*models.TestResult, error) {
	builder := r.selectTestResultQuery().
		Where(squirrel.Eq{"tr.test_id": testID}).
		OrderBy("tr.marks_obtained DESC")
	return r.listTestResults(ctx, builder)
}

// DeleteTestResult deletes a test result by its ID
func (r *TestResultRepository) DeleteTestResult(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("test_results").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete test result SQL")
		return fmt.Errorf("failed to build delete test result query: %w", err)
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("testResultID", id).Msg("Error executing delete test result query")
		return fmt.Errorf("error deleting test result: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTestResultNotFound
	}

	return nil
}
