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

// HomeworkRecordRepository handles homework record database operations
type HomeworkRecordRepository struct {
	DB *pgxpool.Pool
}

// NewHomeworkRecordRepository creates a new instance of HomeworkRecordRepository.
func NewHomeworkRecordRepository(db *pgxpool.Pool) *HomeworkRecordRepository {
	return &HomeworkRecordRepository{DB: db}
}

// Common select query builder for homework records with their homework and
// student name joined in.
func (r *HomeworkRecordRepository) selectHomeworkRecordQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"hr.id", "hr.student_id", "hr.homework_id", "hr.status", "hr.teacher_remarks",
		"hr.created_at", "hr.updated_at",
		"s.first_name", "s.last_name",
		"h.id", "h.center_id", "h.title", "h.subject", "h.due_date",
		"h.lesson_plan_id", "h.created_at", "h.updated_at",
	).From("homework_records hr").
		Join("students s ON hr.student_id = s.id").
		Join("homeworks h ON hr.homework_id = h.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ScanHomeworkRecord scans a joined row into a HomeworkRecord with its
// homework embedded.
func ScanHomeworkRecord(row pgx.Row) (*models.HomeworkRecord, error) {
	var record models.HomeworkRecord
	var homework models.Homework
	var firstName, lastName string

	err := row.Scan(
		&record.ID, &record.StudentID, &record.HomeworkID, &record.Status, &record.TeacherRemarks,
		&record.CreatedAt, &record.UpdatedAt,
		&firstName, &lastName,
		&homework.ID, &homework.CenterID, &homework.Title, &homework.Subject, &homework.DueDate,
		&homework.LessonPlanID, &homework.CreatedAt, &homework.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.StudentName = firstName + " " + lastName
	record.Homework = &homework
	return &record, nil
}

// CreateHomeworkRecord assigns a homework to a student and returns the record ID
func (r *HomeworkRecordRepository) CreateHomeworkRecord(ctx context.Context, record *models.HomeworkRecord) (int64, error) {
	sql, args, err := squirrel.Insert("homework_records").
		Columns("student_id", "homework_id", "status", "teacher_remarks").
		Values(record.StudentID, record.HomeworkID, record.Status, record.TeacherRemarks).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create homework record SQL")
		return 0, fmt.Errorf("failed to build create homework record query: %w", err)
	}

	var id int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "homework_records_student_id_homework_id_key") {
			return 0, apperrors.ErrResourceAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Msg("Error executing create homework record query")
		return 0, fmt.Errorf("error creating homework record: %w", err)
	}

	return id, nil
}

// GetHomeworkRecordByID retrieves a single homework record with details
func (r *HomeworkRecordRepository) GetHomeworkRecordByID(ctx context.Context, id int64) (*models.HomeworkRecord, error) {
	sqlStr, args, err := r.selectHomeworkRecordQuery().Where(squirrel.Eq{"hr.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get homework record by ID SQL")
		return nil, fmt.Errorf("failed to build get homework record query: %w", err)
	}

	record, err := ScanHomeworkRecord(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHomeworkRecordNotFound
		}
		logger.Error().Err(err).Int64("homeworkRecordID", id).Msg("Error scanning homework record row")
		return nil, fmt.Errorf("error retrieving homework record: %w", err)
	}

	return record, nil
}

func (r *HomeworkRecordRepository) listHomeworkRecords(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.HomeworkRecord, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list homework records SQL")
		return nil, fmt.Errorf("failed to build list homework records query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list homework records query")
		return nil, fmt.Errorf("error listing homework records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.HomeworkRecord, 0)
	for rows.Next() {
		record, err := ScanHomeworkRecord(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one homework record during list")
			continue
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through homework record rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return records, nil
}

// ListHomeworkRecordsByCenter retrieves all homework records of a center
func (r *HomeworkRecordRepository) ListHomeworkRecordsByCenter(ctx context.Context, centerID int64) ([]*models.HomeworkRecord, error) {
	builder := r.selectHomeworkRecordQuery().
		Where(squirrel.Eq{"h.center_id": centerID}).
		OrderBy("h.due_date DESC")
	return r.listHomeworkRecords(ctx, builder)
}

// ListHomeworkRecordsByStudent retrieves all homework records of one student
func (r *HomeworkRecordRepository) ListHomeworkRecordsByStudent(ctx context.Context, studentID int64) ([]*models.HomeworkRecord, error) {
	builder := r.selectHomeworkRecordQuery().
		Where(squirrel.Eq{"hr.student_id": studentID}).
		OrderBy("h.due_date DESC")
	return r.listHomeworkRecords(ctx, builder)
}

// ListHomeworkRecordsByHomework retrieves all records of one homework
func (r *HomeworkRecordRepository) ListHomeworkRecordsByHomework(ctx context.Context, homeworkID int64) ([]*models.HomeworkRecord, error) {
	builder := r.selectHomeworkRecordQuery().
		Where(squirrel.Eq{"hr.homework_id": homeworkID}).
		OrderBy("s.last_name ASC", "s.first_name ASC")
	return r.listHomeworkRecords(ctx, builder)
}

// UpdateHomeworkRecord updates the status and remarks of a homework record
func (r *HomeworkRecordRepository) UpdateHomeworkRecord(ctx context.Context, record *models.HomeworkRecord) error {
	sql, args, err := squirrel.Update("homework_records").
		Set("status", record.Status).
		Set("teacher_remarks", record.TeacherRemarks).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update homework record SQL")
		return fmt.Errorf("failed to build update homework record query: %w", err)
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("homeworkRecordID", record.ID).Msg("Error executing update homework record query")
		return fmt.Errorf("error updating homework record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHomeworkRecordNotFound
	}

	return nil
}

// DeleteHomeworkRecord deletes a homework record by its ID
func (r *HomeworkRecordRepository) DeleteHomeworkRecord(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("homework_records").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete homework record SQL")
		return fmt.Errorf("failed to build delete homework record query: %w", err)
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("homeworkRecordID", id).Msg("Error executing delete homework record query")
		return fmt.Errorf("error deleting homework record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHomeworkRecordNotFound
	}

	return nil
}
