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

// ChapterRecordRepository handles student chapter record database operations
type ChapterRecordRepository struct {
	DB *pgxpool.Pool
}

// NewChapterRecordRepository creates a new instance of ChapterRecordRepository.
func NewChapterRecordRepository(db *pgxpool.Pool) *ChapterRecordRepository {
	return &ChapterRecordRepository{DB: db}
}

// Common select query builder for chapter records with their lesson plan and
// student name joined in. The aggregation consumes these rows directly.
func (r *ChapterRecordRepository) selectChapterRecordQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"scr.id", "scr.student_id", "scr.lesson_plan_id", "scr.evaluation_rating",
		"scr.teacher_notes", "scr.recorded_by", "scr.completed_at",
		"scr.created_at", "scr.updated_at",
		"s.first_name", "s.last_name",
		"lp.id", "lp.center_id", "lp.subject", "lp.chapter", "lp.topic",
		"lp.grade", "lp.lesson_date", "lp.created_at", "lp.updated_at",
	).From("student_chapter_records scr").
		Join("students s ON scr.student_id = s.id").
		Join("lesson_plans lp ON scr.lesson_plan_id = lp.id").
		PlaceholderFormat(squirrel.Dollar)
}

// ScanChapterRecord scans a joined row into a StudentChapterRecord with its
// lesson plan embedded.
func ScanChapterRecord(row pgx.Row) (*models.StudentChapterRecord, error) {
	var record models.StudentChapterRecord
	var plan models.LessonPlan
	var firstName, lastName string

	err := row.Scan(
		&record.ID, &record.StudentID, &record.LessonPlanID, &record.EvaluationRating,
		&record.TeacherNotes, &record.RecordedBy, &record.CompletedAt,
		&record.CreatedAt, &record.UpdatedAt,
		&firstName, &lastName,
		&plan.ID, &plan.CenterID, &plan.Subject, &plan.Chapter, &plan.Topic,
		&plan.Grade, &plan.LessonDate, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.StudentName = firstName + " " + lastName
	record.LessonPlan = &plan
	return &record, nil
}

// CreateChapterRecord inserts a new chapter record and returns its ID
func (r *ChapterRecordRepository) CreateChapterRecord(ctx context.Context, record *models.StudentChapterRecord) (int64, error) {
	sql, args, err := squirrel.Insert("student_chapter_records").
		Columns("student_id", "lesson_plan_id", "evaluation_rating", "teacher_notes", "recorded_by", "completed_at").
		Values(record.StudentID, record.LessonPlanID, record.EvaluationRating, record.TeacherNotes, record.RecordedBy, record.CompletedAt).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create chapter record SQL")
		return 0, fmt.Errorf("failed to build create chapter record query: %w", err)
	}

	var id int64
	err = r.DB.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Msg("Error executing create chapter record query")
		return 0, fmt.Errorf("error creating chapter record: %w", err)
	}

	return id, nil
}

// GetChapterRecordByID retrieves a single chapter record with details
func (r *ChapterRecordRepository) GetChapterRecordByID(ctx context.Context, id int64) (*models.StudentChapterRecord, error) {
	sqlStr, args, err := r.selectChapterRecordQuery().Where(squirrel.Eq{"scr.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get chapter record by ID SQL")
		return nil, fmt.Errorf("failed to build get chapter record query: %w", err)
	}

	record, err := ScanChapterRecord(r.DB.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrChapterRecordNotFound
		}
		logger.Error().Err(err).Int64("chapterRecordID", id).Msg("Error scanning chapter record row")
		return nil, fmt.Errorf("error retrieving chapter record: %w", err)
	}

	return record, nil
}

func (r *ChapterRecordRepository) listChapterRecords(ctx context.Context, builder squirrel.SelectBuilder) ([]*models.StudentChapterRecord, error) {
	sqlStr, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list chapter records SQL")
		return nil, fmt.Errorf("failed to build list chapter records query: %w", err)
	}

	rows, err := r.DB.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list chapter records query")
		return nil, fmt.Errorf("error listing chapter records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.StudentChapterRecord, 0)
	for rows.Next() {
		record, err := ScanChapterRecord(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one chapter record during list")
			continue
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through chapter record rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return records, nil
}

// ListChapterRecordsByCenter retrieves all chapter records of a center
func (r *ChapterRecordRepository) ListChapterRecordsByCenter(ctx context.Context, centerID int64) ([]*models.StudentChapterRecord, error) {
	builder := r.selectChapterRecordQuery().
		Where(squirrel.Eq{"lp.center_id": centerID}).
		OrderBy("scr.completed_at DESC")
	return r.listChapterRecords(ctx, builder)
}

// ListChapterRecordsByStudent retrieves all chapter records of one student
func (r *ChapterRecordRepository) ListChapterRecordsByStudent(ctx context.Context, studentID int64) ([]*models.StudentChapterRecord, error) {
	builder := r.selectChapterRecordQuery().
		Where(squirrel.Eq{"scr.student_id": studentID}).
		OrderBy("scr.completed_at DESC")
	return r.listChapterRecords(ctx, builder)
}

// UpdateChapterRecord updates an existing chapter record
func (r *ChapterRecordRepository) UpdateChapterRecord(ctx context.Context, record *models.StudentChapterRecord) error {
	sql, args, err := squirrel.Update("student_chapter_records").
		Set("evaluation_rating", record.EvaluationRating).
		Set("teacher_notes", record.TeacherNotes).
		Set("completed_at", record.CompletedAt).
		Where(squirrel.Eq{"id": record.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update chapter record SQL")
		return fmt.Errorf("failed to build update chapter record query: %w", err)
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterRecordID", record.ID).Msg("Error executing update chapter record query")
		return fmt.Errorf("error updating chapter record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChapterRecordNotFound
	}

	return nil
}

// DeleteChapterRecord deletes a chapter record by its ID
func (r *ChapterRecordRepository) DeleteChapterRecord(ctx context.Context, id int64) error {
	sql, args, err := squirrel.Delete("student_chapter_records").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete chapter record SQL")
		return fmt.Errorf("failed to build delete chapter record query: %w", err)
	}

	cmdTag, err := r.DB.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("chapterRecordID", id).Msg("Error executing delete chapter record query")
		return fmt.Errorf("error deleting chapter record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrChapterRecordNotFound
	}

	return nil
}
