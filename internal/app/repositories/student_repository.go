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

// StudentRepository handles student and parent link database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID, &student.CenterID, &student.FirstName, &student.LastName,
		&student.Grade, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (r *StudentRepository) selectStudentQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "center_id", "first_name", "last_name",
		"grade", "is_active", "created_at", "updated_at",
	).From("students")
}

// CreateStudent inserts a new student and returns its ID
func (r *StudentRepository) CreateStudent(ctx context.Context, student *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("center_id", "first_name", "last_name", "grade", "is_active").
		Values(student.CenterID, student.FirstName, student.LastName, student.Grade, student.IsActive).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}

	return id, nil
}

// GetStudentByID retrieves a student by its ID
func (r *StudentRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.selectStudentQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get student by ID SQL")
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetAllStudentsByCenter retrieves a paginated list of students at a center,
// optionally filtered by grade.
func (r *StudentRepository) GetAllStudentsByCenter(ctx context.Context, centerID int64, grade *string, page, size int) ([]*models.Student, dto.PaginationInfo, error) {
	sqlBuilder := r.selectStudentQuery().Where(squirrel.Eq{"center_id": centerID})
	countBuilder := r.sb.Select("count(*)").From("students").Where(squirrel.Eq{"center_id": centerID})

	if grade != nil && *grade != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"grade": *grade})
		countBuilder = countBuilder.Where(squirrel.Eq{"grade": *grade})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count students SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count students query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Student{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("last_name ASC", "first_name ASC").
		Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all students SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all students query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one student during get all")
			continue
		}
		students = append(students, student)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through student rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return students, pagination, nil
}

// UpdateStudent updates a student's profile fields
func (r *StudentRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Update("students").
		Set("first_name", student.FirstName).
		Set("last_name", student.LastName).
		Set("grade", student.Grade).
		Set("is_active", student.IsActive).
		Where(squirrel.Eq{"id": student.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update student SQL")
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", student.ID).Msg("Error executing update student query")
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// DeleteStudent removes a student and its dependent records
func (r *StudentRepository) DeleteStudent(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete student SQL")
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// LinkParent links a parent user to a student
func (r *StudentRepository) LinkParent(ctx context.Context, parentUserID, studentID int64) error {
	sql, args, err := r.sb.Insert("parent_students").
		Columns("parent_user_id", "student_id").
		Values(parentUserID, studentID).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building link parent SQL")
		return fmt.Errorf("failed to build link parent query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "parent_students_parent_user_id_student_id_key") {
			return apperrors.ErrParentStudentExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("parentUserID", parentUserID).Int64("studentID", studentID).Msg("Error executing link parent query")
		return fmt.Errorf("error linking parent to student: %w", err)
	}

	return nil
}

// UnlinkParent removes a parent-student link
func (r *StudentRepository) UnlinkParent(ctx context.Context, parentUserID, studentID int64) error {
	sql, args, err := r.sb.Delete("parent_students").
		Where(squirrel.Eq{"parent_user_id": parentUserID, "student_id": studentID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building unlink parent SQL")
		return fmt.Errorf("failed to build unlink parent query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing unlink parent query")
		return fmt.Errorf("error unlinking parent from student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotLinked
	}

	return nil
}

// GetStudentsByParent retrieves all students linked to a parent user
func (r *StudentRepository) GetStudentsByParent(ctx context.Context, parentUserID int64) ([]*models.Student, error) {
	sqlStr, args, err := r.sb.Select(
		"s.id", "s.center_id", "s.first_name", "s.last_name",
		"s.grade", "s.is_active", "s.created_at", "s.updated_at",
	).From("students s").
		Join("parent_students ps ON ps.student_id = s.id").
		Where(squirrel.Eq{"ps.parent_user_id": parentUserID}).
		OrderBy("s.first_name ASC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get students by parent SQL")
		return nil, fmt.Errorf("failed to build get students by parent query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("parentUserID", parentUserID).Msg("Error executing get students by parent query")
		return nil, fmt.Errorf("error retrieving students by parent: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one student during get by parent")
			continue
		}
		students = append(students, student)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through linked student rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return students, nil
}

// IsLinkedToParent reports whether a student is linked to a parent user
func (r *StudentRepository) IsLinkedToParent(ctx context.Context, parentUserID, studentID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").From("parent_students").
		Where(squirrel.Eq{"parent_user_id": parentUserID, "student_id": studentID}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building is linked to parent SQL")
		return false, fmt.Errorf("failed to build is linked to parent query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Msg("Error executing is linked to parent query")
		return false, fmt.Errorf("error checking parent link: %w", err)
	}

	return true, nil
}
