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

// HomeworkRepository handles homework database operations
type HomeworkRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHomeworkRepository creates a new HomeworkRepository
func NewHomeworkRepository(db *pgxpool.Pool) *HomeworkRepository {
	return &HomeworkRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanHomework(row pgx.Row) (*models.Homework, error) {
	var homework models.Homework
	err := row.Scan(
		&homework.ID, &homework.CenterID, &homework.Title, &homework.Subject,
		&homework.DueDate, &homework.LessonPlanID, &homework.CreatedAt, &homework.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &homework, nil
}

func (r *HomeworkRepository) selectHomeworkQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "center_id", "title", "subject",
		"due_date", "lesson_plan_id", "created_at", "updated_at",
	).From("homeworks")
}

// CreateHomework inserts a new homework and returns its ID
func (r *HomeworkRepository) CreateHomework(ctx context.Context, homework *models.Homework) (int64, error) {
	sql, args, err := r.sb.Insert("homeworks").
		Columns("center_id", "title", "subject", "due_date", "lesson_plan_id").
		Values(homework.CenterID, homework.Title, homework.Subject, homework.DueDate, homework.LessonPlanID).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create homework SQL")
		return 0, fmt.Errorf("failed to build create homework query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return 0, apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Msg("Error executing create homework query")
		return 0, fmt.Errorf("error creating homework: %w", err)
	}

	return id, nil
}

// GetHomeworkByID retrieves a homework by its ID
func (r *HomeworkRepository) GetHomeworkByID(ctx context.Context, id int64) (*models.Homework, error) {
	sql, args, err := r.selectHomeworkQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get homework by ID SQL")
		return nil, fmt.Errorf("failed to build get homework query: %w", err)
	}

	homework, err := scanHomework(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHomeworkNotFound
		}
		logger.Error().Err(err).Int64("homeworkID", id).Msg("Error scanning homework row")
		return nil, fmt.Errorf("error retrieving homework: %w", err)
	}

	return homework, nil
}

// GetAllHomeworksByCenter retrieves a paginated list of a center's homeworks
func (r *HomeworkRepository) GetAllHomeworksByCenter(ctx context.Context, centerID int64, page, size int) ([]*models.Homework, dto.PaginationInfo, error) {
	sqlBuilder := r.selectHomeworkQuery().Where(squirrel.Eq{"center_id": centerID})
	countBuilder := r.sb.Select("count(*)").From("homeworks").Where(squirrel.Eq{"center_id": centerID})

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count homeworks SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count homeworks query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.Homework{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("due_date DESC").
		Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all homeworks SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all homeworks query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	homeworks := make([]*models.Homework, 0)
	for rows.Next() {
		homework, err := scanHomework(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one homework during get all")
			continue
		}
		homeworks = append(homeworks, homework)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through homework rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return homeworks, pagination, nil
}

// UpdateHomework updates an existing homework
func (r *HomeworkRepository) UpdateHomework(ctx context.Context, homework *models.Homework) error {
	sql, args, err := r.sb.Update("homeworks").
		Set("title", homework.Title).
		Set("subject", homework.Subject).
		Set("due_date", homework.DueDate).
		Set("lesson_plan_id", homework.LessonPlanID).
		Where(squirrel.Eq{"id": homework.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update homework SQL")
		return fmt.Errorf("failed to build update homework query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Int64("homeworkID", homework.ID).Msg("Error executing update homework query")
		return fmt.Errorf("error updating homework: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHomeworkNotFound
	}

	return nil
}

// DeleteHomework deletes a homework by its ID
func (r *HomeworkRepository) DeleteHomework(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("homeworks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete homework SQL")
		return fmt.Errorf("failed to build delete homework query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("homeworkID", id).Msg("Error executing delete homework query")
		return fmt.Errorf("error deleting homework: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrHomeworkNotFound
	}

	return nil
}
