package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/helpers"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// GetAllLessonPlansParams holds parameters for filtering and pagination.
type GetAllLessonPlansParams struct {
	Subject *string
	Grade   *string
	From    *time.Time
	To      *time.Time
	Page    int
	Size    int
}

// LessonPlanRepository handles lesson plan database operations
type LessonPlanRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLessonPlanRepository creates a new LessonPlanRepository
func NewLessonPlanRepository(db *pgxpool.Pool) *LessonPlanRepository {
	return &LessonPlanRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanLessonPlan(row pgx.Row) (*models.LessonPlan, error) {
	var plan models.LessonPlan
	err := row.Scan(
		&plan.ID, &plan.CenterID, &plan.Subject, &plan.Chapter, &plan.Topic,
		&plan.Grade, &plan.LessonDate, &plan.CreatedAt, &plan.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *LessonPlanRepository) selectLessonPlanQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "center_id", "subject", "chapter", "topic",
		"grade", "lesson_date", "created_at", "updated_at",
	).From("lesson_plans")
}

// CreateLessonPlan inserts a new lesson plan and returns its ID
func (r *LessonPlanRepository) CreateLessonPlan(ctx context.Context, plan *models.LessonPlan) (int64, error) {
	sql, args, err := r.sb.Insert("lesson_plans").
		Columns("center_id", "subject", "chapter", "topic", "grade", "lesson_date").
		Values(plan.CenterID, plan.Subject, plan.Chapter, plan.Topic, plan.Grade, plan.LessonDate).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create lesson plan SQL")
		return 0, fmt.Errorf("failed to build create lesson plan query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing create lesson plan query")
		return 0, fmt.Errorf("error creating lesson plan: %w", err)
	}

	return id, nil
}

// GetLessonPlanByID retrieves a lesson plan by its ID
func (r *LessonPlanRepository) GetLessonPlanByID(ctx context.Context, id int64) (*models.LessonPlan, error) {
	sql, args, err := r.selectLessonPlanQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get lesson plan by ID SQL")
		return nil, fmt.Errorf("failed to build get lesson plan query: %w", err)
	}

	plan, err := scanLessonPlan(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonPlanNotFound
		}
		logger.Error().Err(err).Int64("lessonPlanID", id).Msg("Error scanning lesson plan row")
		return nil, fmt.Errorf("error retrieving lesson plan: %w", err)
	}

	return plan, nil
}

// GetAllLessonPlansByCenter retrieves a paginated, filtered list of a center's lesson plans
func (r *LessonPlanRepository) GetAllLessonPlansByCenter(ctx context.Context, centerID int64, params GetAllLessonPlansParams) ([]*models.LessonPlan, dto.PaginationInfo, error) {
	sqlBuilder := r.selectLessonPlanQuery().Where(squirrel.Eq{"center_id": centerID})
	countBuilder := r.sb.Select("count(*)").From("lesson_plans").Where(squirrel.Eq{"center_id": centerID})

	if params.Subject != nil && *params.Subject != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"subject": *params.Subject})
		countBuilder = countBuilder.Where(squirrel.Eq{"subject": *params.Subject})
	}
	if params.Grade != nil && *params.Grade != "" {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"grade": *params.Grade})
		countBuilder = countBuilder.Where(squirrel.Eq{"grade": *params.Grade})
	}
	if params.From != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.GtOrEq{"lesson_date": *params.From})
		countBuilder = countBuilder.Where(squirrel.GtOrEq{"lesson_date": *params.From})
	}
	if params.To != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.LtOrEq{"lesson_date": *params.To})
		countBuilder = countBuilder.Where(squirrel.LtOrEq{"lesson_date": *params.To})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count lesson plans SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count lesson plans query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, params.Page, params.Size)
	if totalItems == 0 {
		return []*models.LessonPlan{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Size)
	sqlStr, args, err := sqlBuilder.OrderBy("lesson_date DESC").
		Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all lesson plans SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all lesson plans query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	plans := make([]*models.LessonPlan, 0)
	for rows.Next() {
		plan, err := scanLessonPlan(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one lesson plan during get all")
			continue
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through lesson plan rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return plans, pagination, nil
}

// ListLessonPlansByCenter retrieves the complete, unpaginated plan set of a
// center. The aggregation needs the whole set even when the dashboard is
// filtered, so missed-chapter detection sees every planned lesson.
func (r *LessonPlanRepository) ListLessonPlansByCenter(ctx context.Context, centerID int64) ([]*models.LessonPlan, error) {
	sqlStr, args, err := r.selectLessonPlanQuery().
		Where(squirrel.Eq{"center_id": centerID}).
		OrderBy("lesson_date DESC").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list lesson plans SQL")
		return nil, fmt.Errorf("failed to build list lesson plans query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("centerID", centerID).Msg("Error executing list lesson plans query")
		return nil, fmt.Errorf("error listing lesson plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*models.LessonPlan, 0)
	for rows.Next() {
		plan, err := scanLessonPlan(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one lesson plan during list")
			continue
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through lesson plan rows")
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return plans, nil
}

// UpdateLessonPlan updates an existing lesson plan
func (r *LessonPlanRepository) UpdateLessonPlan(ctx context.Context, plan *models.LessonPlan) error {
	sql, args, err := r.sb.Update("lesson_plans").
		Set("subject", plan.Subject).
		Set("chapter", plan.Chapter).
		Set("topic", plan.Topic).
		Set("grade", plan.Grade).
		Set("lesson_date", plan.LessonDate).
		Where(squirrel.Eq{"id": plan.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update lesson plan SQL")
		return fmt.Errorf("failed to build update lesson plan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lessonPlanID", plan.ID).Msg("Error executing update lesson plan query")
		return fmt.Errorf("error updating lesson plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonPlanNotFound
	}

	return nil
}

// DeleteLessonPlan deletes a lesson plan by its ID
func (r *LessonPlanRepository) DeleteLessonPlan(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("lesson_plans").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete lesson plan SQL")
		return fmt.Errorf("failed to build delete lesson plan query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("lessonPlanID", id).Msg("Error executing delete lesson plan query")
		return fmt.Errorf("error deleting lesson plan: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLessonPlanNotFound
	}

	return nil
}
