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

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.CenterID, &user.Email, &user.Password,
		&user.FirstName, &user.LastName, &user.RoleType, &user.IsActive,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) selectUserQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "center_id", "email", "password",
		"first_name", "last_name", "role_type", "is_active",
		"created_at", "updated_at",
	).From("users")
}

// CreateUser inserts a new user and returns its ID
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) (int64, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("center_id", "email", "password", "first_name", "last_name", "role_type", "is_active").
		Values(user.CenterID, user.Email, user.Password, user.FirstName, user.LastName, user.RoleType, user.IsActive).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, fmt.Errorf("failed to build create user query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("email", user.Email).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetUserByID retrieves a user by its ID
func (r *UserRepository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := r.selectUserQuery().Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", id).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetUserByEmail retrieves a user by email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	sql, args, err := r.selectUserQuery().Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by email SQL")
		return nil, fmt.Errorf("failed to build get user query: %w", err)
	}

	user, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("email", email).Msg("Error scanning user row")
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return user, nil
}

// GetAllUsersByCenter retrieves a paginated list of users belonging to a center,
// optionally filtered by role.
func (r *UserRepository) GetAllUsersByCenter(ctx context.Context, centerID int64, role *models.RoleType, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	sqlBuilder := r.selectUserQuery().Where(squirrel.Eq{"center_id": centerID})
	countBuilder := r.sb.Select("count(*)").From("users").Where(squirrel.Eq{"center_id": centerID})

	if role != nil {
		sqlBuilder = sqlBuilder.Where(squirrel.Eq{"role_type": *role})
		countBuilder = countBuilder.Where(squirrel.Eq{"role_type": *role})
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count users SQL")
		return nil, dto.PaginationInfo{}, err
	}

	var totalItems int64
	err = r.db.QueryRow(ctx, countSql, countArgs...).Scan(&totalItems)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing count users query")
		return nil, dto.PaginationInfo{}, err
	}

	pagination := helpers.NewPaginationInfo(totalItems, page, size)
	if totalItems == 0 {
		return []*models.User{}, pagination, nil
	}

	offset, limit := helpers.CalculateOffsetLimit(page, size)
	sqlStr, args, err := sqlBuilder.OrderBy("last_name ASC", "first_name ASC").
		Limit(uint64(limit)).Offset(offset).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all users SQL")
		return nil, dto.PaginationInfo{}, err
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all users query")
		return nil, dto.PaginationInfo{}, err
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning one user during get all")
			continue
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error after iterating through user rows")
		return nil, pagination, fmt.Errorf("database iteration error: %w", err)
	}

	return users, pagination, nil
}

// UpdateUser updates a user's profile fields
func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Update("users").
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("role_type", user.RoleType).
		Set("is_active", user.IsActive).
		Where(squirrel.Eq{"id": user.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update user SQL")
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Int64("userID", user.ID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdatePassword replaces a user's password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	sql, args, err := r.sb.Update("users").
		Set("password", hashedPassword).
		Where(squirrel.Eq{"id": userID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update password SQL")
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing update password query")
		return fmt.Errorf("error updating password: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// DeactivateUser marks a user as inactive instead of deleting the row
func (r *UserRepository) DeactivateUser(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Update("users").
		Set("is_active", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building deactivate user SQL")
		return fmt.Errorf("failed to build deactivate user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error executing deactivate user query")
		return fmt.Errorf("error deactivating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// ExistsUserByEmail reports whether a user with the given email exists
func (r *UserRepository) ExistsUserByEmail(ctx context.Context, email string) (bool, error) {
	sql, args, err := r.sb.Select("1").From("users").Where(squirrel.Eq{"email": email}).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building exists user SQL")
		return false, fmt.Errorf("failed to build exists user query: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		logger.Error().Err(err).Str("email", email).Msg("Error executing exists user query")
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return true, nil
}
