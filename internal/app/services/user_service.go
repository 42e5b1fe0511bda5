package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/auth"
)

// UserService handles user account management
type UserService struct {
	userRepo  *repositories.UserRepository
	tokenRepo *repositories.TokenRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo *repositories.UserRepository, tokenRepo *repositories.TokenRepository) *UserService {
	return &UserService{userRepo: userRepo, tokenRepo: tokenRepo}
}

func mapUserToResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		CenterID:  user.CenterID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RoleType:  string(user.RoleType),
		IsActive:  user.IsActive,
	}
}

// CreateUser creates a user account within the caller's center.
// There is no self registration; accounts are always provisioned by
// center staff.
func (s *UserService) CreateUser(ctx context.Context, centerID int64, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	role := models.RoleType(req.RoleType)
	if !models.ValidRoleType(role) {
		return nil, apperrors.NewBadRequestError("invalid role type")
	}

	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.userRepo.ExistsUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		CenterID:  centerID,
		Email:     email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleType:  role,
		IsActive:  true,
	}

	id, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	resp := mapUserToResponse(user)
	return &resp, nil
}

// GetUserByID retrieves a user, scoped to the caller's center
func (s *UserService) GetUserByID(ctx context.Context, centerID, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CenterID != centerID {
		return nil, apperrors.ErrUserNotFound
	}

	resp := mapUserToResponse(user)
	return &resp, nil
}

// GetAllUsers retrieves a paginated list of the center's users
func (s *UserService) GetAllUsers(ctx context.Context, centerID int64, roleFilter string, page, size int) (*dto.UserListResponse, error) {
	var role *models.RoleType
	if roleFilter != "" {
		r := models.RoleType(strings.ToUpper(roleFilter))
		if !models.ValidRoleType(r) {
			return nil, apperrors.NewBadRequestError("invalid role filter")
		}
		role = &r
	}

	users, pagination, err := s.userRepo.GetAllUsersByCenter(ctx, centerID, role, page, size)
	if err != nil {
		return nil, err
	}

	resp := &dto.UserListResponse{
		Users:          make([]dto.UserResponse, 0, len(users)),
		PaginationInfo: pagination,
	}
	for _, user := range users {
		resp.Users = append(resp.Users, mapUserToResponse(user))
	}

	return resp, nil
}

// DeactivateUser disables a user account within the caller's center and
// revokes its refresh tokens so open sessions cannot be renewed.
func (s *UserService) DeactivateUser(ctx context.Context, centerID, userID int64) error {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.CenterID != centerID {
		return apperrors.ErrUserNotFound
	}

	if err := s.userRepo.DeactivateUser(ctx, userID); err != nil {
		return err
	}

	return s.tokenRepo.RevokeAllUserTokens(ctx, userID)
}
