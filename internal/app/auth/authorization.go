package auth

import (
	"context"
	"errors"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// AuthorizationService handles authorization operations
type AuthorizationService struct {
	userRepo    *repositories.UserRepository
	studentRepo *repositories.StudentRepository
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(userRepo *repositories.UserRepository, studentRepo *repositories.StudentRepository) *AuthorizationService {
	return &AuthorizationService{
		userRepo:    userRepo,
		studentRepo: studentRepo,
	}
}

// IsStaff checks if the user holds a center-side role (admin, staff or teacher)
func (s *AuthorizationService) IsStaff(ctx context.Context, userID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Msg("Error getting user by ID in IsStaff")
		return false, err
	}
	switch user.RoleType {
	case models.RoleAdmin, models.RoleStaff, models.RoleTeacher:
		return true, nil
	}
	return false, nil
}

// CanAccessStudent checks whether a user may read a student's data.
// Center-side roles may access any student of their own center; parents
// only the students linked to them.
func (s *AuthorizationService) CanAccessStudent(ctx context.Context, userID, studentID int64) (bool, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return false, err
	}

	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return false, err
	}

	if user.RoleType == models.RoleParent {
		linked, err := s.studentRepo.IsLinkedToParent(ctx, userID, studentID)
		if err != nil {
			logger.Error().Err(err).Int64("userID", userID).Int64("studentID", studentID).Msg("Error checking parent link")
			return false, err
		}
		return linked, nil
	}

	return student.CenterID == user.CenterID, nil
}

// ValidateStudentAccess validates student access or returns an error
func (s *AuthorizationService) ValidateStudentAccess(ctx context.Context, userID, studentID int64) error {
	canAccess, err := s.CanAccessStudent(ctx, userID, studentID)
	if err != nil {
		return err
	}
	if !canAccess {
		return apperrors.ErrStudentNotLinked
	}
	return nil
}

// ValidateCenterAccess ensures a resource's center matches the caller's center
func (s *AuthorizationService) ValidateCenterAccess(userCenterID, resourceCenterID int64) error {
	if userCenterID != resourceCenterID {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
