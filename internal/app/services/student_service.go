package services

import (
	"context"
	"fmt"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
)

// StudentService handles student profiles and parent links
type StudentService struct {
	studentRepo *repositories.StudentRepository
	userRepo    *repositories.UserRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository, userRepo *repositories.UserRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		userRepo:    userRepo,
	}
}

func mapStudentToResponse(student *models.Student) dto.StudentResponse {
	return dto.StudentResponse{
		ID:        student.ID,
		CenterID:  student.CenterID,
		FirstName: student.FirstName,
		LastName:  student.LastName,
		Grade:     student.Grade,
		IsActive:  student.IsActive,
	}
}

// CreateStudent enrolls a new student at the caller's center
func (s *StudentService) CreateStudent(ctx context.Context, centerID int64, req *dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	student := &models.Student{
		CenterID:  centerID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Grade:     req.Grade,
		IsActive:  true,
	}

	id, err := s.studentRepo.CreateStudent(ctx, student)
	if err != nil {
		return nil, err
	}
	student.ID = id

	resp := mapStudentToResponse(student)
	return &resp, nil
}

// getCenterStudent loads a student and checks center scope
func (s *StudentService) getCenterStudent(ctx context.Context, centerID, studentID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}
	return student, nil
}

// GetStudentByID retrieves a student, scoped to the caller's center
func (s *StudentService) GetStudentByID(ctx context.Context, centerID, studentID int64) (*dto.StudentResponse, error) {
	student, err := s.getCenterStudent(ctx, centerID, studentID)
	if err != nil {
		return nil, err
	}

	resp := mapStudentToResponse(student)
	return &resp, nil
}

// GetAllStudents retrieves a paginated list of the center's students
func (s *StudentService) GetAllStudents(ctx context.Context, centerID int64, grade string, page, size int) (*dto.StudentListResponse, error) {
	var gradeFilter *string
	if grade != "" {
		gradeFilter = &grade
	}

	students, pagination, err := s.studentRepo.GetAllStudentsByCenter(ctx, centerID, gradeFilter, page, size)
	if err != nil {
		return nil, err
	}

	resp := &dto.StudentListResponse{
		Students:       make([]dto.StudentResponse, 0, len(students)),
		PaginationInfo: pagination,
	}
	for _, student := range students {
		resp.Students = append(resp.Students, mapStudentToResponse(student))
	}

	return resp, nil
}

// UpdateStudent updates a student's profile
func (s *StudentService) UpdateStudent(ctx context.Context, centerID, studentID int64, req *dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	student, err := s.getCenterStudent(ctx, centerID, studentID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		student.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		student.LastName = *req.LastName
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.IsActive != nil {
		student.IsActive = *req.IsActive
	}

	if err := s.studentRepo.UpdateStudent(ctx, student); err != nil {
		return nil, err
	}

	resp := mapStudentToResponse(student)
	return &resp, nil
}

// DeleteStudent removes a student from the caller's center
func (s *StudentService) DeleteStudent(ctx context.Context, centerID, studentID int64) error {
	if _, err := s.getCenterStudent(ctx, centerID, studentID); err != nil {
		return err
	}
	return s.studentRepo.DeleteStudent(ctx, studentID)
}

// LinkParent links a parent account to a student of the same center
func (s *StudentService) LinkParent(ctx context.Context, centerID, studentID int64, req *dto.LinkParentRequest) error {
	if _, err := s.getCenterStudent(ctx, centerID, studentID); err != nil {
		return err
	}

	parent, err := s.userRepo.GetUserByID(ctx, req.ParentUserID)
	if err != nil {
		return err
	}
	if parent.RoleType != models.RoleParent {
		return apperrors.NewBadRequestError("user is not a parent account")
	}
	if parent.CenterID != centerID {
		return apperrors.ErrPermissionDenied
	}

	if err := s.studentRepo.LinkParent(ctx, req.ParentUserID, studentID); err != nil {
		return fmt.Errorf("error linking parent %d to student %d: %w", req.ParentUserID, studentID, err)
	}

	return nil
}

// UnlinkParent removes a parent-student link
func (s *StudentService) UnlinkParent(ctx context.Context, centerID, studentID, parentUserID int64) error {
	if _, err := s.getCenterStudent(ctx, centerID, studentID); err != nil {
		return err
	}
	return s.studentRepo.UnlinkParent(ctx, parentUserID, studentID)
}

// GetLinkedStudents lists the students linked to a parent account
func (s *StudentService) GetLinkedStudents(ctx context.Context, parentUserID int64) (*dto.LinkedStudentsResponse, error) {
	students, err := s.studentRepo.GetStudentsByParent(ctx, parentUserID)
	if err != nil {
		return nil, err
	}

	resp := &dto.LinkedStudentsResponse{
		Students: make([]dto.StudentResponse, 0, len(students)),
	}
	for _, student := range students {
		resp.Students = append(resp.Students, mapStudentToResponse(student))
	}

	return resp, nil
}
