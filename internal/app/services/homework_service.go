package services

import (
	"context"
	"time"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/repositories"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/helpers"
)

// HomeworkService handles homework and per-student homework records
type HomeworkService struct {
	homeworkRepo       *repositories.HomeworkRepository
	homeworkRecordRepo *repositories.HomeworkRecordRepository
	lessonPlanRepo     *repositories.LessonPlanRepository
	studentRepo        *repositories.StudentRepository
}

// NewHomeworkService creates a new HomeworkService
func NewHomeworkService(
	homeworkRepo *repositories.HomeworkRepository,
	homeworkRecordRepo *repositories.HomeworkRecordRepository,
	lessonPlanRepo *repositories.LessonPlanRepository,
	studentRepo *repositories.StudentRepository,
) *HomeworkService {
	return &HomeworkService{
		homeworkRepo:       homeworkRepo,
		homeworkRecordRepo: homeworkRecordRepo,
		lessonPlanRepo:     lessonPlanRepo,
		studentRepo:        studentRepo,
	}
}

func mapHomeworkToResponse(homework *models.Homework) dto.HomeworkResponse {
	return dto.HomeworkResponse{
		ID:           homework.ID,
		Title:        homework.Title,
		Subject:      homework.Subject,
		DueDate:      homework.DueDate.Format(helpers.DateLayout),
		LessonPlanID: homework.LessonPlanID,
	}
}

func mapHomeworkRecordToResponse(record *models.HomeworkRecord) dto.HomeworkRecordResponse {
	resp := dto.HomeworkRecordResponse{
		ID:             record.ID,
		StudentID:      record.StudentID,
		StudentName:    record.StudentName,
		HomeworkID:     record.HomeworkID,
		Status:         string(record.Status),
		TeacherRemarks: record.TeacherRemarks,
	}
	if record.Homework != nil {
		homework := mapHomeworkToResponse(record.Homework)
		resp.Homework = &homework
	}
	return resp
}

// validateHomeworkLessonPlan checks that an optional lesson plan link points
// to a plan of the caller's center.
func (s *HomeworkService) validateHomeworkLessonPlan(ctx context.Context, centerID int64, lessonPlanID *int64) error {
	if lessonPlanID == nil {
		return nil
	}
	plan, err := s.lessonPlanRepo.GetLessonPlanByID(ctx, *lessonPlanID)
	if err != nil {
		return err
	}
	if plan.CenterID != centerID {
		return apperrors.ErrLessonPlanNotFound
	}
	return nil
}

// CreateHomework creates a homework at the caller's center
func (s *HomeworkService) CreateHomework(ctx context.Context, centerID int64, req *dto.CreateHomeworkRequest) (*dto.HomeworkResponse, error) {
	if err := s.validateHomeworkLessonPlan(ctx, centerID, req.LessonPlanID); err != nil {
		return nil, err
	}

	dueDate, err := time.Parse(helpers.DateLayout, req.DueDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("dueDate must be in YYYY-MM-DD format")
	}

	homework := &models.Homework{
		CenterID:     centerID,
		Title:        req.Title,
		Subject:      req.Subject,
		DueDate:      dueDate,
		LessonPlanID: req.LessonPlanID,
	}

	id, err := s.homeworkRepo.CreateHomework(ctx, homework)
	if err != nil {
		return nil, err
	}
	homework.ID = id

	resp := mapHomeworkToResponse(homework)
	return &resp, nil
}

// getCenterHomework loads a homework and checks center scope
func (s *HomeworkService) getCenterHomework(ctx context.Context, centerID, homeworkID int64) (*models.Homework, error) {
	homework, err := s.homeworkRepo.GetHomeworkByID(ctx, homeworkID)
	if err != nil {
		return nil, err
	}
	if homework.CenterID != centerID {
		return nil, apperrors.ErrHomeworkNotFound
	}
	return homework, nil
}

// GetHomeworkByID retrieves a homework, scoped to the caller's center
func (s *HomeworkService) GetHomeworkByID(ctx context.Context, centerID, homeworkID int64) (*dto.HomeworkResponse, error) {
	homework, err := s.getCenterHomework(ctx, centerID, homeworkID)
	if err != nil {
		return nil, err
	}

	resp := mapHomeworkToResponse(homework)
	return &resp, nil
}

// GetAllHomeworks retrieves a paginated list of the center's homeworks
func (s *HomeworkService) GetAllHomeworks(ctx context.Context, centerID int64, page, size int) (*dto.HomeworkListResponse, error) {
	homeworks, pagination, err := s.homeworkRepo.GetAllHomeworksByCenter(ctx, centerID, page, size)
	if err != nil {
		return nil, err
	}

	resp := &dto.HomeworkListResponse{
		Homeworks:      make([]dto.HomeworkResponse, 0, len(homeworks)),
		PaginationInfo: pagination,
	}
	for _, homework := range homeworks {
		resp.Homeworks = append(resp.Homeworks, mapHomeworkToResponse(homework))
	}

	return resp, nil
}

// UpdateHomework updates an existing homework
func (s *HomeworkService) UpdateHomework(ctx context.Context, centerID, homeworkID int64, req *dto.UpdateHomeworkRequest) (*dto.HomeworkResponse, error) {
	homework, err := s.getCenterHomework(ctx, centerID, homeworkID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		homework.Title = *req.Title
	}
	if req.Subject != nil {
		homework.Subject = *req.Subject
	}
	if req.DueDate != nil {
		dueDate, err := time.Parse(helpers.DateLayout, *req.DueDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("dueDate must be in YYYY-MM-DD format")
		}
		homework.DueDate = dueDate
	}
	if req.LessonPlanID != nil {
		if err := s.validateHomeworkLessonPlan(ctx, centerID, req.LessonPlanID); err != nil {
			return nil, err
		}
		homework.LessonPlanID = req.LessonPlanID
	}

	if err := s.homeworkRepo.UpdateHomework(ctx, homework); err != nil {
		return nil, err
	}

	resp := mapHomeworkToResponse(homework)
	return &resp, nil
}

// DeleteHomework removes a homework from the caller's center
func (s *HomeworkService) DeleteHomework(ctx context.Context, centerID, homeworkID int64) error {
	if _, err := s.getCenterHomework(ctx, centerID, homeworkID); err != nil {
		return err
	}
	return s.homeworkRepo.DeleteHomework(ctx, homeworkID)
}

// AssignHomework assigns a homework to a student of the same center.
// The record starts in the ASSIGNED state.
func (s *HomeworkService) AssignHomework(ctx context.Context, centerID, homeworkID int64, req *dto.AssignHomeworkRequest) (*dto.HomeworkRecordResponse, error) {
	if _, err := s.getCenterHomework(ctx, centerID, homeworkID); err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}

	record := &models.HomeworkRecord{
		StudentID:  req.StudentID,
		HomeworkID: homeworkID,
		Status:     models.HomeworkAssigned,
	}

	id, err := s.homeworkRecordRepo.CreateHomeworkRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	created, err := s.homeworkRecordRepo.GetHomeworkRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapHomeworkRecordToResponse(created)
	return &resp, nil
}

// GetHomeworkRecords lists all records of a homework
func (s *HomeworkService) GetHomeworkRecords(ctx context.Context, centerID, homeworkID int64) ([]dto.HomeworkRecordResponse, error) {
	if _, err := s.getCenterHomework(ctx, centerID, homeworkID); err != nil {
		return nil, err
	}

	records, err := s.homeworkRecordRepo.ListHomeworkRecordsByHomework(ctx, homeworkID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.HomeworkRecordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, mapHomeworkRecordToResponse(record))
	}

	return resp, nil
}

// UpdateHomeworkRecord updates the status and remarks of a homework record
func (s *HomeworkService) UpdateHomeworkRecord(ctx context.Context, centerID, recordID int64, req *dto.UpdateHomeworkRecordRequest) (*dto.HomeworkRecordResponse, error) {
	status := models.HomeworkStatus(req.Status)
	if !models.ValidHomeworkStatus(status) {
		return nil, apperrors.ErrInvalidHomeworkStatus
	}

	record, err := s.homeworkRecordRepo.GetHomeworkRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.Homework == nil || record.Homework.CenterID != centerID {
		return nil, apperrors.ErrHomeworkRecordNotFound
	}

	record.Status = status
	if req.TeacherRemarks != nil {
		record.TeacherRemarks = req.TeacherRemarks
	}

	if err := s.homeworkRecordRepo.UpdateHomeworkRecord(ctx, record); err != nil {
		return nil, err
	}

	resp := mapHomeworkRecordToResponse(record)
	return &resp, nil
}
