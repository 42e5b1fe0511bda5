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

// ChapterRecordService handles per-student chapter evaluations
type ChapterRecordService struct {
	chapterRecordRepo *repositories.ChapterRecordRepository
	lessonPlanRepo    *repositories.LessonPlanRepository
	studentRepo       *repositories.StudentRepository
}

// NewChapterRecordService creates a new ChapterRecordService
func NewChapterRecordService(
	chapterRecordRepo *repositories.ChapterRecordRepository,
	lessonPlanRepo *repositories.LessonPlanRepository,
	studentRepo *repositories.StudentRepository,
) *ChapterRecordService {
	return &ChapterRecordService{
		chapterRecordRepo: chapterRecordRepo,
		lessonPlanRepo:    lessonPlanRepo,
		studentRepo:       studentRepo,
	}
}

func mapChapterRecordToResponse(record *models.StudentChapterRecord) dto.ChapterRecordResponse {
	resp := dto.ChapterRecordResponse{
		ID:               record.ID,
		StudentID:        record.StudentID,
		StudentName:      record.StudentName,
		LessonPlanID:     record.LessonPlanID,
		EvaluationRating: record.EvaluationRating,
		TeacherNotes:     record.TeacherNotes,
		RecordedBy:       record.RecordedBy,
		CompletedAt:      record.CompletedAt.Format(helpers.DateLayout),
	}
	if record.LessonPlan != nil {
		plan := mapLessonPlanToResponse(record.LessonPlan)
		resp.LessonPlan = &plan
	}
	return resp
}

func validateRating(rating *int) error {
	if rating != nil && (*rating < 1 || *rating > 5) {
		return apperrors.ErrInvalidEvaluationRange
	}
	return nil
}

// CreateChapterRecord records that a student was taught a lesson plan.
// Both the student and the lesson plan must belong to the caller's center.
func (s *ChapterRecordService) CreateChapterRecord(ctx context.Context, centerID, recordedBy int64, req *dto.CreateChapterRecordRequest) (*dto.ChapterRecordResponse, error) {
	if err := validateRating(req.EvaluationRating); err != nil {
		return nil, err
	}

	completedAt, err := time.Parse(helpers.DateLayout, req.CompletedAt)
	if err != nil {
		return nil, apperrors.NewBadRequestError("completedAt must be in YYYY-MM-DD format")
	}

	student, err := s.studentRepo.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}

	plan, err := s.lessonPlanRepo.GetLessonPlanByID(ctx, req.LessonPlanID)
	if err != nil {
		return nil, err
	}
	if plan.CenterID != centerID {
		return nil, apperrors.ErrLessonPlanNotFound
	}

	record := &models.StudentChapterRecord{
		StudentID:        req.StudentID,
		LessonPlanID:     req.LessonPlanID,
		EvaluationRating: req.EvaluationRating,
		TeacherNotes:     req.TeacherNotes,
		RecordedBy:       &recordedBy,
		CompletedAt:      completedAt,
	}

	id, err := s.chapterRecordRepo.CreateChapterRecord(ctx, record)
	if err != nil {
		return nil, err
	}

	created, err := s.chapterRecordRepo.GetChapterRecordByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapChapterRecordToResponse(created)
	return &resp, nil
}

// getCenterChapterRecord loads a record and checks center scope through its plan
func (s *ChapterRecordService) getCenterChapterRecord(ctx context.Context, centerID, recordID int64) (*models.StudentChapterRecord, error) {
	record, err := s.chapterRecordRepo.GetChapterRecordByID(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if record.LessonPlan == nil || record.LessonPlan.CenterID != centerID {
		return nil, apperrors.ErrChapterRecordNotFound
	}
	return record, nil
}

// GetChapterRecordByID retrieves a chapter record, scoped to the caller's center
func (s *ChapterRecordService) GetChapterRecordByID(ctx context.Context, centerID, recordID int64) (*dto.ChapterRecordResponse, error) {
	record, err := s.getCenterChapterRecord(ctx, centerID, recordID)
	if err != nil {
		return nil, err
	}

	resp := mapChapterRecordToResponse(record)
	return &resp, nil
}

// GetChapterRecordsByStudent lists a student's chapter records
func (s *ChapterRecordService) GetChapterRecordsByStudent(ctx context.Context, centerID, studentID int64) ([]dto.ChapterRecordResponse, error) {
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}

	records, err := s.chapterRecordRepo.ListChapterRecordsByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ChapterRecordResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, mapChapterRecordToResponse(record))
	}

	return resp, nil
}

// UpdateChapterRecord updates an evaluation record
func (s *ChapterRecordService) UpdateChapterRecord(ctx context.Context, centerID, recordID int64, req *dto.UpdateChapterRecordRequest) (*dto.ChapterRecordResponse, error) {
	if err := validateRating(req.EvaluationRating); err != nil {
		return nil, err
	}

	record, err := s.getCenterChapterRecord(ctx, centerID, recordID)
	if err != nil {
		return nil, err
	}

	if req.EvaluationRating != nil {
		record.EvaluationRating = req.EvaluationRating
	}
	if req.TeacherNotes != nil {
		record.TeacherNotes = req.TeacherNotes
	}
	if req.CompletedAt != nil {
		completedAt, err := time.Parse(helpers.DateLayout, *req.CompletedAt)
		if err != nil {
			return nil, apperrors.NewBadRequestError("completedAt must be in YYYY-MM-DD format")
		}
		record.CompletedAt = completedAt
	}

	if err := s.chapterRecordRepo.UpdateChapterRecord(ctx, record); err != nil {
		return nil, err
	}

	resp := mapChapterRecordToResponse(record)
	return &resp, nil
}

// DeleteChapterRecord deletes an evaluation record
func (s *ChapterRecordService) DeleteChapterRecord(ctx context.Context, centerID, recordID int64) error {
	if _, err := s.getCenterChapterRecord(ctx, centerID, recordID); err != nil {
		return err
	}
	return s.chapterRecordRepo.DeleteChapterRecord(ctx, recordID)
}
