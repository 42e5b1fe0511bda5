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

// LessonPlanService handles the teaching plan of a center
type LessonPlanService struct {
	lessonPlanRepo *repositories.LessonPlanRepository
}

// NewLessonPlanService creates a new LessonPlanService
func NewLessonPlanService(lessonPlanRepo *repositories.LessonPlanRepository) *LessonPlanService {
	return &LessonPlanService{lessonPlanRepo: lessonPlanRepo}
}

func mapLessonPlanToResponse(plan *models.LessonPlan) dto.LessonPlanResponse {
	return dto.LessonPlanResponse{
		ID:         plan.ID,
		Subject:    plan.Subject,
		Chapter:    plan.Chapter,
		Topic:      plan.Topic,
		Grade:      plan.Grade,
		LessonDate: plan.LessonDate.Format(helpers.DateLayout),
	}
}

// CreateLessonPlan adds a lesson plan to the caller's center
func (s *LessonPlanService) CreateLessonPlan(ctx context.Context, centerID int64, req *dto.CreateLessonPlanRequest) (*dto.LessonPlanResponse, error) {
	lessonDate, err := time.Parse(helpers.DateLayout, req.LessonDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("lessonDate must be in YYYY-MM-DD format")
	}

	plan := &models.LessonPlan{
		CenterID:   centerID,
		Subject:    req.Subject,
		Chapter:    req.Chapter,
		Topic:      req.Topic,
		Grade:      req.Grade,
		LessonDate: lessonDate,
	}

	id, err := s.lessonPlanRepo.CreateLessonPlan(ctx, plan)
	if err != nil {
		return nil, err
	}
	plan.ID = id

	resp := mapLessonPlanToResponse(plan)
	return &resp, nil
}

// getCenterLessonPlan loads a lesson plan and checks center scope
func (s *LessonPlanService) getCenterLessonPlan(ctx context.Context, centerID, planID int64) (*models.LessonPlan, error) {
	plan, err := s.lessonPlanRepo.GetLessonPlanByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.CenterID != centerID {
		return nil, apperrors.ErrLessonPlanNotFound
	}
	return plan, nil
}

// GetLessonPlanByID retrieves a lesson plan, scoped to the caller's center
func (s *LessonPlanService) GetLessonPlanByID(ctx context.Context, centerID, planID int64) (*dto.LessonPlanResponse, error) {
	plan, err := s.getCenterLessonPlan(ctx, centerID, planID)
	if err != nil {
		return nil, err
	}

	resp := mapLessonPlanToResponse(plan)
	return &resp, nil
}

// GetAllLessonPlans retrieves a paginated, filtered list of the center's lesson plans
func (s *LessonPlanService) GetAllLessonPlans(ctx context.Context, centerID int64, params repositories.GetAllLessonPlansParams) (*dto.LessonPlanListResponse, error) {
	plans, pagination, err := s.lessonPlanRepo.GetAllLessonPlansByCenter(ctx, centerID, params)
	if err != nil {
		return nil, err
	}

	resp := &dto.LessonPlanListResponse{
		LessonPlans:    make([]dto.LessonPlanResponse, 0, len(plans)),
		PaginationInfo: pagination,
	}
	for _, plan := range plans {
		resp.LessonPlans = append(resp.LessonPlans, mapLessonPlanToResponse(plan))
	}

	return resp, nil
}

// UpdateLessonPlan updates an existing lesson plan
func (s *LessonPlanService) UpdateLessonPlan(ctx context.Context, centerID, planID int64, req *dto.UpdateLessonPlanRequest) (*dto.LessonPlanResponse, error) {
	plan, err := s.getCenterLessonPlan(ctx, centerID, planID)
	if err != nil {
		return nil, err
	}

	if req.Subject != nil {
		plan.Subject = *req.Subject
	}
	if req.Chapter != nil {
		plan.Chapter = *req.Chapter
	}
	if req.Topic != nil {
		plan.Topic = *req.Topic
	}
	if req.Grade != nil {
		plan.Grade = req.Grade
	}
	if req.LessonDate != nil {
		lessonDate, err := time.Parse(helpers.DateLayout, *req.LessonDate)
		if err != nil {
			return nil, apperrors.NewBadRequestError("lessonDate must be in YYYY-MM-DD format")
		}
		plan.LessonDate = lessonDate
	}

	if err := s.lessonPlanRepo.UpdateLessonPlan(ctx, plan); err != nil {
		return nil, err
	}

	resp := mapLessonPlanToResponse(plan)
	return &resp, nil
}

// DeleteLessonPlan removes a lesson plan from the caller's center
func (s *LessonPlanService) DeleteLessonPlan(ctx context.Context, centerID, planID int64) error {
	if _, err := s.getCenterLessonPlan(ctx, centerID, planID); err != nil {
		return err
	}
	return s.lessonPlanRepo.DeleteLessonPlan(ctx, planID)
}
