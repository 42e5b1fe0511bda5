package services

import (
	"context"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/app/performance"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
	"github.com/ozan/classtrack/internal/pkg/helpers"
	"github.com/ozan/classtrack/internal/pkg/logger"
)

// Narrow store interfaces keep the aggregation testable without a database.
// The pgx repositories satisfy them.

type performanceLessonPlanStore interface {
	ListLessonPlansByCenter(ctx context.Context, centerID int64) ([]*models.LessonPlan, error)
}

type performanceChapterRecordStore interface {
	ListChapterRecordsByCenter(ctx context.Context, centerID int64) ([]*models.StudentChapterRecord, error)
	ListChapterRecordsByStudent(ctx context.Context, studentID int64) ([]*models.StudentChapterRecord, error)
}

type performanceTestResultStore interface {
	ListTestResultsByCenter(ctx context.Context, centerID int64) ([]*models.TestResult, error)
	ListTestResultsByStudent(ctx context.Context, studentID int64) ([]*models.TestResult, error)
}

type performanceHomeworkRecordStore interface {
	ListHomeworkRecordsByCenter(ctx context.Context, centerID int64) ([]*models.HomeworkRecord, error)
	ListHomeworkRecordsByStudent(ctx context.Context, studentID int64) ([]*models.HomeworkRecord, error)
}

type performanceStudentStore interface {
	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
}

// PerformanceService builds chapter performance dashboards and reports
type PerformanceService struct {
	lessonPlanStore     performanceLessonPlanStore
	chapterRecordStore  performanceChapterRecordStore
	testResultStore     performanceTestResultStore
	homeworkRecordStore performanceHomeworkRecordStore
	studentStore        performanceStudentStore
}

// NewPerformanceService creates a new PerformanceService
func NewPerformanceService(
	lessonPlanStore performanceLessonPlanStore,
	chapterRecordStore performanceChapterRecordStore,
	testResultStore performanceTestResultStore,
	homeworkRecordStore performanceHomeworkRecordStore,
	studentStore performanceStudentStore,
) *PerformanceService {
	return &PerformanceService{
		lessonPlanStore:     lessonPlanStore,
		chapterRecordStore:  chapterRecordStore,
		testResultStore:     testResultStore,
		homeworkRecordStore: homeworkRecordStore,
		studentStore:        studentStore,
	}
}

func derefAll[T any](in []*T) []T {
	out := make([]T, 0, len(in))
	for _, item := range in {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

func mapGroupToResponse(group performance.Group) dto.ChapterPerformanceGroupResponse {
	resp := dto.ChapterPerformanceGroupResponse{
		Key:             group.Key,
		ChapterRecords:  make([]dto.ChapterRecordResponse, 0, len(group.ChapterRecords)),
		TestResults:     make([]dto.TestResultResponse, 0, len(group.TestResults)),
		HomeworkRecords: make([]dto.HomeworkRecordResponse, 0, len(group.HomeworkRecords)),
	}

	switch group.Kind {
	case performance.GroupSyntheticTest:
		resp.Kind = "TEST_ONLY"
	default:
		resp.Kind = "CHAPTER"
	}

	if group.LessonPlan != nil {
		plan := mapLessonPlanToResponse(group.LessonPlan)
		resp.LessonPlan = &plan
	}

	for i := range group.ChapterRecords {
		resp.ChapterRecords = append(resp.ChapterRecords, mapChapterRecordToResponse(&group.ChapterRecords[i]))
	}
	for i := range group.TestResults {
		resp.TestResults = append(resp.TestResults, mapTestResultToResponse(&group.TestResults[i]))
	}
	for i := range group.HomeworkRecords {
		resp.HomeworkRecords = append(resp.HomeworkRecords, mapHomeworkRecordToResponse(&group.HomeworkRecords[i]))
	}

	return resp
}

func toFilterParams(centerID int64, req dto.PerformanceFilterRequest) performance.FilterParams {
	return performance.FilterParams{
		CenterID:  centerID,
		Subject:   req.Subject,
		Grade:     req.Grade,
		StudentID: req.StudentID,
		From:      req.From,
		To:        req.To,
	}
}

// fetchCenterCollections loads the four raw collections of a center.
// A failed collection degrades to an empty slice so one broken source
// does not take the whole dashboard down.
func (s *PerformanceService) fetchCenterCollections(ctx context.Context, centerID int64) ([]models.LessonPlan, []models.StudentChapterRecord, []models.TestResult, []models.HomeworkRecord) {
	plans, err := s.lessonPlanStore.ListLessonPlansByCenter(ctx, centerID)
	if err != nil {
		logger.Warn().Err(err).Int64("centerID", centerID).Msg("Lesson plans unavailable, degrading to empty set")
		plans = nil
	}

	records, err := s.chapterRecordStore.ListChapterRecordsByCenter(ctx, centerID)
	if err != nil {
		logger.Warn().Err(err).Int64("centerID", centerID).Msg("Chapter records unavailable, degrading to empty set")
		records = nil
	}

	results, err := s.testResultStore.ListTestResultsByCenter(ctx, centerID)
	if err != nil {
		logger.Warn().Err(err).Int64("centerID", centerID).Msg("Test results unavailable, degrading to empty set")
		results = nil
	}

	homework, err := s.homeworkRecordStore.ListHomeworkRecordsByCenter(ctx, centerID)
	if err != nil {
		logger.Warn().Err(err).Int64("centerID", centerID).Msg("Homework records unavailable, degrading to empty set")
		homework = nil
	}

	return derefAll(plans), derefAll(records), derefAll(results), derefAll(homework)
}

// GetCenterOverview builds the center-wide performance dashboard.
// Test results that cannot be tied to a lesson plan appear as test-only
// groups so staff can spot data entry gaps.
func (s *PerformanceService) GetCenterOverview(ctx context.Context, centerID int64, req dto.PerformanceFilterRequest) (*dto.PerformanceOverviewResponse, error) {
	plans, records, results, homework := s.fetchCenterCollections(ctx, centerID)

	params := toFilterParams(centerID, req)
	groups := performance.Correlate(
		performance.ModeCenterWide,
		performance.FilterLessonPlans(params, plans),
		performance.FilterChapterRecords(params, records),
		performance.FilterTestResults(params, results),
		performance.FilterHomeworkRecords(params, homework),
	)

	resp := &dto.PerformanceOverviewResponse{
		Groups:      make([]dto.ChapterPerformanceGroupResponse, 0, len(groups)),
		TotalGroups: len(groups),
	}
	for _, group := range groups {
		resp.Groups = append(resp.Groups, mapGroupToResponse(group))
	}

	return resp, nil
}

// GetStudentReport builds the parent-facing report for one student.
// Unresolved test results are dropped, and missed chapters are detected
// against the center's complete plan set regardless of active filters.
func (s *PerformanceService) GetStudentReport(ctx context.Context, centerID, studentID int64, req dto.PerformanceFilterRequest) (*dto.StudentReportResponse, error) {
	student, err := s.studentStore.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}

	allPlans, err := s.lessonPlanStore.ListLessonPlansByCenter(ctx, centerID)
	if err != nil {
		logger.Warn().Err(err).Int64("centerID", centerID).Msg("Lesson plans unavailable, degrading to empty set")
		allPlans = nil
	}

	allRecords, err := s.chapterRecordStore.ListChapterRecordsByStudent(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Chapter records unavailable, degrading to empty set")
		allRecords = nil
	}

	results, err := s.testResultStore.ListTestResultsByStudent(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Test results unavailable, degrading to empty set")
		results = nil
	}

	homework, err := s.homeworkRecordStore.ListHomeworkRecordsByStudent(ctx, studentID)
	if err != nil {
		logger.Warn().Err(err).Int64("studentID", studentID).Msg("Homework records unavailable, degrading to empty set")
		homework = nil
	}

	plans := derefAll(allPlans)
	records := derefAll(allRecords)

	req.StudentID = studentID
	params := toFilterParams(centerID, req)
	groups := performance.Correlate(
		performance.ModeSingleStudent,
		performance.FilterLessonPlans(params, plans),
		performance.FilterChapterRecords(params, records),
		performance.FilterTestResults(params, derefAll(results)),
		performance.FilterHomeworkRecords(params, derefAll(homework)),
	)

	// Missed detection always runs on the unfiltered plan and record sets;
	// a subject filter must not make chapters look missed.
	missed := performance.MissedChapters(student.Grade, plans, records, helpers.Today())

	resp := &dto.StudentReportResponse{
		Student:            mapStudentToResponse(student),
		Groups:             make([]dto.ChapterPerformanceGroupResponse, 0, len(groups)),
		MissedChapterCount: len(missed),
		MissedChapters:     make([]dto.LessonPlanResponse, 0, len(missed)),
	}
	for _, group := range groups {
		resp.Groups = append(resp.Groups, mapGroupToResponse(group))
	}
	for i := range missed {
		resp.MissedChapters = append(resp.MissedChapters, mapLessonPlanToResponse(&missed[i]))
	}

	return resp, nil
}
