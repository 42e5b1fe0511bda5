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

// TestService handles tests and test results
type TestService struct {
	testRepo       *repositories.TestRepository
	testResultRepo *repositories.TestResultRepository
	lessonPlanRepo *repositories.LessonPlanRepository
	studentRepo    *repositories.StudentRepository
}

// NewTestService creates a new TestService
func NewTestService(
	testRepo *repositories.TestRepository,
	testResultRepo *repositories.TestResultRepository,
	lessonPlanRepo *repositories.LessonPlanRepository,
	studentRepo *repositories.StudentRepository,
) *TestService {
	return &TestService{
		testRepo:       testRepo,
		testResultRepo: testResultRepo,
		lessonPlanRepo: lessonPlanRepo,
		studentRepo:    studentRepo,
	}
}

func mapTestToResponse(test *models.Test) dto.TestResponse {
	return dto.TestResponse{
		ID:           test.ID,
		Name:         test.Name,
		Subject:      test.Subject,
		TotalMarks:   test.TotalMarks,
		LessonPlanID: test.LessonPlanID,
	}
}

func mapTestResultToResponse(result *models.TestResult) dto.TestResultResponse {
	resp := dto.TestResultResponse{
		ID:            result.ID,
		StudentID:     result.StudentID,
		StudentName:   result.StudentName,
		TestID:        result.TestID,
		MarksObtained: result.MarksObtained,
		DateTaken:     result.DateTaken.Format(helpers.DateLayout),
	}
	if result.Test != nil {
		test := mapTestToResponse(result.Test)
		resp.Test = &test
	}
	return resp
}

// validateTestLessonPlan checks that an optional lesson plan link points to a
// plan of the caller's center.
func (s *TestService) validateTestLessonPlan(ctx context.Context, centerID int64, lessonPlanID *int64) error {
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

// CreateTest creates a test at the caller's center
func (s *TestService) CreateTest(ctx context.Context, centerID int64, req *dto.CreateTestRequest) (*dto.TestResponse, error) {
	if err := s.validateTestLessonPlan(ctx, centerID, req.LessonPlanID); err != nil {
		return nil, err
	}

	test := &models.Test{
		CenterID:     centerID,
		Name:         req.Name,
		Subject:      req.Subject,
		TotalMarks:   req.TotalMarks,
		LessonPlanID: req.LessonPlanID,
	}

	id, err := s.testRepo.CreateTest(ctx, test)
	if err != nil {
		return nil, err
	}
	test.ID = id

	resp := mapTestToResponse(test)
	return &resp, nil
}

// getCenterTest loads a test and checks center scope
func (s *TestService) getCenterTest(ctx context.Context, centerID, testID int64) (*models.Test, error) {
	test, err := s.testRepo.GetTestByID(ctx, testID)
	if err != nil {
		return nil, err
	}
	if test.CenterID != centerID {
		return nil, apperrors.ErrTestNotFound
	}
	return test, nil
}

// GetTestByID retrieves a test, scoped to the caller's center
func (s *TestService) GetTestByID(ctx context.Context, centerID, testID int64) (*dto.TestResponse, error) {
	test, err := s.getCenterTest(ctx, centerID, testID)
	if err != nil {
		return nil, err
	}

	resp := mapTestToResponse(test)
	return &resp, nil
}

// GetAllTests retrieves a paginated list of the center's tests
func (s *TestService) GetAllTests(ctx context.Context, centerID int64, page, size int) (*dto.TestListResponse, error) {
	tests, pagination, err := s.testRepo.GetAllTestsByCenter(ctx, centerID, page, size)
	if err != nil {
		return nil, err
	}

	resp := &dto.TestListResponse{
		Tests:          make([]dto.TestResponse, 0, len(tests)),
		PaginationInfo: pagination,
	}
	for _, test := range tests {
		resp.Tests = append(resp.Tests, mapTestToResponse(test))
	}

	return resp, nil
}

// UpdateTest updates an existing test
func (s *TestService) UpdateTest(ctx context.Context, centerID, testID int64, req *dto.UpdateTestRequest) (*dto.TestResponse, error) {
	test, err := s.getCenterTest(ctx, centerID, testID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		test.Name = *req.Name
	}
	if req.Subject != nil {
		test.Subject = *req.Subject
	}
	if req.TotalMarks != nil {
		test.TotalMarks = *req.TotalMarks
	}
	if req.LessonPlanID != nil {
		if err := s.validateTestLessonPlan(ctx, centerID, req.LessonPlanID); err != nil {
			return nil, err
		}
		test.LessonPlanID = req.LessonPlanID
	}

	if err := s.testRepo.UpdateTest(ctx, test); err != nil {
		return nil, err
	}

	resp := mapTestToResponse(test)
	return &resp, nil
}

// DeleteTest removes a test from the caller's center
func (s *TestService) DeleteTest(ctx context.Context, centerID, testID int64) error {
	if _, err := s.getCenterTest(ctx, centerID, testID); err != nil {
		return err
	}
	return s.testRepo.DeleteTest(ctx, testID)
}

// CreateTestResult records a student's marks on a test
func (s *TestService) CreateTestResult(ctx context.Context, centerID, testID int64, req *dto.CreateTestResultRequest) (*dto.TestResultResponse, error) {
	test, err := s.getCenterTest(ctx, centerID, testID)
	if err != nil {
		return nil, err
	}

	if req.MarksObtained < 0 || req.MarksObtained > test.TotalMarks {
		return nil, apperrors.ErrMarksExceedTotal
	}

	student, err := s.studentRepo.GetStudentByID(ctx, req.StudentID)
	if err != nil {
		return nil, err
	}
	if student.CenterID != centerID {
		return nil, apperrors.ErrStudentNotInCenter
	}

	dateTaken, err := time.Parse(helpers.DateLayout, req.DateTaken)
	if err != nil {
		return nil, apperrors.NewBadRequestError("dateTaken must be in YYYY-MM-DD format")
	}

	result := &models.TestResult{
		StudentID:     req.StudentID,
		TestID:        testID,
		MarksObtained: req.MarksObtained,
		DateTaken:     dateTaken,
	}

	id, err := s.testResultRepo.CreateTestResult(ctx, result)
	if err != nil {
		return nil, err
	}

	created, err := s.testResultRepo.GetTestResultByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := mapTestResultToResponse(created)
	return &resp, nil
}

// GetTestResultsByTest lists all results recorded for a test
func (s *TestService) GetTestResultsByTest(ctx context.Context, centerID, testID int64) ([]dto.TestResultResponse, error) {
	if _, err := s.getCenterTest(ctx, centerID, testID); err != nil {
		return nil, err
	}

	results, err := s.testResultRepo.ListTestResultsByTest(ctx, testID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TestResultResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, mapTestResultToResponse(result))
	}

	return resp, nil
}

// DeleteTestResult removes a test result
func (s *TestService) DeleteTestResult(ctx context.Context, centerID, resultID int64) error {
	result, err := s.testResultRepo.GetTestResultByID(ctx, resultID)
	if err != nil {
		return err
	}
	if result.Test == nil || result.Test.CenterID != centerID {
		return apperrors.ErrTestResultNotFound
	}
	return s.testResultRepo.DeleteTestResult(ctx, resultID)
}
