package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/classtrack/internal/app/models"
	"github.com/ozan/classtrack/internal/app/models/dto"
	"github.com/ozan/classtrack/internal/pkg/apperrors"
)

type stubStores struct {
	plans    []*models.LessonPlan
	plansErr error

	centerRecords  []*models.StudentChapterRecord
	studentRecords []*models.StudentChapterRecord
	recordsErr     error

	centerResults  []*models.TestResult
	studentResults []*models.TestResult
	resultsErr     error

	centerHomework  []*models.HomeworkRecord
	studentHomework []*models.HomeworkRecord
	homeworkErr     error

	students map[int64]*models.Student
}

func (s *stubStores) ListLessonPlansByCenter(ctx context.Context, centerID int64) ([]*models.LessonPlan, error) {
	return s.plans, s.plansErr
}

func (s *stubStores) ListChapterRecordsByCenter(ctx context.Context, centerID int64) ([]*models.StudentChapterRecord, error) {
	return s.centerRecords, s.recordsErr
}

func (s *stubStores) ListChapterRecordsByStudent(ctx context.Context, studentID int64) ([]*models.StudentChapterRecord, error) {
	return s.studentRecords, s.recordsErr
}

func (s *stubStores) ListTestResultsByCenter(ctx context.Context, centerID int64) ([]*models.TestResult, error) {
	return s.centerResults, s.resultsErr
}

func (s *stubStores) ListTestResultsByStudent(ctx context.Context, studentID int64) ([]*models.TestResult, error) {
	return s.studentResults, s.resultsErr
}

func (s *stubStores) ListHomeworkRecordsByCenter(ctx context.Context, centerID int64) ([]*models.HomeworkRecord, error) {
	return s.centerHomework, s.homeworkErr
}

func (s *stubStores) ListHomeworkRecordsByStudent(ctx context.Context, studentID int64) ([]*models.HomeworkRecord, error) {
	return s.studentHomework, s.homeworkErr
}

func (s *stubStores) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}

func newPerformanceService(stores *stubStores) *PerformanceService {
	return NewPerformanceService(stores, stores, stores, stores, stores)
}

func day(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func gradePtr(g string) *string { return &g }

func algebraPlan(t *testing.T) *models.LessonPlan {
	return &models.LessonPlan{
		ID:         1,
		CenterID:   1,
		Subject:    "Math",
		Chapter:    "Algebra",
		Topic:      "Linear equations",
		Grade:      gradePtr("8"),
		LessonDate: day(t, "2024-01-10"),
	}
}

func TestGetCenterOverviewGroupsByLessonPlan(t *testing.T) {
	plan := algebraPlan(t)
	stores := &stubStores{
		plans: []*models.LessonPlan{plan},
		centerRecords: []*models.StudentChapterRecord{
			{ID: 10, StudentID: 100, LessonPlanID: 1, CompletedAt: day(t, "2024-01-11"), StudentName: "Ali Demir", LessonPlan: plan},
		},
	}

	svc := newPerformanceService(stores)
	overview, err := svc.GetCenterOverview(context.Background(), 1, dto.PerformanceFilterRequest{})
	require.NoError(t, err)

	require.Len(t, overview.Groups, 1)
	assert.Equal(t, 1, overview.TotalGroups)
	group := overview.Groups[0]
	assert.Equal(t, "CHAPTER", group.Kind)
	require.NotNil(t, group.LessonPlan)
	assert.Equal(t, "Algebra", group.LessonPlan.Chapter)
	require.Len(t, group.ChapterRecords, 1)
	assert.Equal(t, "Ali Demir", group.ChapterRecords[0].StudentName)
}

func TestGetCenterOverviewSurfacesUnresolvedTests(t *testing.T) {
	stores := &stubStores{
		centerResults: []*models.TestResult{
			{
				ID: 7, StudentID: 100, TestID: 5, MarksObtained: 18,
				DateTaken:   day(t, "2024-01-12"),
				StudentName: "Ali Demir",
				Test:        &models.Test{ID: 5, CenterID: 1, Name: "Pop quiz", Subject: "Math", TotalMarks: 20},
			},
		},
	}

	svc := newPerformanceService(stores)
	overview, err := svc.GetCenterOverview(context.Background(), 1, dto.PerformanceFilterRequest{})
	require.NoError(t, err)

	require.Len(t, overview.Groups, 1)
	group := overview.Groups[0]
	assert.Equal(t, "TEST_ONLY", group.Kind)
	assert.Equal(t, "test-only-7", group.Key)
	assert.Nil(t, group.LessonPlan)
	require.Len(t, group.TestResults, 1)
}

func TestGetCenterOverviewDegradesOnStoreFailure(t *testing.T) {
	plan := algebraPlan(t)
	stores := &stubStores{
		plans:      []*models.LessonPlan{plan},
		resultsErr: errors.New("connection reset"),
		centerRecords: []*models.StudentChapterRecord{
			{ID: 10, StudentID: 100, LessonPlanID: 1, CompletedAt: day(t, "2024-01-11"), StudentName: "Ali Demir", LessonPlan: plan},
		},
	}

	svc := newPerformanceService(stores)
	overview, err := svc.GetCenterOverview(context.Background(), 1, dto.PerformanceFilterRequest{})
	require.NoError(t, err)

	require.Len(t, overview.Groups, 1)
	assert.Empty(t, overview.Groups[0].TestResults)
	require.Len(t, overview.Groups[0].ChapterRecords, 1)
}

func TestGetStudentReportRejectsForeignStudent(t *testing.T) {
	stores := &stubStores{
		students: map[int64]*models.Student{
			100: {ID: 100, CenterID: 2, FirstName: "Ali", LastName: "Demir", Grade: "8"},
		},
	}

	svc := newPerformanceService(stores)
	_, err := svc.GetStudentReport(context.Background(), 1, 100, dto.PerformanceFilterRequest{})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotInCenter)
}

func TestGetStudentReportDropsUnresolvedTests(t *testing.T) {
	stores := &stubStores{
		students: map[int64]*models.Student{
			100: {ID: 100, CenterID: 1, FirstName: "Ali", LastName: "Demir", Grade: "8"},
		},
		studentResults: []*models.TestResult{
			{
				ID: 7, StudentID: 100, TestID: 5, MarksObtained: 18,
				DateTaken: day(t, "2024-01-12"),
				Test:      &models.Test{ID: 5, CenterID: 1, Name: "Pop quiz", Subject: "Math", TotalMarks: 20},
			},
		},
	}

	svc := newPerformanceService(stores)
	report, err := svc.GetStudentReport(context.Background(), 1, 100, dto.PerformanceFilterRequest{})
	require.NoError(t, err)

	assert.Empty(t, report.Groups)
	assert.Equal(t, "Ali", report.Student.FirstName)
}

func TestGetStudentReportMissedChaptersIgnoreFilters(t *testing.T) {
	mathPlan := algebraPlan(t)
	sciencePlan := &models.LessonPlan{
		ID:         2,
		CenterID:   1,
		Subject:    "Science",
		Chapter:    "Cells",
		Topic:      "Cell structure",
		Grade:      gradePtr("8"),
		LessonDate: day(t, "2024-01-05"),
	}
	stores := &stubStores{
		students: map[int64]*models.Student{
			100: {ID: 100, CenterID: 1, FirstName: "Ali", LastName: "Demir", Grade: "8"},
		},
		plans: []*models.LessonPlan{mathPlan, sciencePlan},
		studentRecords: []*models.StudentChapterRecord{
			{ID: 10, StudentID: 100, LessonPlanID: 1, CompletedAt: day(t, "2024-01-11"), StudentName: "Ali Demir", LessonPlan: mathPlan},
		},
	}

	svc := newPerformanceService(stores)
	report, err := svc.GetStudentReport(context.Background(), 1, 100, dto.PerformanceFilterRequest{Subject: "Math"})
	require.NoError(t, err)

	// The Math filter narrows the groups but never the missed detection:
	// the uncovered Science chapter still counts as missed.
	require.Len(t, report.Groups, 1)
	assert.Equal(t, 1, report.MissedChapterCount)
	require.Len(t, report.MissedChapters, 1)
	assert.Equal(t, "Cells", report.MissedChapters[0].Chapter)
}

func TestGetStudentReportMissedRespectsGrade(t *testing.T) {
	ninthGradePlan := &models.LessonPlan{
		ID:         3,
		CenterID:   1,
		Subject:    "Math",
		Chapter:    "Geometry",
		Topic:      "Triangles",
		Grade:      gradePtr("9"),
		LessonDate: day(t, "2024-01-05"),
	}
	stores := &stubStores{
		students: map[int64]*models.Student{
			100: {ID: 100, CenterID: 1, FirstName: "Ali", LastName: "Demir", Grade: "8"},
		},
		plans: []*models.LessonPlan{ninthGradePlan},
	}

	svc := newPerformanceService(stores)
	report, err := svc.GetStudentReport(context.Background(), 1, 100, dto.PerformanceFilterRequest{})
	require.NoError(t, err)

	assert.Zero(t, report.MissedChapterCount)
	assert.Empty(t, report.MissedChapters)
}
