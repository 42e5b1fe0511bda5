package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/classtrack/internal/app/models"
)

func TestFilterLessonPlans_BySubjectGradeAndWindow(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Subject: "Math", Grade: strPtr("8"), LessonDate: date(t, "2024-01-10")},
		{ID: 2, Subject: "Science", Grade: strPtr("8"), LessonDate: date(t, "2024-01-12")},
		{ID: 3, Subject: "Math", Grade: strPtr("7"), LessonDate: date(t, "2024-01-14")},
		{ID: 4, Subject: "Math", Grade: nil, LessonDate: date(t, "2024-01-16")},
		{ID: 5, Subject: "Math", Grade: strPtr("8"), LessonDate: date(t, "2024-03-01")},
	}

	out := FilterLessonPlans(FilterParams{
		Subject: "Math",
		Grade:   "8",
		From:    date(t, "2024-01-01"),
		To:      date(t, "2024-01-31"),
	}, plans)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterLessonPlans_NoRangeMeansNoTemporalFilter(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Subject: "Math", LessonDate: date(t, "2020-01-01")},
		{ID: 2, Subject: "Math"}, // zero lesson date
	}

	out := FilterLessonPlans(FilterParams{Subject: "Math"}, plans)
	assert.Len(t, out, 2)
}

func TestFilterLessonPlans_ZeroDateExcludedFromRangedQuery(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Subject: "Math"}, // unfilterable date
	}

	out := FilterLessonPlans(FilterParams{From: date(t, "2020-01-01")}, plans)
	assert.Empty(t, out)
}

func TestFilterChapterRecords_ByStudentAndCompletedAt(t *testing.T) {
	plan := mathPlan(t)
	records := []models.StudentChapterRecord{
		{ID: 1, StudentID: 100, LessonPlanID: 1, CompletedAt: date(t, "2024-01-10"), LessonPlan: &plan},
		{ID: 2, StudentID: 101, LessonPlanID: 1, CompletedAt: date(t, "2024-01-10"), LessonPlan: &plan},
		{ID: 3, StudentID: 100, LessonPlanID: 1, CompletedAt: date(t, "2024-05-10"), LessonPlan: &plan},
	}

	out := FilterChapterRecords(FilterParams{
		StudentID: 100,
		From:      date(t, "2024-01-01"),
		To:        date(t, "2024-01-31"),
	}, records)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterChapterRecords_SubjectNeedsEmbeddedPlan(t *testing.T) {
	plan := mathPlan(t)
	records := []models.StudentChapterRecord{
		{ID: 1, StudentID: 100, LessonPlanID: 1, LessonPlan: &plan},
		{ID: 2, StudentID: 100, LessonPlanID: 2}, // no embedded plan
	}

	out := FilterChapterRecords(FilterParams{Subject: "Math"}, records)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterTestResults_ByDateTaken(t *testing.T) {
	results := []models.TestResult{
		{ID: 1, StudentID: 100, DateTaken: date(t, "2024-01-10"), Test: &models.Test{Subject: "Math"}},
		{ID: 2, StudentID: 100, DateTaken: date(t, "2024-02-10"), Test: &models.Test{Subject: "Math"}},
		{ID: 3, StudentID: 100, DateTaken: date(t, "2024-01-15"), Test: &models.Test{Subject: "Science"}},
	}

	out := FilterTestResults(FilterParams{
		Subject: "Math",
		From:    date(t, "2024-01-01"),
		To:      date(t, "2024-01-31"),
	}, results)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterHomeworkRecords_ByDueDate(t *testing.T) {
	records := []models.HomeworkRecord{
		{ID: 1, StudentID: 100, Homework: &models.Homework{Subject: "Math", DueDate: date(t, "2024-01-10")}},
		{ID: 2, StudentID: 100, Homework: &models.Homework{Subject: "Math", DueDate: date(t, "2024-03-10")}},
		{ID: 3, StudentID: 100}, // no embedded homework: unfilterable by date
	}

	out := FilterHomeworkRecords(FilterParams{
		From: date(t, "2024-01-01"),
		To:   date(t, "2024-01-31"),
	}, records)

	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)
}

func TestFilterParams_InclusiveBounds(t *testing.T) {
	day := date(t, "2024-01-10")
	params := FilterParams{From: day, To: day}

	assert.True(t, params.inRange(day))
	assert.False(t, params.inRange(day.Add(-time.Hour)))
	assert.False(t, params.inRange(day.Add(25*time.Hour)))
}

func TestFilters_EmptyInputYieldsEmptyOutput(t *testing.T) {
	params := FilterParams{Subject: "Math"}
	assert.Empty(t, FilterLessonPlans(params, nil))
	assert.Empty(t, FilterChapterRecords(params, nil))
	assert.Empty(t, FilterTestResults(params, nil))
	assert.Empty(t, FilterHomeworkRecords(params, nil))
}
