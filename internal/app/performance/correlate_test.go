package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/classtrack/internal/app/models"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func int64Ptr(i int64) *int64 { return &i }

func mathPlan(t *testing.T) models.LessonPlan {
	return models.LessonPlan{
		ID:         1,
		CenterID:   1,
		Subject:    "Math",
		Chapter:    "Algebra",
		Topic:      "Linear equations",
		Grade:      strPtr("8"),
		LessonDate: date(t, "2024-01-10"),
	}
}

func mathRecord(t *testing.T) models.StudentChapterRecord {
	return models.StudentChapterRecord{
		ID:               10,
		StudentID:        100,
		LessonPlanID:     1,
		EvaluationRating: intPtr(4),
		CompletedAt:      date(t, "2024-01-10"),
		StudentName:      "Ali Demir",
	}
}

func TestCorrelate_SingleRecordSingleGroup(t *testing.T) {
	plans := []models.LessonPlan{mathPlan(t)}
	records := []models.StudentChapterRecord{mathRecord(t)}

	groups := Correlate(ModeCenterWide, plans, records, nil, nil)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, GroupAnchored, g.Kind)
	require.NotNil(t, g.LessonPlan)
	assert.Equal(t, int64(1), g.LessonPlan.ID)
	require.Len(t, g.ChapterRecords, 1)
	assert.Equal(t, 4, *g.ChapterRecords[0].EvaluationRating)
	assert.Empty(t, g.TestResults)
	assert.Empty(t, g.HomeworkRecords)
}

func TestCorrelate_LinkedTestResultJoinsExistingGroup(t *testing.T) {
	plans := []models.LessonPlan{mathPlan(t)}
	records := []models.StudentChapterRecord{mathRecord(t)}
	results := []models.TestResult{{
		ID:            20,
		StudentID:     100,
		TestID:        5,
		MarksObtained: 18,
		DateTaken:     date(t, "2024-01-12"),
		Test: &models.Test{
			ID:           5,
			Subject:      "Math",
			TotalMarks:   20,
			LessonPlanID: int64Ptr(1),
		},
	}}

	groups := Correlate(ModeCenterWide, plans, records, results, nil)

	require.Len(t, groups, 1, "linked result must not create a second group")
	assert.Equal(t, GroupAnchored, groups[0].Kind)
	require.Len(t, groups[0].TestResults, 1)
	assert.Equal(t, 18, groups[0].TestResults[0].MarksObtained)
}

func TestCorrelate_UnlinkedTestResultSynthesizedCenterWide(t *testing.T) {
	results := []models.TestResult{{
		ID:            42,
		StudentID:     100,
		TestID:        6,
		MarksObtained: 9,
		DateTaken:     date(t, "2024-01-15"),
		Test: &models.Test{
			ID:         6,
			Subject:    "Science",
			TotalMarks: 10,
			// no lesson plan link
		},
	}}

	groups := Correlate(ModeCenterWide, nil, nil, results, nil)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, GroupSyntheticTest, g.Kind)
	assert.Equal(t, "test-only-42", g.Key)
	assert.Nil(t, g.LessonPlan)
	assert.Empty(t, g.ChapterRecords)
	require.Len(t, g.TestResults, 1)
}

func TestCorrelate_UnlinkedTestResultDroppedForParent(t *testing.T) {
	results := []models.TestResult{{
		ID:        42,
		StudentID: 100,
		DateTaken: date(t, "2024-01-15"),
		Test:      &models.Test{ID: 6, Subject: "Science"},
	}}

	groups := Correlate(ModeSingleStudent, nil, nil, results, nil)
	assert.Empty(t, groups, "parents only see results tied to identifiable coverage")
}

func TestCorrelate_ResolvedTestResultWithoutRecordCreatesAnchoredGroup(t *testing.T) {
	plans := []models.LessonPlan{mathPlan(t)}
	results := []models.TestResult{{
		ID:        21,
		StudentID: 101,
		DateTaken: date(t, "2024-01-12"),
		Test:      &models.Test{ID: 7, Subject: "Math", LessonPlanID: int64Ptr(1)},
	}}

	groups := Correlate(ModeCenterWide, plans, nil, results, nil)

	require.Len(t, groups, 1)
	assert.Equal(t, GroupAnchored, groups[0].Kind)
	assert.Empty(t, groups[0].ChapterRecords)
	require.Len(t, groups[0].TestResults, 1)
}

func TestCorrelate_UnresolvedChapterRecordDropped(t *testing.T) {
	rec := mathRecord(t)
	rec.LessonPlanID = 999 // not in the known set

	groups := Correlate(ModeCenterWide, []models.LessonPlan{mathPlan(t)}, []models.StudentChapterRecord{rec}, nil, nil)
	assert.Empty(t, groups)
}

func TestCorrelate_DuplicateStudentLessonPairCollapsed(t *testing.T) {
	first := mathRecord(t)
	second := mathRecord(t)
	second.ID = 11
	second.EvaluationRating = intPtr(2)

	groups := Correlate(ModeCenterWide, []models.LessonPlan{mathPlan(t)}, []models.StudentChapterRecord{first, second}, nil, nil)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].ChapterRecords, 1)
	assert.Equal(t, int64(10), groups[0].ChapterRecords[0].ID, "first occurrence wins")
}

func TestCorrelate_HomeworkSubjectFallback(t *testing.T) {
	// The homework is unrelated to the plan by id, yet attaches by the
	// subject heuristic. This behavior is intentional for un-linked
	// homework and must not be silently reconciled.
	hw := []models.HomeworkRecord{{
		ID:        30,
		StudentID: 100,
		Status:    models.HomeworkCompleted,
		Homework: &models.Homework{
			ID:      70,
			Subject: "Math",
			DueDate: date(t, "2024-01-11"),
		},
	}}

	groups := Correlate(ModeCenterWide, []models.LessonPlan{mathPlan(t)}, []models.StudentChapterRecord{mathRecord(t)}, nil, hw)

	require.Len(t, groups, 1)
	require.Len(t, groups[0].HomeworkRecords, 1)
	assert.Equal(t, int64(30), groups[0].HomeworkRecords[0].ID)
}

func TestCorrelate_HomeworkDirectLinkBeatsSubjectFallback(t *testing.T) {
	planA := mathPlan(t)
	planB := mathPlan(t)
	planB.ID = 2
	planB.Chapter = "Geometry"
	planB.LessonDate = date(t, "2024-01-20")

	recA := mathRecord(t)
	recB := mathRecord(t)
	recB.ID = 12
	recB.LessonPlanID = 2

	// Linked to plan B although plan A shares the subject and comes first.
	hw := []models.HomeworkRecord{{
		ID:        31,
		StudentID: 100,
		Status:    models.HomeworkAssigned,
		Homework: &models.Homework{
			ID:           71,
			Subject:      "Math",
			DueDate:      date(t, "2024-01-21"),
			LessonPlanID: int64Ptr(2),
		},
	}}

	groups := Correlate(ModeCenterWide, []models.LessonPlan{planA, planB}, []models.StudentChapterRecord{recA, recB}, nil, hw)

	require.Len(t, groups, 2)
	for _, g := range groups {
		if g.LessonPlan.ID == 2 {
			assert.Len(t, g.HomeworkRecords, 1)
		} else {
			assert.Empty(t, g.HomeworkRecords)
		}
	}
}

func TestCorrelate_HomeworkWithoutMatchingGroupDropped(t *testing.T) {
	hw := []models.HomeworkRecord{{
		ID:        32,
		StudentID: 100,
		Status:    models.HomeworkAssigned,
		Homework:  &models.Homework{ID: 72, Subject: "History", DueDate: date(t, "2024-01-11")},
	}}

	groups := Correlate(ModeCenterWide, []models.LessonPlan{mathPlan(t)}, []models.StudentChapterRecord{mathRecord(t)}, nil, hw)

	require.Len(t, groups, 1)
	assert.Empty(t, groups[0].HomeworkRecords)
}

func TestCorrelate_GracefulDegradationWithEmptyCollections(t *testing.T) {
	groups := Correlate(ModeCenterWide, []models.LessonPlan{mathPlan(t)}, []models.StudentChapterRecord{mathRecord(t)}, []models.TestResult{}, []models.HomeworkRecord{})

	require.Len(t, groups, 1)
	assert.NotNil(t, groups[0].TestResults)
	assert.NotNil(t, groups[0].HomeworkRecords)
	assert.Empty(t, groups[0].TestResults)
	assert.Empty(t, groups[0].HomeworkRecords)

	assert.Empty(t, Correlate(ModeCenterWide, nil, nil, nil, nil))
}

func TestCorrelate_Idempotence(t *testing.T) {
	plans := []models.LessonPlan{mathPlan(t)}
	records := []models.StudentChapterRecord{mathRecord(t)}
	results := []models.TestResult{{
		ID:        42,
		StudentID: 100,
		DateTaken: date(t, "2024-01-15"),
		Test:      &models.Test{ID: 6, Subject: "Science"},
	}}

	first := Correlate(ModeCenterWide, plans, records, results, nil)
	second := Correlate(ModeCenterWide, plans, records, results, nil)
	assert.Equal(t, first, second)
}

func TestCorrelate_OrderedByDateDescending(t *testing.T) {
	older := mathPlan(t)
	newer := mathPlan(t)
	newer.ID = 2
	newer.LessonDate = date(t, "2024-02-01")

	recOld := mathRecord(t)
	recNew := mathRecord(t)
	recNew.ID = 11
	recNew.LessonPlanID = 2

	groups := Correlate(ModeCenterWide, []models.LessonPlan{older, newer}, []models.StudentChapterRecord{recOld, recNew}, nil, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, int64(2), groups[0].LessonPlan.ID)
	assert.Equal(t, int64(1), groups[1].LessonPlan.ID)
}

func TestCorrelate_DateTiesBrokenByStudentName(t *testing.T) {
	planA := mathPlan(t)
	planB := mathPlan(t)
	planB.ID = 2
	planB.Chapter = "Geometry"

	recB := models.StudentChapterRecord{
		ID: 13, StudentID: 101, LessonPlanID: 2,
		CompletedAt: date(t, "2024-01-10"), StudentName: "Ayşe Kaya",
	}
	recA := models.StudentChapterRecord{
		ID: 14, StudentID: 102, LessonPlanID: 1,
		CompletedAt: date(t, "2024-01-10"), StudentName: "Zeynep Acar",
	}

	groups := Correlate(ModeCenterWide, []models.LessonPlan{planA, planB}, []models.StudentChapterRecord{recA, recB}, nil, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, "Ayşe Kaya", groups[0].studentNameKey())
	assert.Equal(t, "Zeynep Acar", groups[1].studentNameKey())
}

func TestCorrelate_CompletenessEveryResolvableRecordGrouped(t *testing.T) {
	planA := mathPlan(t)
	planB := mathPlan(t)
	planB.ID = 2

	records := []models.StudentChapterRecord{
		{ID: 1, StudentID: 100, LessonPlanID: 1, CompletedAt: date(t, "2024-01-10")},
		{ID: 2, StudentID: 101, LessonPlanID: 1, CompletedAt: date(t, "2024-01-10")},
		{ID: 3, StudentID: 100, LessonPlanID: 2, CompletedAt: date(t, "2024-01-11")},
		{ID: 4, StudentID: 100, LessonPlanID: 999, CompletedAt: date(t, "2024-01-11")}, // unresolvable
	}

	groups := Correlate(ModeCenterWide, []models.LessonPlan{planA, planB}, records, nil, nil)

	grouped := 0
	for _, g := range groups {
		grouped += len(g.ChapterRecords)
	}
	assert.Equal(t, 3, grouped)
}
