package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozan/classtrack/internal/app/models"
)

func TestMissedChapters_UncoveredPastPlanCounts(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Subject: "Math", Grade: strPtr("8"), LessonDate: date(t, "2024-01-05")},
	}

	missed := MissedChapters("8", plans, nil, date(t, "2024-01-20"))
	require.Len(t, missed, 1)
	assert.Equal(t, int64(1), missed[0].ID)
	assert.Equal(t, 1, MissedChapterCount("8", plans, nil, date(t, "2024-01-20")))
}

func TestMissedChapters_TodayBoundary(t *testing.T) {
	today := date(t, "2024-01-20")
	plans := []models.LessonPlan{
		{ID: 1, Grade: strPtr("8"), LessonDate: today},                      // exactly today: missed
		{ID: 2, Grade: strPtr("8"), LessonDate: date(t, "2024-01-21")},      // tomorrow: not yet
		{ID: 3, Grade: strPtr("8"), LessonDate: date(t, "2024-01-19")},      // yesterday: missed
	}

	missed := MissedChapters("8", plans, nil, today)
	require.Len(t, missed, 2)
	assert.Equal(t, int64(1), missed[0].ID)
	assert.Equal(t, int64(3), missed[1].ID)
}

func TestMissedChapters_CoveredPlanNotMissed(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Grade: strPtr("8"), LessonDate: date(t, "2024-01-05")},
		{ID: 2, Grade: strPtr("8"), LessonDate: date(t, "2024-01-06")},
	}
	records := []models.StudentChapterRecord{
		{ID: 10, StudentID: 100, LessonPlanID: 1, CompletedAt: date(t, "2024-01-05")},
	}

	missed := MissedChapters("8", plans, records, date(t, "2024-01-20"))
	require.Len(t, missed, 1)
	assert.Equal(t, int64(2), missed[0].ID)
}

func TestMissedChapters_GradeMismatchIgnored(t *testing.T) {
	plans := []models.LessonPlan{
		{ID: 1, Grade: strPtr("7"), LessonDate: date(t, "2024-01-05")},
		{ID: 2, Grade: nil, LessonDate: date(t, "2024-01-05")},
	}

	assert.Empty(t, MissedChapters("8", plans, nil, date(t, "2024-01-20")))
}
