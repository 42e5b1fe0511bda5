package performance

import (
	"time"

	"github.com/ozan/classtrack/internal/app/models"
)

// MissedChapters returns the lesson plans that should have been taught to
// a student of the given grade by today but have no completion record for
// that student. A plan dated exactly today counts as missed.
//
// Missed coverage is evaluated over the center's full lesson plan history:
// callers must pass the unfiltered plan set, not one narrowed to a report
// window, together with the student's own chapter records.
func MissedChapters(grade string, plans []models.LessonPlan, records []models.StudentChapterRecord, today time.Time) []models.LessonPlan {
	covered := make(map[int64]bool, len(records))
	for _, rec := range records {
		covered[rec.LessonPlanID] = true
	}

	missed := make([]models.LessonPlan, 0)
	for _, plan := range plans {
		if plan.Grade == nil || *plan.Grade != grade {
			continue
		}
		if plan.LessonDate.IsZero() || plan.LessonDate.After(today) {
			continue
		}
		if covered[plan.ID] {
			continue
		}
		missed = append(missed, plan)
	}
	return missed
}

// MissedChapterCount is the count form of MissedChapters
func MissedChapterCount(grade string, plans []models.LessonPlan, records []models.StudentChapterRecord, today time.Time) int {
	return len(MissedChapters(grade, plans, records, today))
}
