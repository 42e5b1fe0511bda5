package performance

import "github.com/ozan/classtrack/internal/app/models"

// The filter layer narrows each already-fetched collection independently.
// Every function is pure: it never fails, and an empty result is valid
// input for Correlate. Each collection is filtered on the date field that
// matches its lifecycle: lesson plans on lesson_date, chapter records on
// completed_at, test results on date_taken, homework on the homework's
// due date.

// FilterLessonPlans narrows lesson plans by subject, grade and date window
func FilterLessonPlans(params FilterParams, plans []models.LessonPlan) []models.LessonPlan {
	out := make([]models.LessonPlan, 0, len(plans))
	for _, p := range plans {
		if params.Subject != "" && p.Subject != params.Subject {
			continue
		}
		if params.Grade != "" && (p.Grade == nil || *p.Grade != params.Grade) {
			continue
		}
		if params.HasDateRange() && !params.inRange(p.LessonDate) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterChapterRecords narrows evaluation records by student, subject,
// grade and date window. Subject and grade come from the embedded lesson
// plan reference; records without one cannot satisfy those selectors.
func FilterChapterRecords(params FilterParams, records []models.StudentChapterRecord) []models.StudentChapterRecord {
	out := make([]models.StudentChapterRecord, 0, len(records))
	for _, r := range records {
		if params.StudentID != 0 && r.StudentID != params.StudentID {
			continue
		}
		if params.Subject != "" && (r.LessonPlan == nil || r.LessonPlan.Subject != params.Subject) {
			continue
		}
		if params.Grade != "" && (r.LessonPlan == nil || r.LessonPlan.Grade == nil || *r.LessonPlan.Grade != params.Grade) {
			continue
		}
		if params.HasDateRange() && !params.inRange(r.CompletedAt) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterTestResults narrows test results by student, subject and date window
func FilterTestResults(params FilterParams, results []models.TestResult) []models.TestResult {
	out := make([]models.TestResult, 0, len(results))
	for _, r := range results {
		if params.StudentID != 0 && r.StudentID != params.StudentID {
			continue
		}
		if params.Subject != "" && (r.Test == nil || r.Test.Subject != params.Subject) {
			continue
		}
		if params.HasDateRange() && !params.inRange(r.DateTaken) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterHomeworkRecords narrows homework records by student, subject and
// the homework's due date
func FilterHomeworkRecords(params FilterParams, records []models.HomeworkRecord) []models.HomeworkRecord {
	out := make([]models.HomeworkRecord, 0, len(records))
	for _, r := range records {
		if params.StudentID != 0 && r.StudentID != params.StudentID {
			continue
		}
		if params.Subject != "" && (r.Homework == nil || r.Homework.Subject != params.Subject) {
			continue
		}
		if params.HasDateRange() {
			if r.Homework == nil || !params.inRange(r.Homework.DueDate) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
