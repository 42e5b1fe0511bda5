package models

import "time"

// StudentChapterRecord is a teacher's record that a specific student was
// taught a specific lesson plan, with an optional 1-5 rating.
// Expected cardinality is one row per (student, lesson_plan) pair; the
// store does not enforce it, so readers must tolerate duplicates.
type StudentChapterRecord struct {
	ID               int64     `db:"id"`
	StudentID        int64     `db:"student_id"`
	LessonPlanID     int64     `db:"lesson_plan_id"`
	EvaluationRating *int      `db:"evaluation_rating"` // 1-5, nullable
	TeacherNotes     *string   `db:"teacher_notes"`
	RecordedBy       *int64    `db:"recorded_by"` // teacher user id, nullable
	CompletedAt      time.Time `db:"completed_at"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
	// Joined fields
	StudentName string      `json:"studentName,omitempty"`
	LessonPlan  *LessonPlan `json:"lessonPlan,omitempty"`
}
