package models

import "time"

// Homework represents an assignment given at a center.
// LessonPlanID exists in the schema but is not reliably filled in;
// the aggregation falls back to subject matching when it is absent.
type Homework struct {
	ID           int64     `db:"id"`
	CenterID     int64     `db:"center_id"`
	Title        string    `db:"title"`
	Subject      string    `db:"subject"`
	DueDate      time.Time `db:"due_date"`
	LessonPlanID *int64    `db:"lesson_plan_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// HomeworkRecord tracks one student's progress on a homework
type HomeworkRecord struct {
	ID             int64          `db:"id"`
	StudentID      int64          `db:"student_id"`
	HomeworkID     int64          `db:"homework_id"`
	Status         HomeworkStatus `db:"status"`
	TeacherRemarks *string        `db:"teacher_remarks"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	// Joined fields
	StudentName string    `json:"studentName,omitempty"`
	Homework    *Homework `json:"homework,omitempty"`
}
