package models

import "time"

// Test represents a graded test given at a center.
// LessonPlanID is optional: a test may or may not be tied to a specific
// lesson plan. Untied tests surface as test-only rows in the center
// overview and are hidden from parent reports.
type Test struct {
	ID           int64     `db:"id"`
	CenterID     int64     `db:"center_id"`
	Name         string    `db:"name"`
	Subject      string    `db:"subject"`
	TotalMarks   int       `db:"total_marks"`
	LessonPlanID *int64    `db:"lesson_plan_id"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// TestResult represents a single student's marks on a test
type TestResult struct {
	ID            int64     `db:"id"`
	StudentID     int64     `db:"student_id"`
	TestID        int64     `db:"test_id"`
	MarksObtained int       `db:"marks_obtained"`
	DateTaken     time.Time `db:"date_taken"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
	// Joined fields
	StudentName string `json:"studentName,omitempty"`
	Test        *Test  `json:"test,omitempty"`
}
