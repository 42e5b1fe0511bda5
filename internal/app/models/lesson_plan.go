package models

import "time"

// LessonPlan represents a planned unit of teaching content.
// It is the join anchor of the chapter performance aggregation:
// evaluation records, test results and homework all attach to it.
type LessonPlan struct {
	ID         int64     `db:"id"`
	CenterID   int64     `db:"center_id"`
	Subject    string    `db:"subject"`
	Chapter    string    `db:"chapter"`
	Topic      string    `db:"topic"`
	Grade      *string   `db:"grade"` // nullable; plans without a grade are never counted as missed
	LessonDate time.Time `db:"lesson_date"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}
