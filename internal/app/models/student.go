package models

import "time"

// Student represents a student enrolled at a center.
// Students are not application users; parents access their reports
// through the parent_students link.
type Student struct {
	ID        int64     `db:"id"`
	CenterID  int64     `db:"center_id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Grade     string    `db:"grade"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FullName returns the student's display name
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}

// ParentStudent links a parent user to a student (a parent may have several children)
type ParentStudent struct {
	ID           int64     `db:"id"`
	ParentUserID int64     `db:"parent_user_id"`
	StudentID    int64     `db:"student_id"`
	CreatedAt    time.Time `db:"created_at"`
}
