package models

import "time"

// User represents an application user (admin, center staff, teacher or parent)
type User struct {
	ID        int64     `db:"id"`
	CenterID  int64     `db:"center_id"`
	Email     string    `db:"email"`
	Password  string    `db:"password"` // bcrypt hash
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	RoleType  RoleType  `db:"role_type"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
