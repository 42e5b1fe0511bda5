package models

import "time"

// Center represents a tutoring center (the multi-tenant unit)
type Center struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Address   *string   `db:"address"`
	Phone     *string   `db:"phone"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
