package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleStaff   RoleType = "STAFF"
	RoleTeacher RoleType = "TEACHER"
	RoleParent  RoleType = "PARENT"
)

// ValidRoleType reports whether r is one of the known roles
func ValidRoleType(r RoleType) bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleTeacher, RoleParent:
		return true
	}
	return false
}

// HomeworkStatus represents the progress state of an assigned homework
type HomeworkStatus string

const (
	HomeworkAssigned   HomeworkStatus = "ASSIGNED"
	HomeworkInProgress HomeworkStatus = "IN_PROGRESS"
	HomeworkCompleted  HomeworkStatus = "COMPLETED"
	HomeworkChecked    HomeworkStatus = "CHECKED"
)

// ValidHomeworkStatus reports whether s is one of the known statuses
func ValidHomeworkStatus(s HomeworkStatus) bool {
	switch s {
	case HomeworkAssigned, HomeworkInProgress, HomeworkCompleted, HomeworkChecked:
		return true
	}
	return false
}
