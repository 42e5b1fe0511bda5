package dto

// CreateHomeworkRequest represents a request to create a homework
type CreateHomeworkRequest struct {
	Title        string `json:"title" binding:"required,max=200" example:"Exercise sheet 3"`
	Subject      string `json:"subject" binding:"required,max=100" example:"Math"`
	DueDate      string `json:"dueDate" binding:"required" example:"2024-01-15"`
	LessonPlanID *int64 `json:"lessonPlanId,omitempty"`
}

// UpdateHomeworkRequest represents a request to update a homework
type UpdateHomeworkRequest struct {
	Title        *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Subject      *string `json:"subject,omitempty" binding:"omitempty,max=100"`
	DueDate      *string `json:"dueDate,omitempty"`
	LessonPlanID *int64  `json:"lessonPlanId,omitempty"`
}

// HomeworkResponse represents homework information returned by the API
type HomeworkResponse struct {
	ID           int64  `json:"id" example:"1"`
	Title        string `json:"title" example:"Exercise sheet 3"`
	Subject      string `json:"subject" example:"Math"`
	DueDate      string `json:"dueDate" example:"2024-01-15"`
	LessonPlanID *int64 `json:"lessonPlanId,omitempty"`
}

// AssignHomeworkRequest assigns a homework to a student
type AssignHomeworkRequest struct {
	StudentID int64 `json:"studentId" binding:"required"`
}

// UpdateHomeworkRecordRequest updates a student's homework progress
type UpdateHomeworkRecordRequest struct {
	Status         string  `json:"status" binding:"required,oneof=ASSIGNED IN_PROGRESS COMPLETED CHECKED"`
	TeacherRemarks *string `json:"teacherRemarks,omitempty" binding:"omitempty,max=2000"`
}

// HomeworkRecordResponse represents a student's homework record
type HomeworkRecordResponse struct {
	ID             int64             `json:"id" example:"1"`
	StudentID      int64             `json:"studentId" example:"100"`
	StudentName    string            `json:"studentName,omitempty" example:"Ali Demir"`
	HomeworkID     int64             `json:"homeworkId" example:"70"`
	Homework       *HomeworkResponse `json:"homework,omitempty"`
	Status         string            `json:"status" example:"COMPLETED" enums:"ASSIGNED,IN_PROGRESS,COMPLETED,CHECKED"`
	TeacherRemarks *string           `json:"teacherRemarks,omitempty"`
}

// HomeworkListResponse is a paginated homework listing
type HomeworkListResponse struct {
	Homeworks      []HomeworkResponse `json:"homeworks"`
	PaginationInfo PaginationInfo     `json:"pagination"`
}
