package dto

// CreateLessonPlanRequest represents a request to create a lesson plan
type CreateLessonPlanRequest struct {
	Subject    string  `json:"subject" binding:"required,max=100" example:"Math"`
	Chapter    string  `json:"chapter" binding:"required,max=200" example:"Algebra"`
	Topic      string  `json:"topic" binding:"required,max=200" example:"Linear equations"`
	Grade      *string `json:"grade,omitempty" binding:"omitempty,max=10" example:"8"`
	LessonDate string  `json:"lessonDate" binding:"required" example:"2024-01-10"`
}

// UpdateLessonPlanRequest represents a request to update a lesson plan
type UpdateLessonPlanRequest struct {
	Subject    *string `json:"subject,omitempty" binding:"omitempty,max=100"`
	Chapter    *string `json:"chapter,omitempty" binding:"omitempty,max=200"`
	Topic      *string `json:"topic,omitempty" binding:"omitempty,max=200"`
	Grade      *string `json:"grade,omitempty" binding:"omitempty,max=10"`
	LessonDate *string `json:"lessonDate,omitempty"`
}

// LessonPlanResponse represents lesson plan information returned by the API
type LessonPlanResponse struct {
	ID         int64   `json:"id" example:"1"`
	Subject    string  `json:"subject" example:"Math"`
	Chapter    string  `json:"chapter" example:"Algebra"`
	Topic      string  `json:"topic" example:"Linear equations"`
	Grade      *string `json:"grade,omitempty" example:"8"`
	LessonDate string  `json:"lessonDate" example:"2024-01-10"`
}

// LessonPlanListResponse is a paginated lesson plan listing
type LessonPlanListResponse struct {
	LessonPlans    []LessonPlanResponse `json:"lessonPlans"`
	PaginationInfo PaginationInfo       `json:"pagination"`
}
