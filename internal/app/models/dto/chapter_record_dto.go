package dto

// CreateChapterRecordRequest records that a student was taught a lesson plan
type CreateChapterRecordRequest struct {
	StudentID        int64   `json:"studentId" binding:"required"`
	LessonPlanID     int64   `json:"lessonPlanId" binding:"required"`
	EvaluationRating *int    `json:"evaluationRating,omitempty" binding:"omitempty,min=1,max=5"`
	TeacherNotes     *string `json:"teacherNotes,omitempty" binding:"omitempty,max=2000"`
	CompletedAt      string  `json:"completedAt" binding:"required" example:"2024-01-10"`
}

// UpdateChapterRecordRequest updates an evaluation record
type UpdateChapterRecordRequest struct {
	EvaluationRating *int    `json:"evaluationRating,omitempty" binding:"omitempty,min=1,max=5"`
	TeacherNotes     *string `json:"teacherNotes,omitempty" binding:"omitempty,max=2000"`
	CompletedAt      *string `json:"completedAt,omitempty"`
}

// ChapterRecordResponse represents an evaluation record returned by the API
type ChapterRecordResponse struct {
	ID               int64               `json:"id" example:"1"`
	StudentID        int64               `json:"studentId" example:"100"`
	StudentName      string              `json:"studentName,omitempty" example:"Ali Demir"`
	LessonPlanID     int64               `json:"lessonPlanId" example:"1"`
	LessonPlan       *LessonPlanResponse `json:"lessonPlan,omitempty"`
	EvaluationRating *int                `json:"evaluationRating,omitempty" example:"4"`
	TeacherNotes     *string             `json:"teacherNotes,omitempty"`
	RecordedBy       *int64              `json:"recordedBy,omitempty"`
	CompletedAt      string              `json:"completedAt" example:"2024-01-10"`
}

// ChapterRecordListResponse is a paginated chapter record listing
type ChapterRecordListResponse struct {
	ChapterRecords []ChapterRecordResponse `json:"chapterRecords"`
	PaginationInfo PaginationInfo          `json:"pagination"`
}
