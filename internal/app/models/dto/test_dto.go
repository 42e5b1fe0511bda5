package dto

// CreateTestRequest represents a request to create a test
type CreateTestRequest struct {
	Name         string `json:"name" binding:"required,max=200" example:"Algebra quiz 1"`
	Subject      string `json:"subject" binding:"required,max=100" example:"Math"`
	TotalMarks   int    `json:"totalMarks" binding:"required,min=1" example:"20"`
	LessonPlanID *int64 `json:"lessonPlanId,omitempty"`
}

// UpdateTestRequest represents a request to update a test
type UpdateTestRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=200"`
	Subject      *string `json:"subject,omitempty" binding:"omitempty,max=100"`
	TotalMarks   *int    `json:"totalMarks,omitempty" binding:"omitempty,min=1"`
	LessonPlanID *int64  `json:"lessonPlanId,omitempty"`
}

// TestResponse represents test information returned by the API
type TestResponse struct {
	ID           int64  `json:"id" example:"1"`
	Name         string `json:"name" example:"Algebra quiz 1"`
	Subject      string `json:"subject" example:"Math"`
	TotalMarks   int    `json:"totalMarks" example:"20"`
	LessonPlanID *int64 `json:"lessonPlanId,omitempty"`
}

// CreateTestResultRequest records a student's marks on a test
type CreateTestResultRequest struct {
	StudentID     int64  `json:"studentId" binding:"required"`
	MarksObtained int    `json:"marksObtained" binding:"min=0"`
	DateTaken     string `json:"dateTaken" binding:"required" example:"2024-01-12"`
}

// TestResultResponse represents a test result returned by the API
type TestResultResponse struct {
	ID            int64         `json:"id" example:"1"`
	StudentID     int64         `json:"studentId" example:"100"`
	StudentName   string        `json:"studentName,omitempty" example:"Ali Demir"`
	TestID        int64         `json:"testId" example:"5"`
	Test          *TestResponse `json:"test,omitempty"`
	MarksObtained int           `json:"marksObtained" example:"18"`
	DateTaken     string        `json:"dateTaken" example:"2024-01-12"`
}

// TestListResponse is a paginated test listing
type TestListResponse struct {
	Tests          []TestResponse `json:"tests"`
	PaginationInfo PaginationInfo `json:"pagination"`
}
