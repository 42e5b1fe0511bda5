package dto

// CreateStudentRequest represents a request to enroll a student
type CreateStudentRequest struct {
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
	Grade     string `json:"grade" binding:"required,max=10" example:"8"`
}

// UpdateStudentRequest represents a request to update a student
type UpdateStudentRequest struct {
	FirstName *string `json:"firstName,omitempty" binding:"omitempty,min=2,max=100"`
	LastName  *string `json:"lastName,omitempty" binding:"omitempty,min=2,max=100"`
	Grade     *string `json:"grade,omitempty" binding:"omitempty,max=10"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// LinkParentRequest links a parent user to a student
type LinkParentRequest struct {
	ParentUserID int64 `json:"parentUserId" binding:"required"`
}

// StudentResponse represents student information returned by the API
type StudentResponse struct {
	ID        int64  `json:"id" example:"1"`
	CenterID  int64  `json:"centerId" example:"1"`
	FirstName string `json:"firstName" example:"Ali"`
	LastName  string `json:"lastName" example:"Demir"`
	Grade     string `json:"grade" example:"8"`
	IsActive  bool   `json:"isActive"`
}

// StudentListResponse is a paginated student listing
type StudentListResponse struct {
	Students       []StudentResponse `json:"students"`
	PaginationInfo PaginationInfo    `json:"pagination"`
}
