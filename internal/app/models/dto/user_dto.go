package dto

// CreateUserRequest represents an admin/staff request to create a user
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string `json:"lastName" binding:"required,min=2,max=100"`
	RoleType  string `json:"roleType" binding:"required,oneof=ADMIN STAFF TEACHER PARENT"`
}

// UserResponse represents user information returned by the API
type UserResponse struct {
	ID        int64  `json:"id" example:"1"`
	CenterID  int64  `json:"centerId" example:"1"`
	Email     string `json:"email" example:"teacher@center.example"`
	FirstName string `json:"firstName" example:"Elif"`
	LastName  string `json:"lastName" example:"Yilmaz"`
	RoleType  string `json:"roleType" example:"TEACHER" enums:"ADMIN,STAFF,TEACHER,PARENT"`
	IsActive  bool   `json:"isActive"`
}

// UserListResponse is a paginated user listing
type UserListResponse struct {
	Users          []UserResponse `json:"users"`
	PaginationInfo PaginationInfo `json:"pagination"`
}
