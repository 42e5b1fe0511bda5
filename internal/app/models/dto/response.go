package dto

// APIResponse is the standard response envelope for all endpoints
type APIResponse struct {
	Data       interface{}     `json:"data,omitempty"`
	Error      *ErrorDetail    `json:"error,omitempty"`
	Pagination *PaginationInfo `json:"pagination,omitempty"`
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo holds pagination metadata for list responses
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage" example:"1"`
	TotalPages  int   `json:"totalPages" example:"5"`
	PageSize    int   `json:"pageSize" example:"10"`
	TotalItems  int64 `json:"totalItems" example:"42"`
}

// NewSuccessResponse wraps data in the standard envelope
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Data: data}
}

// NewPaginatedResponse wraps a list and its pagination metadata
func NewPaginatedResponse(data interface{}, pagination PaginationInfo) APIResponse {
	return APIResponse{Data: data, Pagination: &pagination}
}
