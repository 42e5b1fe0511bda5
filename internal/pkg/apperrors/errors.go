package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrConflict              = errors.New("conflict")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenNotFound      = errors.New("token not found")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidFormat      = errors.New("invalid token format")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Center & student errors
var (
	ErrCenterNotFound      = errors.New("center not found")
	ErrStudentNotFound     = errors.New("student not found")
	ErrStudentNotLinked    = errors.New("student is not linked to this parent")
	ErrParentStudentExists = errors.New("parent is already linked to this student")
	ErrStudentNotInCenter  = errors.New("student does not belong to this center")
)

// Curriculum errors
var (
	ErrLessonPlanNotFound     = errors.New("lesson plan not found")
	ErrChapterRecordNotFound  = errors.New("chapter record not found")
	ErrInvalidEvaluationRange = errors.New("evaluation rating must be between 1 and 5")
)

// Test & homework errors
var (
	ErrTestNotFound           = errors.New("test not found")
	ErrTestResultNotFound     = errors.New("test result not found")
	ErrMarksExceedTotal       = errors.New("marks obtained exceed the test total")
	ErrHomeworkNotFound       = errors.New("homework not found")
	ErrHomeworkRecordNotFound = errors.New("homework record not found")
	ErrInvalidHomeworkStatus  = errors.New("invalid homework status")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewForbiddenError creates a new custom error for permission denied with a message
func NewForbiddenError(message string) error {
	return &CustomError{
		Err:     ErrPermissionDenied,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
