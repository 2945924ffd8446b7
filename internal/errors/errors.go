package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Sentinel errors surfaced by the service layer. The boundary translator maps
// each one to an HTTP status and stable error code.
var (
	// ErrInvalidCredentials is returned on login when the email is unknown or
	// the password does not match. The two cases share one error on purpose so
	// responses never reveal whether an email is registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailAlreadyExists is returned when registering an email that is taken.
	ErrEmailAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrDepartmentNotFound is returned when a referenced department does not exist.
	ErrDepartmentNotFound = errors.New("department not found")
	// ErrDepartmentAlreadyExists is returned when creating a duplicate department name.
	ErrDepartmentAlreadyExists = errors.New("department already exists")
	// ErrEventNotFound is returned when a referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")
	// ErrTaskNotFound is returned when a referenced task does not exist.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAssignmentNotFound is returned when a referenced assignment does not exist.
	ErrAssignmentNotFound = errors.New("assignment not found")
	// ErrAssignmentTargetMissing is returned when an assignment names neither a
	// user nor a department.
	ErrAssignmentTargetMissing = errors.New("either userId or departmentId must be provided")
	// ErrEmptyCSV is returned when an uploaded file contains no data rows.
	ErrEmptyCSV = errors.New("CSV file is empty or contains no valid data")
)

// mysqlDuplicateEntry is the MySQL error number for unique constraint violations.
const mysqlDuplicateEntry = 1062

// ValidationError aggregates every violation collected across a whole input,
// so a malformed CSV reports all of its problems in one response.
type ValidationError struct {
	Message    string   `json:"message"`
	Violations []string `json:"violations"`
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Violations, "; ")
}

// NewValidationError creates an aggregate validation error.
func NewValidationError(message string, violations []string) *ValidationError {
	return &ValidationError{Message: message, Violations: violations}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Details    []string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:   e.Message,
		Code:    e.Code,
		Details: e.Details,
	}
}

// MapErrorToHTTP maps domain and storage errors to HTTP errors. This is the
// single translation point for the whole request-handling layer; raw storage
// errors (duplicate key, record not found) are folded into the same taxonomy.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		he := NewHTTPError(http.StatusBadRequest, validationErr.Message, "VALIDATION_FAILED")
		he.Details = validationErr.Violations
		return he
	}

	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrEmailAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "USER_ALREADY_EXISTS")
	case errors.Is(err, ErrDepartmentAlreadyExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "DEPARTMENT_ALREADY_EXISTS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrDepartmentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "DEPARTMENT_NOT_FOUND")
	case errors.Is(err, ErrEventNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "EVENT_NOT_FOUND")
	case errors.Is(err, ErrTaskNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "TASK_NOT_FOUND")
	case errors.Is(err, ErrAssignmentNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ASSIGNMENT_NOT_FOUND")
	case errors.Is(err, ErrAssignmentTargetMissing):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ASSIGNMENT_TARGET_MISSING")
	case errors.Is(err, ErrEmptyCSV):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CSV")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewHTTPError(http.StatusNotFound, "record not found", "NOT_FOUND")
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return NewHTTPError(http.StatusConflict, "unique constraint failed", "DUPLICATE_ENTRY")
	}

	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
