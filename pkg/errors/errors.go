package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness. Detail keys
// are serialised flat alongside code and message, so the wire shape is
// {code, message, ...detail}.
type Error struct {
	Code    string
	Message string
	Status  int
	Detail  map[string]interface{}
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// MarshalJSON merges Detail into the top-level object.
func (e *Error) MarshalJSON() ([]byte, error) {
	body := make(map[string]interface{}, len(e.Detail)+2)
	for k, v := range e.Detail {
		body[k] = v
	}
	body["code"] = e.Code
	body["message"] = e.Message
	return json.Marshal(body)
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors for non-parameterised scenarios.
var (
	ErrValidation = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal   = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrDatabase   = New("DATABASE_ERROR", http.StatusInternalServerError, "database error")
	ErrDeadlock   = New("DEADLOCK", http.StatusServiceUnavailable, "Request failed due to database lock. Please retry.")
)

// StudentNotFound reports a missing student.
func StudentNotFound(studentID int64) *Error {
	return New("STUDENT_NOT_FOUND", http.StatusNotFound, fmt.Sprintf("Student not found (id: %d)", studentID))
}

// CourseNotFound reports a missing course.
func CourseNotFound(courseID int64) *Error {
	return New("COURSE_NOT_FOUND", http.StatusNotFound, fmt.Sprintf("Course not found (id: %d)", courseID))
}

// EnrollmentNotFound reports a missing enrollment. Deliberately also used
// when the enrollment exists but belongs to another student or is already
// cancelled; callers cannot tell those cases apart.
func EnrollmentNotFound(enrollmentID int64) *Error {
	return New("ENROLLMENT_NOT_FOUND", http.StatusNotFound, fmt.Sprintf("Enrollment not found (id: %d)", enrollmentID))
}

// CapacityExceeded reports a full course.
func CapacityExceeded(capacity, enrolled int) *Error {
	e := New("CAPACITY_EXCEEDED", http.StatusBadRequest,
		fmt.Sprintf("This course is full (capacity: %d, enrolled: %d)", capacity, enrolled))
	e.Detail = map[string]interface{}{"capacity": capacity, "enrolled": enrolled}
	return e
}

// CreditExceeded reports that the requested course would push the student
// over the per-semester credit ceiling.
func CreditExceeded(current, adding, max int) *Error {
	e := New("CREDIT_EXCEEDED", http.StatusBadRequest,
		fmt.Sprintf("Credit limit exceeded. Current: %d, Adding: %d, Max: %d", current, adding, max))
	e.Detail = map[string]interface{}{"current_credits": current, "adding_credits": adding, "max_credits": max}
	return e
}

// TimeConflict reports overlapping schedules; conflicting carries the
// {id, name, schedule} entries of the offending enrolled courses.
func TimeConflict(conflicting interface{}) *Error {
	e := New("TIME_CONFLICT", http.StatusConflict, "Schedule conflicts with your existing enrollment")
	e.Detail = map[string]interface{}{"conflicting_courses": conflicting}
	return e
}

// AlreadyEnrolled reports a duplicate active enrollment.
func AlreadyEnrolled(courseID int64) *Error {
	e := New("ALREADY_ENROLLED", http.StatusConflict,
		fmt.Sprintf("You are already enrolled in this course (course_id: %d)", courseID))
	e.Detail = map[string]interface{}{"course_id": courseID}
	return e
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}
