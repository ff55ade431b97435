package models

import "time"

// EnrollmentStatus represents the lifecycle of an enrollment.
type EnrollmentStatus string

// An enrollment is created ENROLLED and transitions at most once to
// CANCELLED. Rows are never deleted.
const (
	EnrollmentStatusEnrolled  EnrollmentStatus = "ENROLLED"
	EnrollmentStatusCancelled EnrollmentStatus = "CANCELLED"
)

// Valid reports whether the status is one of the known values.
func (s EnrollmentStatus) Valid() bool {
	return s == EnrollmentStatusEnrolled || s == EnrollmentStatusCancelled
}

// Enrollment captures a student's active or cancelled registration to a course.
type Enrollment struct {
	ID          int64            `db:"id" json:"id"`
	StudentID   int64            `db:"student_id" json:"student_id"`
	CourseID    int64            `db:"course_id" json:"course_id"`
	Status      EnrollmentStatus `db:"status" json:"status"`
	EnrolledAt  time.Time        `db:"enrolled_at" json:"enrolled_at"`
	CancelledAt *time.Time       `db:"cancelled_at" json:"cancelled_at"`
}
