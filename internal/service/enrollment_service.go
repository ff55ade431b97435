package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campuskit/enrollment-api/internal/locking"
	"github.com/campuskit/enrollment-api/internal/models"
	"github.com/campuskit/enrollment-api/internal/store"
	appErrors "github.com/campuskit/enrollment-api/pkg/errors"
)

// courseInvalidator drops cached course listings after a successful
// mutation; enrolled counts appear in listings.
type courseInvalidator interface {
	InvalidateCourses(ctx context.Context)
}

// enrollmentObserver records enrollment outcomes for metrics.
type enrollmentObserver interface {
	ObserveEnrollment(outcome string)
}

// EnrollRequest is the enroll payload.
type EnrollRequest struct {
	CourseID int64 `json:"course_id" validate:"required,gt=0"`
}

// EnrollmentService is the validate-and-commit engine for enroll and
// cancel. Per-course and per-student mutexes serialise contending
// operations; the store's conditional capacity update is the safety
// mechanism that holds even when the locks cannot cover a contender.
type EnrollmentService struct {
	store      store.Store
	locks      *locking.Registry
	maxCredits int
	validator  *validator.Validate
	logger     *zap.Logger
	cache      courseInvalidator
	metrics    enrollmentObserver
}

// NewEnrollmentService constructs the engine. cache and metrics may be nil.
func NewEnrollmentService(st store.Store, locks *locking.Registry, maxCredits int, validate *validator.Validate, logger *zap.Logger, cache courseInvalidator, metrics enrollmentObserver) *EnrollmentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EnrollmentService{
		store:      st,
		locks:      locks,
		maxCredits: maxCredits,
		validator:  validate,
		logger:     logger,
		cache:      cache,
		metrics:    metrics,
	}
}

// Enroll registers a student for a course, enforcing the duplicate,
// credit-ceiling, schedule-conflict and capacity rules. A transient store
// failure is retried once before surfacing as DEADLOCK.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID int64, req EnrollRequest) (*models.Enrollment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment payload")
	}

	enrollment, err := s.withRetry(ctx, func() (*models.Enrollment, error) {
		return s.enroll(ctx, studentID, req.CourseID)
	})
	if err != nil {
		s.observe("rejected:" + appErrors.FromError(err).Code)
		return nil, err
	}

	s.observe("enrolled")
	s.invalidate(ctx)
	s.logger.Info("enrollment created",
		zap.Int64("student_id", studentID),
		zap.Int64("course_id", req.CourseID),
		zap.Int64("enrollment_id", enrollment.ID),
	)
	return enrollment, nil
}

// Cancel transitions an enrollment to CANCELLED and frees its seat.
// Missing, foreign and already-cancelled enrollments are deliberately
// indistinguishable to the caller.
func (s *EnrollmentService) Cancel(ctx context.Context, studentID, enrollmentID int64) (*models.Enrollment, error) {
	enrollment, err := s.withRetry(ctx, func() (*models.Enrollment, error) {
		return s.cancel(ctx, studentID, enrollmentID)
	})
	if err != nil {
		s.observe("rejected:" + appErrors.FromError(err).Code)
		return nil, err
	}

	s.observe("cancelled")
	s.invalidate(ctx)
	s.logger.Info("enrollment cancelled",
		zap.Int64("student_id", studentID),
		zap.Int64("enrollment_id", enrollmentID),
	)
	return enrollment, nil
}

func (s *EnrollmentService) withRetry(ctx context.Context, op func() (*models.Enrollment, error)) (*models.Enrollment, error) {
	enrollment, err := op()
	if err == nil || !store.IsTransient(err) {
		return enrollment, err
	}

	s.logger.Warn("transient store error, retrying once", zap.Error(err))
	enrollment, err = op()
	if err != nil && store.IsTransient(err) {
		return nil, appErrors.Wrap(err, appErrors.ErrDeadlock.Code, appErrors.ErrDeadlock.Status, appErrors.ErrDeadlock.Message)
	}
	return enrollment, err
}

func (s *EnrollmentService) enroll(ctx context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	release := s.locks.Acquire(locking.CourseKey(courseID), locking.StudentKey(studentID))
	defer release()

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to begin transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.FindStudent(ctx, studentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.StudentNotFound(studentID)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load student")
	}

	course, err := tx.FindCourse(ctx, courseID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.CourseNotFound(courseID)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load course")
	}

	// Cheap point lookups first, the contested capacity update last.
	existing, err := tx.FindActiveEnrollment(ctx, studentID, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to check duplicate enrollment")
	}
	if existing != nil {
		return nil, appErrors.AlreadyEnrolled(courseID)
	}

	current, err := tx.SumActiveCredits(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to sum credits")
	}
	if current+course.Credits > s.maxCredits {
		return nil, appErrors.CreditExceeded(current, course.Credits, s.maxCredits)
	}

	conflicts, err := s.findConflicts(ctx, tx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, appErrors.TimeConflict(conflicts)
	}

	reserved, err := tx.IncrementEnrolled(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to reserve seat")
	}
	if !reserved {
		latest, err := tx.FindCourse(ctx, courseID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to reload course")
		}
		return nil, appErrors.CapacityExceeded(latest.Capacity, latest.Enrolled)
	}

	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		Status:     models.EnrollmentStatusEnrolled,
		EnrolledAt: time.Now().UTC(),
	}
	if err := tx.InsertEnrollment(ctx, enrollment); err != nil {
		// Rollback reverses the capacity increment.
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to insert enrollment")
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to commit enrollment")
	}
	committed = true

	return enrollment, nil
}

func (s *EnrollmentService) findConflicts(ctx context.Context, tx store.Tx, studentID, courseID int64) ([]models.ConflictingCourse, error) {
	target, err := tx.FindSchedule(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load schedule")
	}
	if target == nil {
		return nil, nil
	}

	enrollments, err := tx.ListActiveEnrollments(ctx, studentID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to list enrollments")
	}

	var conflicts []models.ConflictingCourse
	for _, enrollment := range enrollments {
		other, err := tx.FindSchedule(ctx, enrollment.CourseID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load schedule")
		}
		if other == nil || !target.Overlaps(*other) {
			continue
		}
		course, err := tx.FindCourse(ctx, enrollment.CourseID)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load course")
		}
		conflicts = append(conflicts, models.ConflictingCourse{
			ID:       course.ID,
			Name:     course.Name,
			Schedule: other.String(),
		})
	}
	return conflicts, nil
}

func (s *EnrollmentService) cancel(ctx context.Context, studentID, enrollmentID int64) (*models.Enrollment, error) {
	release := s.locks.Acquire(locking.StudentKey(studentID), locking.EnrollmentKey(enrollmentID))
	defer release()

	tx, err := s.store.Begin(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to begin transaction")
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	enrollment, err := tx.FindEnrollment(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.EnrollmentNotFound(enrollmentID)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to load enrollment")
	}
	if enrollment.StudentID != studentID || enrollment.Status != models.EnrollmentStatusEnrolled {
		return nil, appErrors.EnrollmentNotFound(enrollmentID)
	}

	released, err := tx.DecrementEnrolled(ctx, enrollment.CourseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to release seat")
	}
	if !released {
		// An active enrollment with enrolled at zero means the counter was
		// already inconsistent; surface it instead of absorbing it.
		s.logger.Error("enrolled counter underflow on cancel",
			zap.Int64("course_id", enrollment.CourseID),
			zap.Int64("enrollment_id", enrollmentID),
		)
		return nil, appErrors.Clone(appErrors.ErrDatabase, "enrolled counter inconsistent for course")
	}

	now := time.Now().UTC()
	if err := tx.MarkEnrollmentCancelled(ctx, enrollmentID, now); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to update enrollment")
	}

	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrDatabase.Code, appErrors.ErrDatabase.Status, "failed to commit cancellation")
	}
	committed = true

	enrollment.Status = models.EnrollmentStatusCancelled
	enrollment.CancelledAt = &now
	return enrollment, nil
}

func (s *EnrollmentService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.InvalidateCourses(ctx)
	}
}

func (s *EnrollmentService) observe(outcome string) {
	if s.metrics != nil {
		s.metrics.ObserveEnrollment(outcome)
	}
}
