package services

import (
	"context"
	"errors"
	"strings"

	"coursehub/logger"
	"coursehub/models"

	"gorm.io/gorm"
)

// EnrollInput is the payload for a new enrollment. The course details are
// denormalized onto the record as sent by the caller.
type EnrollInput struct {
	UserEmail      string
	CourseID       string
	CourseName     string
	InstructorName string
	Duration       int
}

type EnrollmentService struct {
	db *gorm.DB
}

func NewEnrollmentService(db *gorm.DB) *EnrollmentService {
	return &EnrollmentService{db: db}
}

// Enroll creates the (user, course) enrollment with zero progress.
// Uniqueness is enforced by idx_enrollment_user_course, so concurrent
// calls for the same pair produce exactly one record.
func (s *EnrollmentService) Enroll(ctx context.Context, in EnrollInput) (*models.Enrollment, error) {
	db := s.db.WithContext(ctx)

	enrollment := models.Enrollment{
		UserEmail:      strings.TrimSpace(in.UserEmail),
		CourseID:       strings.TrimSpace(in.CourseID),
		CourseName:     in.CourseName,
		InstructorName: in.InstructorName,
		Duration:       in.Duration,
		Progress:       0,
	}

	var course models.Course
	courseErr := db.Where("id = ?", enrollment.CourseID).First(&course).Error
	switch {
	case courseErr == nil:
		fillFromCourse(&enrollment, &course)
	case !errors.Is(courseErr, gorm.ErrRecordNotFound):
		return nil, storeError("load course", courseErr)
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if isDuplicate(err) {
			return nil, ErrAlreadyEnrolled
		}
		return nil, storeError("create enrollment", err)
	}

	if courseErr == nil {
		if err := db.Model(&models.Course{}).Where("id = ?", course.ID).
			UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", 1)).Error; err != nil {
			// the periodic recount repairs the counter
			logger.Warn("failed to bump enrolled count", "course", course.ID, "error", err)
		}
	}
	return &enrollment, nil
}

func fillFromCourse(e *models.Enrollment, c *models.Course) {
	if e.CourseName == "" {
		e.CourseName = c.Title
	}
	if e.InstructorName == "" {
		e.InstructorName = c.Instructor.Name
	}
	if e.Duration == 0 {
		e.Duration = c.Duration
	}
}

// ListEnrollments returns every enrollment of the user in store order.
func (s *EnrollmentService) ListEnrollments(ctx context.Context, userEmail string) ([]models.Enrollment, error) {
	enrollments := []models.Enrollment{}
	userEmail = strings.TrimSpace(userEmail)
	if err := s.db.WithContext(ctx).Where("user_email = ?", userEmail).Find(&enrollments).Error; err != nil {
		return nil, storeError("list enrollments", err)
	}
	return enrollments, nil
}

// UpdateProgress overwrites the stored progress with the given value.
func (s *EnrollmentService) UpdateProgress(ctx context.Context, enrollmentID string, progress int) error {
	db := s.db.WithContext(ctx)
	res := db.Model(&models.Enrollment{}).Where("id = ?", enrollmentID).Update("progress", progress)
	if res.Error != nil {
		return storeError("update progress", res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// MySQL reports zero affected rows when the value is unchanged.
	var count int64
	if err := db.Model(&models.Enrollment{}).Where("id = ?", enrollmentID).Count(&count).Error; err != nil {
		return storeError("update progress", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// CheckEnrolled reports whether the pair already has an enrollment.
func (s *EnrollmentService) CheckEnrolled(ctx context.Context, userEmail, courseID string) (bool, error) {
	userEmail, courseID = strings.TrimSpace(userEmail), strings.TrimSpace(courseID)
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Enrollment{}).
		Where("user_email = ? AND course_id = ?", userEmail, courseID).
		Count(&count).Error
	if err != nil {
		return false, storeError("check enrollment", err)
	}
	return count > 0, nil
}

// Stats derives the dashboard counters from the user's enrollments.
func (s *EnrollmentService) Stats(ctx context.Context, userEmail string) (models.EnrollmentStats, error) {
	enrollments, err := s.ListEnrollments(ctx, userEmail)
	if err != nil {
		return models.EnrollmentStats{}, err
	}
	stats := models.EnrollmentStats{TotalCourses: len(enrollments)}
	for _, e := range enrollments {
		switch {
		case e.Progress == 100:
			stats.CompletedCourses++
		case e.Progress > 0 && e.Progress < 100:
			stats.InProgress++
		}
		stats.TotalHours += e.Duration
	}
	return stats, nil
}
