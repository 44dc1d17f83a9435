package services

import (
	"context"
	"errors"
	"strings"

	"coursehub/models"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type UserInput struct {
	Email    string
	Name     string
	PhotoURL string
	Role     string
}

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetOrCreateUser returns the stored user for the email, creating a student by default.
// The second return value is true when a new record was written.
func (s *UserService) GetOrCreateUser(ctx context.Context, in UserInput) (*models.User, bool, error) {
	email := strings.TrimSpace(in.Email)
	if user, err := s.GetUser(ctx, email); err == nil {
		return user, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = models.RoleStudent
	}
	user := models.User{
		Email:    email,
		Name:     in.Name,
		PhotoURL: in.PhotoURL,
		Role:     role,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			// lost the race with a concurrent sign-in
			existing, getErr := s.GetUser(ctx, email)
			return existing, false, getErr
		}
		return nil, false, storeError("create user", err)
	}
	return &user, true, nil
}

func (s *UserService) GetUser(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, storeError("get user", err)
	}
	return &user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// PlatformStats counts courses, users by role and this week's enrollments.
func (s *UserService) PlatformStats(ctx context.Context) (models.PlatformStats, error) {
	var stats models.PlatformStats
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Course{}).Count(&stats.TotalCourses).Error; err != nil {
		return stats, storeError("count courses", err)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleStudent).Count(&stats.TotalStudents).Error; err != nil {
		return stats, storeError("count students", err)
	}
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleInstructor).Count(&stats.TotalInstructors).Error; err != nil {
		return stats, storeError("count instructors", err)
	}
	err := db.Model(&models.Enrollment{}).
		Where("enrolled_at >= ?", now.BeginningOfWeek()).
		Count(&stats.EnrollmentsThisWeek).Error
	if err != nil {
		return stats, storeError("count recent enrollments", err)
	}
	return stats, nil
}
