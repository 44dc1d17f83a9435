package services

import (
	"context"
	"strings"

	"coursehub/models"

	"gorm.io/gorm"
)

// FeaturedLimit caps the homepage promotion list.
const FeaturedLimit = 6

const (
	SortNone     = ""
	SortPrice    = "price"
	SortDuration = "duration"
)

// CourseFilter narrows ListCourses. Zero values mean "no constraint".
type CourseFilter struct {
	Search   string
	Category string
	SortBy   string
}

// CourseFields is the replaceable part of a course.
type CourseFields struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Duration    int
	Image       string
	Featured    bool
	Instructor  *models.Instructor
}

type CourseService struct {
	db *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{db: db}
}

// ListCourses applies the title search, category match and ascending sort.
func (s *CourseService) ListCourses(ctx context.Context, f CourseFilter) ([]models.Course, error) {
	order, err := sortClause(f.SortBy)
	if err != nil {
		return nil, err
	}

	query := s.db.WithContext(ctx).Model(&models.Course{})
	if search := strings.TrimSpace(f.Search); search != "" {
		query = query.Where("title_search LIKE ? ESCAPE '!'", "%"+escapeLike(models.SearchKey(search))+"%")
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if order != "" {
		query = query.Order(order)
	}

	courses := []models.Course{}
	if err := query.Find(&courses).Error; err != nil {
		return nil, storeError("list courses", err)
	}
	return courses, nil
}

func sortClause(key string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case SortNone:
		return "", nil
	case SortPrice:
		return "price ASC", nil
	case SortDuration:
		return "duration ASC", nil
	default:
		return "", NewValidationError("sortBy", "must be one of price, duration")
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}

func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, storeError("get course", err)
	}
	return &course, nil
}

// ListFeatured returns at most FeaturedLimit featured courses.
func (s *CourseService) ListFeatured(ctx context.Context) ([]models.Course, error) {
	courses := []models.Course{}
	err := s.db.WithContext(ctx).Where("featured = ?", true).Limit(FeaturedLimit).Find(&courses).Error
	if err != nil {
		return nil, storeError("list featured", err)
	}
	return courses, nil
}

func (s *CourseService) CreateCourse(ctx context.Context, course *models.Course) error {
	course.EnrolledCount = 0
	if err := s.db.WithContext(ctx).Create(course).Error; err != nil {
		return storeError("create course", err)
	}
	return nil
}

// UpdateCourse replaces the editable fields. The instructor is kept unless supplied.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, f CourseFields) error {
	updates := map[string]interface{}{
		"title":        f.Title,
		"title_search": models.SearchKey(f.Title),
		"description":  f.Description,
		"category":     f.Category,
		"price":        f.Price,
		"duration":     f.Duration,
		"image":        f.Image,
		"featured":     f.Featured,
	}
	if f.Instructor != nil {
		updates["instructor_name"] = f.Instructor.Name
		updates["instructor_email"] = f.Instructor.Email
	}

	db := s.db.WithContext(ctx)
	res := db.Model(&models.Course{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return storeError("update course", res.Error)
	}
	if res.RowsAffected == 0 {
		return s.mustExist(ctx, id)
	}
	return nil
}

func (s *CourseService) DeleteCourse(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Course{})
	if res.Error != nil {
		return storeError("delete course", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *CourseService) mustExist(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Course{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storeError("find course", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ListCategories returns the distinct non-empty category labels, sorted.
func (s *CourseService) ListCategories(ctx context.Context) ([]string, error) {
	categories := []string{}
	err := s.db.WithContext(ctx).Model(&models.Course{}).
		Where("category <> ''").
		Distinct().
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, storeError("list categories", err)
	}
	return categories, nil
}

func (s *CourseService) ListByInstructor(ctx context.Context, email string) ([]models.Course, error) {
	courses := []models.Course{}
	if err := s.db.WithContext(ctx).Where("instructor_email = ?", email).Find(&courses).Error; err != nil {
		return nil, storeError("list by instructor", err)
	}
	return courses, nil
}

// RecountEnrollments recomputes enrolled_count for every course from the enrollment table.
func (s *CourseService) RecountEnrollments(ctx context.Context) (int64, error) {
	sub := s.db.Model(&models.Enrollment{}).
		Select("COUNT(*)").
		Where("enrollments.course_id = courses.id")
	res := s.db.WithContext(ctx).Model(&models.Course{}).
		Where("1 = 1").
		UpdateColumn("enrolled_count", sub)
	if res.Error != nil {
		return 0, storeError("recount enrollments", res.Error)
	}
	return res.RowsAffected, nil
}

// Seed inserts the given courses when the catalog is empty and reports how many were added.
func (s *CourseService) Seed(ctx context.Context, courses []models.Course) (int, error) {
	db := s.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return 0, storeError("count courses", err)
	}
	if count > 0 || len(courses) == 0 {
		return 0, nil
	}
	if err := db.Create(&courses).Error; err != nil {
		return 0, storeError("seed courses", err)
	}
	return len(courses), nil
}
