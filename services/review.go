package services

import (
	"context"

	"coursehub/models"

	"gorm.io/gorm"
)

type ReviewInput struct {
	CourseID string
	UserName string
	Rating   int
	Comment  string
}

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// AddReview appends a review; there is no duplicate or ownership check.
func (s *ReviewService) AddReview(ctx context.Context, in ReviewInput) (*models.Review, error) {
	review := models.Review{
		CourseID: in.CourseID,
		UserName: in.UserName,
		Rating:   in.Rating,
		Comment:  in.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, storeError("add review", err)
	}
	return &review, nil
}

func (s *ReviewService) ListReviews(ctx context.Context, courseID string) ([]models.Review, error) {
	reviews := []models.Review{}
	if err := s.db.WithContext(ctx).Where("course_id = ?", courseID).Find(&reviews).Error; err != nil {
		return nil, storeError("list reviews", err)
	}
	return reviews, nil
}
