package models

import "time"

// Enrollment links a user (by email) to a course and tracks completion.
// Course name, instructor and duration are copied at enrollment time and never resynced.
type Enrollment struct {
	Base
	UserEmail      string    `json:"userEmail" gorm:"size:255;not null;uniqueIndex:idx_enrollment_user_course"`
	CourseID       string    `json:"courseId" gorm:"size:36;not null;uniqueIndex:idx_enrollment_user_course;index"`
	CourseName     string    `json:"courseName" gorm:"size:255"`
	InstructorName string    `json:"instructorName" gorm:"size:255"`
	Duration       int       `json:"duration"`
	Progress       int       `json:"progress" gorm:"not null;default:0"` // 0-100
	EnrolledAt     time.Time `json:"enrolledAt" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
