package models

import "time"

type Review struct {
	Base
	CourseID  string    `json:"courseId" gorm:"size:36;not null;index"`
	UserName  string    `json:"userName" gorm:"size:255;default:''"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"` // 1–5 rating
	Comment   string    `json:"comment" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
}
