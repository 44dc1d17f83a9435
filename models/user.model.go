package models

import "time"

const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// User is keyed by email and created lazily on first sign-in.
type User struct {
	Email     string    `json:"email" gorm:"size:255;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;default:''"`
	PhotoURL  string    `json:"photoURL"`
	Role      string    `json:"role" gorm:"size:32;default:'student'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
