package models

import (
	"encoding/json"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Instructor is stored inline on the course row.
type Instructor struct {
	Name  string `json:"name" gorm:"column:name;size:255" validate:"max=255"`
	Email string `json:"email,omitempty" gorm:"column:email;size:255;index" validate:"omitempty,email"`
}

// UnmarshalJSON accepts either a bare name string or a {name, email} object.
func (i *Instructor) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*i = Instructor{Name: name}
		return nil
	}
	type plain Instructor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = Instructor(p)
	return nil
}

// Course represents a purchasable course in the catalog
type Course struct {
	Base
	Title         string     `json:"title" gorm:"size:255;not null;index"`
	TitleSearch   string     `json:"-" gorm:"size:255;index"`
	Description   string     `json:"description" gorm:"type:text"`
	Category      string     `json:"category" gorm:"size:120;index"`
	Price         float64    `json:"price" gorm:"not null;default:0"`
	Duration      int        `json:"duration" gorm:"not null"` // hours
	Instructor    Instructor `json:"instructor" gorm:"embedded;embeddedPrefix:instructor_"`
	Image         string     `json:"image"`
	Featured      bool       `json:"featured" gorm:"index;default:false"`
	EnrolledCount int64      `json:"enrolledCount" gorm:"default:0"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// SearchKey is the folded form of a title used for case-insensitive matching.
// Folding happens in Go because SQLite's LOWER only handles ASCII.
func SearchKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// BeforeSave keeps TitleSearch in step with Title on struct writes.
// Map updates must set title_search themselves.
func (c *Course) BeforeSave(tx *gorm.DB) error {
	if c.Title != "" {
		c.TitleSearch = SearchKey(c.Title)
	}
	return nil
}
