package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the opaque, server-generated identifier shared by catalog records.
type Base struct {
	ID string `gorm:"type:varchar(36);primaryKey" json:"_id"`
}

// BeforeCreate assigns a UUID when the caller did not supply one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
