package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups listings by kind. Immutable after creation.
type Category struct {
	ID   uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name string    `json:"name" gorm:"uniqueIndex;size:64;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
