package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a named geographic record referenced by property listings.
type Location struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Province    string    `json:"province" gorm:"size:255;not null"`
	City        string    `json:"city" gorm:"size:255;not null"`
	Suburb      string    `json:"suburb" gorm:"size:255;not null"`
	Coordinates string    `json:"coordinates" gorm:"size:255;not null"` // Format: "latitude, longitude"
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
