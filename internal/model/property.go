package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is a listing for sale or rent.
//
// Location and Owner are weak references resolved on read. A property whose
// location was deleted is still readable; the location projection is simply
// omitted.
type Property struct {
	ID              uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title           string          `json:"title" gorm:"size:255;not null"`
	Description     string          `json:"description" gorm:"type:text;not null"`
	PropertyType    PropertyType    `json:"property_type" gorm:"size:50;not null"`
	TransactionType TransactionType `json:"transaction_type" gorm:"size:50;not null"`
	Price           float64         `json:"price" gorm:"not null"`
	LocationID      uuid.UUID       `json:"location_id" gorm:"type:char(36);not null;index"`
	Images          StringList      `json:"images" gorm:"type:json;not null"`
	OwnerID         uuid.UUID       `json:"owner_id" gorm:"type:char(36);not null;index"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Relations
	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	Owner    *User     `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// StringList stores an ordered list of strings as a JSON array column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("unsupported type %T for StringList", value)
}
