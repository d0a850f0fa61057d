package models

import (
	"time"

	"github.com/google/uuid"
)

// Symptom is a loggable symptom category. Rows with IsCustom=false are
// shared templates visible to every user; custom rows belong to UserID.
type Symptom struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	IsCustom    bool       `gorm:"default:false;index" json:"is_custom"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Medication is a loggable medication category, template/custom like Symptom.
type Medication struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	IsCustom    bool       `gorm:"default:false;index" json:"is_custom"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
