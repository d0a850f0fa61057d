package models

import (
	"time"

	"github.com/google/uuid"
)

// KpIndex caches one day of geomagnetic activity. Date is unique at day
// granularity; upserts replace the value as better data arrives.
type KpIndex struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	KpIndex   float64   `gorm:"not null" json:"kp_index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
