package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis is an uploaded lab-result file (JPEG/PNG/PDF). FilePath is
// relative to the configured static directory; deleting the row removes
// the file.
type Analysis struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	FilePath   string    `gorm:"size:512;not null" json:"file_path"`
	RecordDate time.Time `gorm:"not null" json:"record_date"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
