package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportType identifies what a generated report covers and in which format.
type ReportType string

const (
	ReportSymptoms         ReportType = "symptoms"
	ReportMedications      ReportType = "medications"
	ReportSymptomsExcel    ReportType = "symptoms_excel"
	ReportMedicationsExcel ReportType = "medications_excel"
)

// Report is a generated document over a date range. FilePath points at the
// artifact on disk; the artifact's lifecycle is tied to the row.
type Report struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Type      ReportType `gorm:"size:30;not null" json:"type"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time  `gorm:"type:date;not null" json:"end_date"`
	FilePath  string     `gorm:"size:512;not null" json:"file_path"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
