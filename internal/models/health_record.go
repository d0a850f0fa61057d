package models

import (
	"time"

	"github.com/google/uuid"
)

// RecordKind discriminates the two health-record variants.
type RecordKind string

const (
	RecordKindSymptom    RecordKind = "symptom"
	RecordKindMedication RecordKind = "medication"
)

// HealthRecord is one logged calendar event: either a symptom occurrence
// (Kind=symptom, SymptomID set, Weight 0-5) or a medication intake
// (Kind=medication, MedicationID set, Dosage/Notes). Exactly one of the two
// foreign keys is populated, matching Kind; the services enforce this.
type HealthRecord struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	Kind         RecordKind  `gorm:"size:20;not null;index" json:"kind"`
	RecordDate   time.Time   `gorm:"not null;index" json:"record_date"`
	Weight       *int        `json:"weight,omitempty"`
	Dosage       string      `gorm:"size:255" json:"dosage,omitempty"`
	Notes        string      `gorm:"type:text" json:"notes,omitempty"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	SymptomID    *uuid.UUID  `gorm:"type:uuid;index" json:"symptom_id,omitempty"`
	MedicationID *uuid.UUID  `gorm:"type:uuid;index" json:"medication_id,omitempty"`
	Symptom      *Symptom    `gorm:"foreignKey:SymptomID" json:"symptom,omitempty"`
	Medication   *Medication `gorm:"foreignKey:MedicationID" json:"medication,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
