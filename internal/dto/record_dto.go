package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSymptomRecordRequest struct {
	RecordDate time.Time `json:"recordDate"`
	Weight     *int      `json:"weight"`
	UserID     uuid.UUID `json:"userId"`
	SymptomID  uuid.UUID `json:"symptomId"`
}

type CreateMedicationRecordRequest struct {
	RecordDate   time.Time `json:"recordDate"`
	Dosage       string    `json:"dosage"`
	Notes        string    `json:"notes"`
	UserID       uuid.UUID `json:"userId"`
	MedicationID uuid.UUID `json:"medicationId"`
}

// UpdateHealthRecordRequest overwrites only the supplied fields.
type UpdateHealthRecordRequest struct {
	RecordDate *time.Time `json:"recordDate,omitempty"`
	Weight     *int       `json:"weight,omitempty"`
	Dosage     *string    `json:"dosage,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}
