package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

type RecordService struct {
	db *gorm.DB
}

func NewRecordService(db *gorm.DB) *RecordService {
	return &RecordService{db: db}
}

func (s *RecordService) ListAll() ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list health records: %w", err)
	}
	return records, nil
}

// ListByUser returns all of a user's records with their category preloaded.
func (s *RecordService) ListByUser(userID uuid.UUID) ([]models.HealthRecord, error) {
	var records []models.HealthRecord
	err := s.db.
		Preload("Symptom").
		Preload("Medication").
		Where("user_id = ?", userID).
		Order("record_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user health records: %w", err)
	}
	return records, nil
}

// ListByUserAndDate returns a user's records on one calendar day.
// No rows is ErrNotFound.
func (s *RecordService) ListByUserAndDate(userID uuid.UUID, day time.Time) ([]models.HealthRecord, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	var records []models.HealthRecord
	err := s.db.
		Preload("Symptom").
		Preload("Medication").
		Where("user_id = ? AND record_date >= ? AND record_date < ?", userID, dayStart, dayEnd).
		Order("record_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list health records by date: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNotFound
	}
	return records, nil
}

func (s *RecordService) Get(id uuid.UUID) (*models.HealthRecord, error) {
	var record models.HealthRecord
	if err := s.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &record, nil
}

// CreateSymptomRecord logs a symptom occurrence. The medication foreign key
// always stays empty for this variant.
func (s *RecordService) CreateSymptomRecord(subject uuid.UUID, req *dto.CreateSymptomRecordRequest) (*models.HealthRecord, error) {
	if req.UserID != subject {
		return nil, ErrForbidden
	}
	if req.SymptomID == uuid.Nil {
		return nil, invalidf("symptomId is required")
	}
	if req.Weight != nil && (*req.Weight < 0 || *req.Weight > 5) {
		return nil, invalidf("weight must be between 0 and 5")
	}

	symptomID := req.SymptomID
	record := models.HealthRecord{
		ID:         uuid.New(),
		Kind:       models.RecordKindSymptom,
		RecordDate: req.RecordDate,
		Weight:     req.Weight,
		UserID:     req.UserID,
		SymptomID:  &symptomID,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create symptom record: %w", err)
	}
	return &record, nil
}

// CreateMedicationRecord logs a medication intake. The symptom foreign key
// always stays empty for this variant.
func (s *RecordService) CreateMedicationRecord(subject uuid.UUID, req *dto.CreateMedicationRecordRequest) (*models.HealthRecord, error) {
	if req.UserID != subject {
		return nil, ErrForbidden
	}
	if req.MedicationID == uuid.Nil {
		return nil, invalidf("medicationId is required")
	}

	medicationID := req.MedicationID
	record := models.HealthRecord{
		ID:           uuid.New(),
		Kind:         models.RecordKindMedication,
		RecordDate:   req.RecordDate,
		Dosage:       req.Dosage,
		Notes:        req.Notes,
		UserID:       req.UserID,
		MedicationID: &medicationID,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to create medication record: %w", err)
	}
	return &record, nil
}

// Update overwrites only the supplied fields.
func (s *RecordService) Update(id, subject uuid.UUID, req *dto.UpdateHealthRecordRequest) (*models.HealthRecord, error) {
	record, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if record.UserID != subject {
		return nil, ErrForbidden
	}

	if req.RecordDate != nil {
		record.RecordDate = *req.RecordDate
	}
	if req.Weight != nil {
		if *req.Weight < 0 || *req.Weight > 5 {
			return nil, invalidf("weight must be between 0 and 5")
		}
		record.Weight = req.Weight
	}
	if req.Dosage != nil {
		record.Dosage = *req.Dosage
	}
	if req.Notes != nil {
		record.Notes = *req.Notes
	}

	if err := s.db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update health record: %w", err)
	}
	return record, nil
}

func (s *RecordService) Delete(id, subject uuid.UUID) error {
	record, err := s.Get(id)
	if err != nil {
		return err
	}
	if record.UserID != subject {
		return ErrForbidden
	}
	if err := s.db.Delete(record).Error; err != nil {
		return fmt.Errorf("failed to delete health record: %w", err)
	}
	return nil
}
