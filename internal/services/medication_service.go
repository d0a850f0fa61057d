package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

type MedicationService struct {
	db *gorm.DB
}

func NewMedicationService(db *gorm.DB) *MedicationService {
	return &MedicationService{db: db}
}

func (s *MedicationService) ListAll() ([]models.Medication, error) {
	var medications []models.Medication
	if err := s.db.Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return medications, nil
}

// ListByUser returns the medications a user authored. No rows is ErrNotFound.
func (s *MedicationService) ListByUser(userID uuid.UUID) ([]models.Medication, error) {
	var medications []models.Medication
	if err := s.db.Where("user_id = ?", userID).Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("failed to list user medications: %w", err)
	}
	if len(medications) == 0 {
		return nil, ErrNotFound
	}
	return medications, nil
}

// ListForUser merges the shared templates with the user's custom medications.
func (s *MedicationService) ListForUser(userID uuid.UUID) ([]models.Medication, error) {
	var templates []models.Medication
	if err := s.db.Where("is_custom = ?", false).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list template medications: %w", err)
	}

	var custom []models.Medication
	if err := s.db.Where("user_id = ? AND is_custom = ?", userID, true).Find(&custom).Error; err != nil {
		return nil, fmt.Errorf("failed to list custom medications: %w", err)
	}

	return append(templates, custom...), nil
}

func (s *MedicationService) Get(id uuid.UUID) (*models.Medication, error) {
	var medication models.Medication
	if err := s.db.First(&medication, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &medication, nil
}

func (s *MedicationService) Create(req *dto.CreateCatalogItemRequest) (*models.Medication, error) {
	if req.Name == "" {
		return nil, invalidf("name is required")
	}

	medication := models.Medication{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsCustom:    req.IsCustom,
		UserID:      req.UserID,
	}
	if err := s.db.Create(&medication).Error; err != nil {
		return nil, fmt.Errorf("failed to create medication: %w", err)
	}
	return &medication, nil
}

func (s *MedicationService) Update(id, subject uuid.UUID, req *dto.UpdateCatalogItemRequest) (*models.Medication, error) {
	medication, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if medication.UserID != nil && *medication.UserID != subject {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		medication.Name = *req.Name
	}
	if req.Description != nil {
		medication.Description = *req.Description
	}
	if req.IsCustom != nil {
		medication.IsCustom = *req.IsCustom
	}

	if err := s.db.Save(medication).Error; err != nil {
		return nil, fmt.Errorf("failed to update medication: %w", err)
	}
	return medication, nil
}

func (s *MedicationService) Delete(id, subject uuid.UUID) error {
	medication, err := s.Get(id)
	if err != nil {
		return err
	}
	if medication.UserID != nil && *medication.UserID != subject {
		return ErrForbidden
	}
	if err := s.db.Delete(medication).Error; err != nil {
		return fmt.Errorf("failed to delete medication: %w", err)
	}
	return nil
}
