package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

type SymptomService struct {
	db *gorm.DB
}

func NewSymptomService(db *gorm.DB) *SymptomService {
	return &SymptomService{db: db}
}

func (s *SymptomService) ListAll() ([]models.Symptom, error) {
	var symptoms []models.Symptom
	if err := s.db.Find(&symptoms).Error; err != nil {
		return nil, fmt.Errorf("failed to list symptoms: %w", err)
	}
	return symptoms, nil
}

// ListByUser returns the symptoms a user authored. No rows is ErrNotFound.
func (s *SymptomService) ListByUser(userID uuid.UUID) ([]models.Symptom, error) {
	var symptoms []models.Symptom
	if err := s.db.Where("user_id = ?", userID).Find(&symptoms).Error; err != nil {
		return nil, fmt.Errorf("failed to list user symptoms: %w", err)
	}
	if len(symptoms) == 0 {
		return nil, ErrNotFound
	}
	return symptoms, nil
}

// ListForUser merges the shared templates with the user's custom symptoms.
func (s *SymptomService) ListForUser(userID uuid.UUID) ([]models.Symptom, error) {
	var templates []models.Symptom
	if err := s.db.Where("is_custom = ?", false).Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to list template symptoms: %w", err)
	}

	var custom []models.Symptom
	if err := s.db.Where("user_id = ? AND is_custom = ?", userID, true).Find(&custom).Error; err != nil {
		return nil, fmt.Errorf("failed to list custom symptoms: %w", err)
	}

	return append(templates, custom...), nil
}

func (s *SymptomService) Get(id uuid.UUID) (*models.Symptom, error) {
	var symptom models.Symptom
	if err := s.db.First(&symptom, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &symptom, nil
}

func (s *SymptomService) Create(req *dto.CreateCatalogItemRequest) (*models.Symptom, error) {
	if req.Name == "" {
		return nil, invalidf("name is required")
	}

	symptom := models.Symptom{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IsCustom:    req.IsCustom,
		UserID:      req.UserID,
	}
	if err := s.db.Create(&symptom).Error; err != nil {
		return nil, fmt.Errorf("failed to create symptom: %w", err)
	}
	return &symptom, nil
}

func (s *SymptomService) Update(id, subject uuid.UUID, req *dto.UpdateCatalogItemRequest) (*models.Symptom, error) {
	symptom, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if symptom.UserID != nil && *symptom.UserID != subject {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		symptom.Name = *req.Name
	}
	if req.Description != nil {
		symptom.Description = *req.Description
	}
	if req.IsCustom != nil {
		symptom.IsCustom = *req.IsCustom
	}

	if err := s.db.Save(symptom).Error; err != nil {
		return nil, fmt.Errorf("failed to update symptom: %w", err)
	}
	return symptom, nil
}

func (s *SymptomService) Delete(id, subject uuid.UUID) error {
	symptom, err := s.Get(id)
	if err != nil {
		return err
	}
	if symptom.UserID != nil && *symptom.UserID != subject {
		return ErrForbidden
	}
	if err := s.db.Delete(symptom).Error; err != nil {
		return fmt.Errorf("failed to delete symptom: %w", err)
	}
	return nil
}
