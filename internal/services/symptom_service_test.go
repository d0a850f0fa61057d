package services

import (
	"errors"
	"testing"

	"github.com/medtrack-app/medtrack-backend/internal/dto"
)

func TestListForUserMergesTemplatesAndCustom(t *testing.T) {
	db := newTestDB(t)
	service := NewSymptomService(db)
	user := createTestUser(t, db, "anna@example.com")
	other := createTestUser(t, db, "eve@example.com")

	createTestSymptom(t, db, "Головная боль", nil) // shared template
	createTestSymptom(t, db, "Шум в ушах", &user.ID)
	createTestSymptom(t, db, "Чужой симптом", &other.ID)

	symptoms, err := service.ListForUser(user.ID)
	if err != nil {
		t.Fatalf("ListForUser() unexpected error: %v", err)
	}
	if len(symptoms) != 2 {
		t.Fatalf("got %d symptoms, want template + own custom", len(symptoms))
	}
	for _, s := range symptoms {
		if s.UserID != nil && *s.UserID != user.ID {
			t.Errorf("foreign custom symptom leaked: %+v", s)
		}
	}
}

func TestListByUserEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	service := NewSymptomService(db)
	user := createTestUser(t, db, "anna@example.com")

	if _, err := service.ListByUser(user.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateSymptomRequiresName(t *testing.T) {
	service := NewSymptomService(newTestDB(t))

	if _, err := service.Create(&dto.CreateCatalogItemRequest{}); err == nil {
		t.Fatal("Create() accepted an empty name")
	}
}

func TestUpdateForeignCustomSymptomForbidden(t *testing.T) {
	db := newTestDB(t)
	service := NewSymptomService(db)
	owner := createTestUser(t, db, "anna@example.com")
	intruder := createTestUser(t, db, "eve@example.com")
	symptom := createTestSymptom(t, db, "Шум в ушах", &owner.ID)

	name := "Другое"
	if _, err := service.Update(symptom.ID, intruder.ID, &dto.UpdateCatalogItemRequest{Name: &name}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Update: expected ErrForbidden, got %v", err)
	}
	if err := service.Delete(symptom.ID, intruder.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Delete: expected ErrForbidden, got %v", err)
	}
}

func TestUpdateTemplateSymptomAllowed(t *testing.T) {
	db := newTestDB(t)
	service := NewSymptomService(db)
	user := createTestUser(t, db, "anna@example.com")
	template := createTestSymptom(t, db, "Головная боль", nil)

	description := "Пульсирующая боль"
	updated, err := service.Update(template.ID, user.ID, &dto.UpdateCatalogItemRequest{Description: &description})
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.Description != description {
		t.Errorf("Description = %q, want %q", updated.Description, description)
	}
	if updated.Name != template.Name {
		t.Errorf("Name changed: %q", updated.Name)
	}
}
