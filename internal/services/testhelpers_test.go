package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/config"
	"github.com/medtrack-app/medtrack-backend/internal/database"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func createTestUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{
		ID:        uuid.New(),
		Username:  "testuser",
		Email:     email,
		BirthDate: time.Date(1990, 5, 15, 0, 0, 0, 0, time.UTC),
		Password:  string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func createTestSymptom(t *testing.T, db *gorm.DB, name string, userID *uuid.UUID) models.Symptom {
	t.Helper()

	symptom := models.Symptom{
		ID:       uuid.New(),
		Name:     name,
		IsCustom: userID != nil,
		UserID:   userID,
	}
	if err := db.Create(&symptom).Error; err != nil {
		t.Fatalf("create symptom: %v", err)
	}
	return symptom
}

func createTestMedication(t *testing.T, db *gorm.DB, name string, userID *uuid.UUID) models.Medication {
	t.Helper()

	medication := models.Medication{
		ID:       uuid.New(),
		Name:     name,
		IsCustom: userID != nil,
		UserID:   userID,
	}
	if err := db.Create(&medication).Error; err != nil {
		t.Fatalf("create medication: %v", err)
	}
	return medication
}

func createTestSymptomRecord(t *testing.T, db *gorm.DB, userID, symptomID uuid.UUID, day time.Time, weight int) models.HealthRecord {
	t.Helper()

	record := models.HealthRecord{
		ID:         uuid.New(),
		Kind:       models.RecordKindSymptom,
		RecordDate: day,
		Weight:     &weight,
		UserID:     userID,
		SymptomID:  &symptomID,
	}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("create symptom record: %v", err)
	}
	return record
}
