package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/medtrack-app/medtrack-backend/internal/models"
)

func newAnalysisTestService(t *testing.T) (*AnalysisService, string) {
	t.Helper()
	staticDir := t.TempDir()
	return NewAnalysisService(newTestDB(t), staticDir), staticDir
}

func uploadTestAnalysis(t *testing.T, service *AnalysisService, user models.User) *models.Analysis {
	t.Helper()
	body := "fake image bytes"
	analysis, err := service.Upload(user.ID, "Анализ крови", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		"blood.png", "image/png", int64(len(body)), strings.NewReader(body))
	if err != nil {
		t.Fatalf("Upload() unexpected error: %v", err)
	}
	return analysis
}

func TestUploadStoresFileAndRow(t *testing.T) {
	service, staticDir := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")

	analysis := uploadTestAnalysis(t, service, user)
	if analysis.UserID != user.ID {
		t.Errorf("UserID = %v, want %v", analysis.UserID, user.ID)
	}
	if !strings.HasSuffix(analysis.FilePath, "blood.png") {
		t.Errorf("FilePath = %q, want the original filename preserved as suffix", analysis.FilePath)
	}

	data, err := os.ReadFile(filepath.Join(staticDir, analysis.FilePath))
	if err != nil {
		t.Fatalf("uploaded file missing: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Errorf("file content = %q", data)
	}
}

func TestUploadRejectsUnsupportedType(t *testing.T) {
	service, _ := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")

	_, err := service.Upload(user.ID, "Отчет", time.Now(), "notes.txt", "text/plain", 10, strings.NewReader("0123456789"))
	if err == nil {
		t.Fatal("Upload() accepted an unsupported content type")
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	service, _ := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")

	_, err := service.Upload(user.ID, "Большой файл", time.Now(), "big.png", "image/png",
		MaxAnalysisFileSize+1, strings.NewReader(""))
	if err == nil {
		t.Fatal("Upload() accepted a file over the size limit")
	}
}

func TestUploadRequiresTitle(t *testing.T) {
	service, _ := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")

	if _, err := service.Upload(user.ID, "", time.Now(), "a.png", "image/png", 1, strings.NewReader("x")); err == nil {
		t.Fatal("Upload() accepted an empty title")
	}
}

func TestAnalysisFileResolvesPathAndType(t *testing.T) {
	service, staticDir := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")
	analysis := uploadTestAnalysis(t, service, user)

	path, contentType, err := service.File(analysis.ID, user.ID)
	if err != nil {
		t.Fatalf("File() unexpected error: %v", err)
	}
	if path != filepath.Join(staticDir, analysis.FilePath) {
		t.Errorf("path = %q", path)
	}
	if contentType != "image/png" {
		t.Errorf("contentType = %q, want image/png", contentType)
	}
}

func TestAnalysisOwnershipChecks(t *testing.T) {
	service, _ := newAnalysisTestService(t)
	owner := createTestUser(t, service.db, "anna@example.com")
	intruder := createTestUser(t, service.db, "eve@example.com")
	analysis := uploadTestAnalysis(t, service, owner)

	if _, _, err := service.File(analysis.ID, intruder.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("File: expected ErrForbidden, got %v", err)
	}
	if err := service.Delete(analysis.ID, intruder.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("Delete: expected ErrForbidden, got %v", err)
	}
}

func TestAnalysisDeleteRemovesFile(t *testing.T) {
	service, staticDir := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")
	analysis := uploadTestAnalysis(t, service, user)

	if err := service.Delete(analysis.ID, user.ID); err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(staticDir, analysis.FilePath)); !os.IsNotExist(err) {
		t.Error("backing file must be removed with the row")
	}

	analyses, err := service.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(analyses) != 0 {
		t.Errorf("got %d analyses after delete, want 0", len(analyses))
	}
}

func TestAnalysisDeleteToleratesMissingFile(t *testing.T) {
	service, staticDir := newAnalysisTestService(t)
	user := createTestUser(t, service.db, "anna@example.com")
	analysis := uploadTestAnalysis(t, service, user)

	if err := os.Remove(filepath.Join(staticDir, analysis.FilePath)); err != nil {
		t.Fatalf("remove file: %v", err)
	}
	if err := service.Delete(analysis.ID, user.ID); err != nil {
		t.Fatalf("Delete() must tolerate a missing file, got %v", err)
	}
}
