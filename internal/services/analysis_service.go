package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

// MaxAnalysisFileSize caps uploaded analysis files at 10MB.
const MaxAnalysisFileSize = 10 * 1024 * 1024

var analysisContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"application/pdf": true,
}

type AnalysisService struct {
	db        *gorm.DB
	staticDir string
}

func NewAnalysisService(db *gorm.DB, staticDir string) *AnalysisService {
	return &AnalysisService{db: db, staticDir: staticDir}
}

// Upload stores an analysis file and its row. The row references the file by
// a path relative to the static directory; a failed insert removes the file
// again so no orphan is left behind.
func (s *AnalysisService) Upload(subject uuid.UUID, title string, recordDate time.Time, filename, contentType string, size int64, src io.Reader) (*models.Analysis, error) {
	if title == "" {
		return nil, invalidf("title is required")
	}
	if size > MaxAnalysisFileSize {
		return nil, invalidf("file exceeds the 10MB limit")
	}
	if !analysisContentTypes[contentType] {
		return nil, invalidf("unsupported file type, only JPEG, PNG and PDF are allowed")
	}

	relDir := filepath.Join("uploads", "analyses")
	absDir := filepath.Join(s.staticDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	unique := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String()[:8], filepath.Base(filename))
	relPath := filepath.Join(relDir, unique)
	absPath := filepath.Join(s.staticDir, relDir, unique)

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	if _, err := io.Copy(dst, io.LimitReader(src, MaxAnalysisFileSize+1)); err != nil {
		dst.Close()
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	analysis := models.Analysis{
		ID:         uuid.New(),
		Title:      title,
		FilePath:   relPath,
		RecordDate: recordDate,
		UserID:     subject,
	}
	if err := s.db.Create(&analysis).Error; err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}

	return &analysis, nil
}

func (s *AnalysisService) ListByUser(userID uuid.UUID) ([]models.Analysis, error) {
	var analyses []models.Analysis
	err := s.db.Where("user_id = ?", userID).Order("record_date ASC").Find(&analyses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, nil
}

// File resolves the on-disk path and content type of an analysis file,
// verifying ownership first.
func (s *AnalysisService) File(id, subject uuid.UUID) (string, string, error) {
	analysis, err := s.get(id, subject)
	if err != nil {
		return "", "", err
	}

	absPath := filepath.Join(s.staticDir, analysis.FilePath)
	if _, err := os.Stat(absPath); err != nil {
		return "", "", ErrNotFound
	}
	return absPath, contentTypeByExtension(absPath), nil
}

// Delete removes the row and its backing file.
func (s *AnalysisService) Delete(id, subject uuid.UUID) error {
	analysis, err := s.get(id, subject)
	if err != nil {
		return err
	}

	absPath := filepath.Join(s.staticDir, analysis.FilePath)
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove analysis file", "path", absPath, "error", err)
	}

	if err := s.db.Delete(analysis).Error; err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	return nil
}

func (s *AnalysisService) get(id, subject uuid.UUID) (*models.Analysis, error) {
	var analysis models.Analysis
	if err := s.db.First(&analysis, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	if analysis.UserID != subject {
		return nil, ErrForbidden
	}
	return &analysis, nil
}

func contentTypeByExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
