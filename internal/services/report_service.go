package services

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"github.com/medtrack-app/medtrack-backend/internal/reportgen"
	"gorm.io/gorm"
)

// ErrNoRecords means the user has no matching records in the requested
// range; no file is produced.
var ErrNoRecords = errors.New("no records found for this user in the given period")

type ReportService struct {
	db        *gorm.DB
	staticDir string
	fontPath  string
}

func NewReportService(db *gorm.DB, staticDir, fontPath string) *ReportService {
	return &ReportService{db: db, staticDir: staticDir, fontPath: fontPath}
}

// Generate builds a report document for the user's records in [start, end],
// writes it under the static directory and persists the Report row. The row
// insert happens after the file write; if it fails the file is removed.
func (s *ReportService) Generate(subject uuid.UUID, kind reportgen.Kind, format reportgen.Format, start, end time.Time) (*models.Report, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", subject).Error; err != nil {
		return nil, ErrUserNotFound
	}

	entries, err := s.fetchEntries(subject, kind, start, end)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, ErrNoRecords
	}

	input := reportgen.Input{
		Kind:      kind,
		Username:  user.Username,
		Age:       user.Age(),
		StartDate: start,
		EndDate:   end,
		Entries:   entries,
	}
	summary := reportgen.Summarize(kind, entries)

	pie, err := reportgen.PieChartPNG(summary.Frequencies)
	if err != nil {
		return nil, err
	}
	var line []byte
	if kind == reportgen.KindSymptoms {
		if line, err = reportgen.SeverityLinePNG(entries); err != nil {
			return nil, err
		}
	}

	var document []byte
	ext := ".pdf"
	if format == reportgen.FormatExcel {
		ext = ".xlsx"
		document, err = reportgen.BuildExcel(input, summary, pie, line)
	} else {
		document, err = reportgen.BuildPDF(input, summary, pie, line, s.fontPath)
	}
	if err != nil {
		return nil, err
	}

	relDir := "reports"
	if err := os.MkdirAll(filepath.Join(s.staticDir, relDir), 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare reports directory: %w", err)
	}

	name := fmt.Sprintf("%s_report_%s_%d%s", kind, subject, time.Now().UnixMilli(), ext)
	relPath := filepath.Join(relDir, name)
	absPath := filepath.Join(s.staticDir, relPath)
	if err := os.WriteFile(absPath, document, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}

	report := models.Report{
		ID:        uuid.New(),
		Type:      reportType(kind, format),
		StartDate: start,
		EndDate:   end,
		FilePath:  relPath,
		UserID:    subject,
	}
	if err := s.db.Create(&report).Error; err != nil {
		os.Remove(absPath)
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return &report, nil
}

// ListByUser returns a user's reports. No rows is ErrNotFound.
func (s *ReportService) ListByUser(userID uuid.UUID) ([]models.Report, error) {
	var reports []models.Report
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	if len(reports) == 0 {
		return nil, ErrNotFound
	}
	return reports, nil
}

// File resolves the artifact path and content type, verifying ownership.
func (s *ReportService) File(id, subject uuid.UUID) (string, string, error) {
	report, err := s.get(id, subject)
	if err != nil {
		return "", "", err
	}

	absPath := filepath.Join(s.staticDir, report.FilePath)
	if _, err := os.Stat(absPath); err != nil {
		return "", "", ErrNotFound
	}

	contentType := "application/pdf"
	if filepath.Ext(absPath) == ".xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return absPath, contentType, nil
}

// Delete removes the row and its backing artifact.
func (s *ReportService) Delete(id, subject uuid.UUID) error {
	report, err := s.get(id, subject)
	if err != nil {
		return err
	}

	absPath := filepath.Join(s.staticDir, report.FilePath)
	if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove report file", "path", absPath, "error", err)
	}

	if err := s.db.Delete(report).Error; err != nil {
		return fmt.Errorf("failed to delete report: %w", err)
	}
	return nil
}

func (s *ReportService) get(id, subject uuid.UUID) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	if report.UserID != subject {
		return nil, ErrForbidden
	}
	return &report, nil
}

func (s *ReportService) fetchEntries(userID uuid.UUID, kind reportgen.Kind, start, end time.Time) ([]reportgen.Entry, error) {
	query := s.db.
		Where("user_id = ? AND record_date >= ? AND record_date < ?", userID, start, end.AddDate(0, 0, 1)).
		Order("record_date ASC")

	var records []models.HealthRecord
	if kind == reportgen.KindSymptoms {
		query = query.Where("symptom_id IS NOT NULL").Preload("Symptom")
	} else {
		query = query.Where("medication_id IS NOT NULL").Preload("Medication")
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch report records: %w", err)
	}

	entries := make([]reportgen.Entry, 0, len(records))
	for _, r := range records {
		e := reportgen.Entry{Date: r.RecordDate, Weight: r.Weight, Dosage: r.Dosage, Quantity: r.Notes}
		switch {
		case kind == reportgen.KindSymptoms && r.Symptom != nil:
			e.Category = r.Symptom.Name
		case kind == reportgen.KindMedications && r.Medication != nil:
			e.Category = r.Medication.Name
		default:
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func reportType(kind reportgen.Kind, format reportgen.Format) models.ReportType {
	switch {
	case kind == reportgen.KindSymptoms && format == reportgen.FormatExcel:
		return models.ReportSymptomsExcel
	case kind == reportgen.KindSymptoms:
		return models.ReportSymptoms
	case format == reportgen.FormatExcel:
		return models.ReportMedicationsExcel
	default:
		return models.ReportMedications
	}
}
