package logging

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := levelFromEnv(tt.value); got != tt.want {
			t.Errorf("levelFromEnv(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

type recordingHandler struct {
	level   slog.Level
	records []slog.Record
	err     error
}

func (r *recordingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= r.level
}

func (r *recordingHandler) Handle(_ context.Context, record slog.Record) error {
	r.records = append(r.records, record)
	return r.err
}

func (r *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *recordingHandler) WithGroup(string) slog.Handler      { return r }

func TestMultiHandlerFanOut(t *testing.T) {
	stdout := &recordingHandler{level: slog.LevelInfo}
	db := &recordingHandler{level: slog.LevelError}
	multi := NewMultiHandler(stdout, db)

	ctx := context.Background()
	if !multi.Enabled(ctx, slog.LevelInfo) {
		t.Fatal("info should be enabled while one target accepts it")
	}

	info := slog.NewRecord(time.Now(), slog.LevelInfo, "started", 0)
	if err := multi.Handle(ctx, info); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	errRec := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	if err := multi.Handle(ctx, errRec); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	if len(stdout.records) != 2 {
		t.Errorf("stdout target got %d records, want 2", len(stdout.records))
	}
	if len(db.records) != 1 {
		t.Errorf("error-level target got %d records, want 1", len(db.records))
	}
}

func TestMultiHandlerKeepsDeliveringOnError(t *testing.T) {
	failing := &recordingHandler{level: slog.LevelInfo, err: errors.New("insert failed")}
	healthy := &recordingHandler{level: slog.LevelInfo}
	multi := NewMultiHandler(failing, healthy)

	record := slog.NewRecord(time.Now(), slog.LevelError, "boom", 0)
	err := multi.Handle(context.Background(), record)
	if err == nil {
		t.Fatal("expected the failing target's error to surface")
	}
	if len(healthy.records) != 1 {
		t.Errorf("healthy target got %d records, want 1", len(healthy.records))
	}
}

func TestSweepLogsKeepsRecentEntries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "logs.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	if err := db.AutoMigrate(&models.SystemLog{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	stale := models.SystemLog{ID: uuid.New(), Timestamp: time.Now().Add(-logRetention - time.Hour), Level: "ERROR", Message: "old"}
	fresh := models.SystemLog{ID: uuid.New(), Timestamp: time.Now().Add(-time.Hour), Level: "ERROR", Message: "recent"}
	if err := db.Create(&stale).Error; err != nil {
		t.Fatalf("create stale: %v", err)
	}
	if err := db.Create(&fresh).Error; err != nil {
		t.Fatalf("create fresh: %v", err)
	}

	sweepLogs(db)

	var remaining []models.SystemLog
	if err := db.Find(&remaining).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Message != "recent" {
		t.Errorf("remaining = %+v, want only the recent entry", remaining)
	}
}
