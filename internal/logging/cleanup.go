package logging

import (
	"log/slog"
	"time"

	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
)

const (
	logRetention    = 30 * 24 * time.Hour
	cleanupInterval = 24 * time.Hour
)

// StartCleanup prunes system_logs older than the retention window. It sweeps
// once right away, then daily until done is closed.
func StartCleanup(db *gorm.DB, done chan struct{}) {
	go func() {
		sweepLogs(db)
		ticker := time.NewTicker(cleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				sweepLogs(db)
			case <-done:
				return
			}
		}
	}()
}

func sweepLogs(db *gorm.DB) {
	cutoff := time.Now().Add(-logRetention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	if result.Error != nil {
		slog.Error("log cleanup failed", "error", result.Error)
	} else if result.RowsAffected > 0 {
		slog.Info("log cleanup completed", "deleted", result.RowsAffected)
	}
}
