package logging

import (
	"log/slog"
	"time"

	"github.com/elifkaracan/vloggy-backend/internal/models"
	"gorm.io/gorm"
)

// StartCleanup runs a daily goroutine that purges system_logs older than
// the configured retention window (LOG_RETENTION, default 30 days).
func StartCleanup(db *gorm.DB, retention time.Duration, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				deleted, err := purgeExpiredLogs(db, retention)
				if err != nil {
					slog.Error("log cleanup failed", "error", err)
				} else if deleted > 0 {
					slog.Info("log cleanup completed", "deleted", deleted)
				}
			case <-done:
				return
			}
		}
	}()
}

func purgeExpiredLogs(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SystemLog{})
	return result.RowsAffected, result.Error
}
