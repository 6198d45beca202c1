package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"gorm.io/gorm"
)

// BackfillLockerSessions points every occupied locker at its active session
type BackfillLockerSessions struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewBackfillLockerSessions creates a new migration instance
func NewBackfillLockerSessions(db *gorm.DB, logger coreport.Logger) *BackfillLockerSessions {
	return &BackfillLockerSessions{
		db:     db,
		logger: logger,
	}
}

// Run executes the migration
func (m *BackfillLockerSessions) Run(ctx context.Context) error {
	db := m.db.WithContext(ctx)

	if !db.Migrator().HasColumn("lockers", "current_session_id") {
		if err := db.Exec(`ALTER TABLE lockers ADD COLUMN current_session_id BIGINT`).Error; err != nil {
			m.logger.Error("Failed to add current_session_id column", map[string]any{"error": err.Error()})
			return err
		}
	}

	result := db.Exec(`
		UPDATE lockers
		SET current_session_id = (
			SELECT s.id FROM sessions s
			WHERE s.locker_id = lockers.id AND s.status = 'active'
		)
		WHERE status = 'occupied' AND current_session_id IS NULL`)
	if result.Error != nil {
		m.logger.Error("Failed to backfill locker sessions", map[string]any{"error": result.Error.Error()})
		return result.Error
	}

	m.logger.Info("Backfilled locker session references", map[string]any{
		"lockers": result.RowsAffected,
	})
	return nil
}
