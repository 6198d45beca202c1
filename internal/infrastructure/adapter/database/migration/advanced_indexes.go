package migration

import (
	"context"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes and table settings.
// Other dialects skip it.
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

func (m *AdvancedIndexManager) isPostgres() bool {
	return m.db.Dialector.Name() == "postgres"
}

// CreateAdvancedIndexes creates BRIN and partial indexes for the sweeper and history queries
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}

	m.logger.Info("Creating advanced PostgreSQL indexes", nil)
	db := m.db.WithContext(ctx)

	// The sweeper only ever scans active sessions by planned end
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sessions_active_planned_end
		ON sessions (planned_end_at)
		WHERE status = 'active'
	`).Error; err != nil {
		m.logger.Error("Failed to create partial index on active sessions", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	// started_at grows with insertion order
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_sessions_started_at_brin
		ON sessions USING BRIN (started_at)
		WITH (pages_per_range = 32)
	`).Error; err != nil {
		m.logger.Error("Failed to create BRIN index on started_at", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	return nil
}

// CreatePerformanceTweaks applies PostgreSQL storage settings. Failures are logged only.
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	if !m.isPostgres() {
		return nil
	}

	db := m.db.WithContext(ctx)

	// sessions and lockers are updated in place on every end and sweep
	for _, stmt := range []string{
		`ALTER TABLE sessions SET (fillfactor = 90)`,
		`ALTER TABLE lockers SET (fillfactor = 80)`,
		`ALTER TABLE sessions ALTER COLUMN user_id SET STATISTICS 1000`,
	} {
		if err := db.Exec(stmt).Error; err != nil {
			m.logger.Warn("Failed to apply PostgreSQL tweak", map[string]any{
				"statement": stmt,
				"error":     err.Error(),
			})
		}
	}

	return nil
}
