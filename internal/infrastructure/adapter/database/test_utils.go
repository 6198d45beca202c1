package database

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/model"
	"github.com/shopspring/decimal"
)

// TestDBManager provides a migrated in-memory sqlite database for tests
type TestDBManager struct {
	Manager      *Manager
	Config       *Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
}

// NewTestDBManager connects, migrates and registers cleanup
func NewTestDBManager(t *testing.T, logger coreport.Logger, timeProvider coreport.TimeProvider) *TestDBManager {
	t.Helper()

	config := &Config{
		Driver:          DriverSQLite,
		SQLitePath:      ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: time.Hour,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "error",
		RetryAttempts:   1,
	}

	manager := NewManager(config, logger, timeProvider)
	if _, err := manager.Connect(context.Background()); err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	t.Cleanup(func() {
		if err := manager.Close(); err != nil {
			t.Logf("Warning: Failed to close test database connection: %v", err)
		}
	})

	if err := manager.Migrate(context.Background()); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return &TestDBManager{
		Manager:      manager,
		Config:       config,
		Logger:       logger,
		TimeProvider: timeProvider,
	}
}

// CreateTestLocker inserts a locker row directly and returns its ID
func (m *TestDBManager) CreateTestLocker(t *testing.T, name string, price string, status entity.LockerStatus) uint64 {
	t.Helper()

	now := m.TimeProvider.Now()
	locker := model.Locker{
		Name:         name,
		Status:       string(status),
		PricePerHour: decimal.RequireFromString(price),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := m.Manager.DB().Create(&locker).Error; err != nil {
		t.Fatalf("Failed to create test locker: %v", err)
	}
	return locker.ID
}

// TruncateAllTables empties every domain table
func (m *TestDBManager) TruncateAllTables(t *testing.T) {
	t.Helper()

	for _, table := range []string{"sessions", "lockers", "entity_locks"} {
		if err := m.Manager.DB().Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("Failed to truncate %s: %v", table, err)
		}
	}
}
