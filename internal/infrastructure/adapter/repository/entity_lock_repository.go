package repository

import (
	"context"
	"time"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// EntityLockRepository stores lifecycle leases in the entity_locks table
type EntityLockRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

var _ persistence.EntityLockRepository = (*EntityLockRepository)(nil)

// NewEntityLockRepository creates a new EntityLockRepository instance
func NewEntityLockRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *EntityLockRepository {
	return &EntityLockRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// TryAcquire inserts the lease or takes over an expired one in a single statement.
// Re-acquiring a lease already held by owner extends it.
func (r *EntityLockRepository) TryAcquire(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error) {
	now := r.timeProvider.Now()
	expiresAt := now.Add(ttl)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO entity_locks (lock_key, owner, acquired_at, expires_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (lock_key) DO UPDATE
		SET owner = excluded.owner,
		    acquired_at = excluded.acquired_at,
		    expires_at = excluded.expires_at
		WHERE entity_locks.expires_at <= ? OR entity_locks.owner = excluded.owner`,
		key, owner, now, expiresAt,
		now,
	)

	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return false, nil
		}
		if !isContextError(result.Error) {
			r.logger.Error("Database error acquiring lease", map[string]any{
				"lock_key": key,
				"error":    result.Error.Error(),
			})
		}
		return false, errs.NewStorageError("acquire lease", result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.logger.Debug("Lease acquired", map[string]any{
		"lock_key":   key,
		"owner":      owner,
		"expires_at": expiresAt,
	})
	return true, nil
}

// Release deletes the lease if owner still holds it. A lease taken over after
// expiry belongs to someone else and is left in place.
func (r *EntityLockRepository) Release(ctx context.Context, key string, owner string) error {
	result := r.db.WithContext(ctx).
		Where("lock_key = ? AND owner = ?", key, owner).
		Delete(&model.EntityLock{})

	if result.Error != nil {
		r.logger.Warn("Failed to release lease, it will expire on its own", map[string]any{
			"lock_key": key,
			"error":    result.Error.Error(),
		})
		return errs.NewStorageError("release lease", result.Error)
	}

	if result.RowsAffected == 0 {
		r.logger.Debug("No lease to release, it may have expired", map[string]any{
			"lock_key": key,
		})
	}
	return nil
}

// PurgeExpired removes leases whose expiry is before now
func (r *EntityLockRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&model.EntityLock{})
	if result.Error != nil {
		return 0, r.errorClassifier.ToDomain("purge expired leases", result.Error, nil)
	}

	if result.RowsAffected > 0 {
		r.logger.Info("Expired leases removed", map[string]any{
			"removed": result.RowsAffected,
		})
	}
	return result.RowsAffected, nil
}
