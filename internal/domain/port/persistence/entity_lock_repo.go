package persistence

import (
	"context"
	"time"
)

// EntityLockRepository manages lease rows that serialize lifecycle operations
// across service instances
type EntityLockRepository interface {
	// TryAcquire takes the lease on key for owner if it is free or expired
	// Returns false without error when another owner holds a live lease
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the database fails
	TryAcquire(ctx context.Context, key string, owner string, ttl time.Duration) (bool, error)

	// Release drops the lease on key if owner still holds it
	Release(ctx context.Context, key string, owner string) error

	// PurgeExpired deletes leases that expired before now and returns how many were removed
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
