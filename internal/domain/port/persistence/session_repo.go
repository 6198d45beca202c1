package persistence

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// SessionRepository defines the Session Store
type SessionRepository interface {
	// Create assigns a fresh ID to the session and persists it
	//
	// Possible errors:
	// - ErrSessionAlreadyActive: If the user or locker already has an active session
	// - ErrStorageUnavailable: If the database fails
	Create(ctx context.Context, session *entity.Session) error

	// GetByID retrieves a session by ID
	//
	// Possible errors:
	// - ErrSessionNotFound: If the session doesn't exist
	// - ErrStorageUnavailable: If the database fails
	GetByID(ctx context.Context, id uint64) (*entity.Session, error)

	// FindActiveByUser returns the user's active session, or nil when there is none
	FindActiveByUser(ctx context.Context, userID uint64) (*entity.Session, error)

	// FindActiveByLocker returns the active session on a locker, or nil when there is none
	FindActiveByLocker(ctx context.Context, lockerID uint64) (*entity.Session, error)

	// Update overwrites the stored record with the same ID
	//
	// Possible errors:
	// - ErrSessionNotFound: If the session doesn't exist
	// - ErrStorageUnavailable: If the database fails
	Update(ctx context.Context, session *entity.Session) error

	// ListByUser returns the user's full history, newest first
	ListByUser(ctx context.Context, userID uint64) ([]*entity.Session, error)

	// ListActive returns every active session
	ListActive(ctx context.Context) ([]*entity.Session, error)

	// ListActiveEndedBefore returns active sessions whose planned end is at or before cutoff
	ListActiveEndedBefore(ctx context.Context, cutoff time.Time) ([]*entity.Session, error)
}
