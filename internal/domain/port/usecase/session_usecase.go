package usecase

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// StartSessionRequest carries the input of StartSession
type StartSessionRequest struct {
	UserID               uint64
	LockerID             uint64
	PlannedDurationHours float64
	Items                []string
}

// SweepResult reports what one sweep changed
type SweepResult struct {
	Expired         []*entity.Session
	ReleasedLockers []uint64
	Failed          int
	Skipped         int
}

// SessionUseCase is the Lifecycle Engine
type SessionUseCase interface {
	// StartSession reserves an available locker for the user
	StartSession(ctx context.Context, req StartSessionRequest) (*entity.Session, error)

	// EndSession finishes an active session and frees its locker
	EndSession(ctx context.Context, sessionID uint64, payment entity.PaymentStatus) (*entity.Session, error)

	// SweepExpired expires every active session whose planned end is at or before now
	SweepExpired(ctx context.Context, now time.Time) (*SweepResult, error)

	// ReclaimAbandoned expires sessions past planned end plus grace and releases
	// occupied lockers with no active session
	ReclaimAbandoned(ctx context.Context, now time.Time, grace time.Duration) (*SweepResult, error)

	// GetRemainingTime returns max(0, plannedEnd - now)
	GetRemainingTime(session *entity.Session, now time.Time) time.Duration

	// UnlockLocker opens the locker of the user's active session
	UnlockLocker(ctx context.Context, sessionID, userID uint64, method entity.AccessMethod) (*entity.Locker, error)

	// SettlePayment records the payment outcome of a terminal session
	SettlePayment(ctx context.Context, sessionID, userID uint64, payment entity.PaymentStatus) (*entity.Session, error)

	// GetSession returns a session by ID
	GetSession(ctx context.Context, sessionID uint64) (*entity.Session, error)

	// GetActiveSession returns the user's active session or nil
	GetActiveSession(ctx context.Context, userID uint64) (*entity.Session, error)

	// ListUserSessions returns the user's history, newest first
	ListUserSessions(ctx context.Context, userID uint64) ([]*entity.Session, error)

	// GetUserStatistics summarizes the user's history
	GetUserStatistics(ctx context.Context, userID uint64) (*entity.UserStatistics, error)
}
