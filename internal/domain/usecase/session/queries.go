package session

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
)

// GetRemainingTime returns max(0, PlannedEndAt - now). It reads nothing.
func (s *Service) GetRemainingTime(session *entity.Session, now time.Time) time.Duration {
	return session.RemainingTime(now)
}

// GetSession returns a session by ID
func (s *Service) GetSession(ctx context.Context, sessionID uint64) (*entity.Session, error) {
	return s.uow.GetSessionRepository(ctx).GetByID(ctx, sessionID)
}

// GetActiveSession returns the user's active session, or nil when there is none
func (s *Service) GetActiveSession(ctx context.Context, userID uint64) (*entity.Session, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.uow.GetSessionRepository(ctx).FindActiveByUser(ctx, userID)
}

// ListUserSessions returns the user's sessions, newest first
func (s *Service) ListUserSessions(ctx context.Context, userID uint64) ([]*entity.Session, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	return s.uow.GetSessionRepository(ctx).ListByUser(ctx, userID)
}

// GetUserStatistics summarizes the user's session history
func (s *Service) GetUserStatistics(ctx context.Context, userID uint64) (*entity.UserStatistics, error) {
	sessions, err := s.ListUserSessions(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := entity.SummarizeSessions(userID, sessions, s.timeProvider.Now())
	return &stats, nil
}
