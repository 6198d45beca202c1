package session

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

// EndSession finishes an active session, recomputes the amount when it ends
// early and returns the locker to Available.
func (s *Service) EndSession(ctx context.Context, sessionID uint64, payment entity.PaymentStatus) (result *entity.Session, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpEndSession, start, err) }()

	if _, err := entity.ParsePaymentStatus(string(payment)); err != nil {
		return nil, errs.NewLifecycleError(OpEndSession, sessionID, 0, 0, err)
	}

	// The locker id is needed to pick the guard keys; the record is read
	// again once the keys are held.
	snapshot, err := s.uow.GetSessionRepository(ctx).GetByID(ctx, sessionID)
	if err != nil {
		return nil, errs.NewLifecycleError(OpEndSession, sessionID, 0, 0, err)
	}

	release, err := s.lock(ctx, sessionKey(sessionID), lockerKey(snapshot.LockerID))
	if err != nil {
		return nil, errs.NewLifecycleError(OpEndSession, sessionID, snapshot.LockerID, snapshot.UserID, err)
	}
	defer release()

	var locker *entity.Locker
	var lockerReleased bool
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		sessionRepo := s.uow.GetSessionRepository(txCtx)
		lockerRepo := s.uow.GetLockerRepository(txCtx)

		session, err := sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			return err
		}
		if !session.IsActive() {
			return errs.ErrSessionNotActive
		}

		locker, err = lockerRepo.GetByID(txCtx, session.LockerID)
		if err != nil {
			return err
		}

		now := s.timeProvider.Now()
		session.Finish(now, locker.PricePerHour, payment)
		if err := sessionRepo.Update(txCtx, session); err != nil {
			return err
		}

		lockerReleased, err = s.releaseLocker(txCtx, locker, session.ID, now)
		if err != nil {
			return err
		}

		result = session
		return nil
	})
	if err != nil {
		return nil, errs.NewLifecycleError(OpEndSession, sessionID, snapshot.LockerID, snapshot.UserID, err)
	}

	s.logger.Info("Session ended", map[string]any{
		"session_id":     result.ID,
		"user_id":        result.UserID,
		"locker_id":      result.LockerID,
		"amount_due":     entity.FormatMoney(result.AmountDue),
		"payment_status": string(result.PaymentStatus),
	})

	s.publish(ctx, sessionEvent(event.SessionEnded, result, *result.EndedAt))
	if lockerReleased {
		s.publish(ctx, lockerStatusEvent(locker, result.ID, *result.EndedAt))
	}

	return result, nil
}

// releaseLocker frees the locker when it is held by sessionID, or marked
// occupied with no session reference. A locker pointing at another session
// is left alone.
func (s *Service) releaseLocker(txCtx context.Context, locker *entity.Locker, sessionID uint64, now time.Time) (bool, error) {
	if locker.Status != entity.LockerOccupied {
		return false, nil
	}
	if locker.CurrentSessionID != nil && !locker.HeldBy(sessionID) {
		s.logger.Warn("Locker references a different session, not released", map[string]any{
			"locker_id":          locker.ID,
			"session_id":         sessionID,
			"current_session_id": *locker.CurrentSessionID,
		})
		return false, nil
	}

	locker.Release(now)
	if err := s.uow.GetLockerRepository(txCtx).Update(txCtx, locker); err != nil {
		return false, err
	}
	return true, nil
}
