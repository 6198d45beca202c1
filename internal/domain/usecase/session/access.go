package session

import (
	"context"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

// UnlockLocker opens the door of the locker rented by an active session.
// Only the session owner may unlock, and only before the planned end.
func (s *Service) UnlockLocker(ctx context.Context, sessionID, userID uint64, method entity.AccessMethod) (result *entity.Locker, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpUnlockLocker, start, err) }()

	if _, err := entity.ParseAccessMethod(string(method)); err != nil {
		return nil, errs.NewLifecycleError(OpUnlockLocker, sessionID, 0, userID, err)
	}

	snapshot, err := s.uow.GetSessionRepository(ctx).GetByID(ctx, sessionID)
	if err != nil {
		return nil, errs.NewLifecycleError(OpUnlockLocker, sessionID, 0, userID, err)
	}

	release, err := s.lock(ctx, sessionKey(sessionID), lockerKey(snapshot.LockerID))
	if err != nil {
		return nil, errs.NewLifecycleError(OpUnlockLocker, sessionID, snapshot.LockerID, userID, err)
	}
	defer release()

	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		session, err := s.uow.GetSessionRepository(txCtx).GetByID(txCtx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return errs.ErrSessionNotOwned
		}

		now := s.timeProvider.Now()
		if !session.IsActive() || session.IsOverdue(now) {
			return errs.ErrSessionNotActive
		}

		lockerRepo := s.uow.GetLockerRepository(txCtx)
		locker, err := lockerRepo.GetByID(txCtx, session.LockerID)
		if err != nil {
			return err
		}

		locker.MarkOpened(now)
		if err := lockerRepo.Update(txCtx, locker); err != nil {
			return err
		}

		result = locker
		return nil
	})
	if err != nil {
		return nil, errs.NewLifecycleError(OpUnlockLocker, sessionID, snapshot.LockerID, userID, err)
	}

	s.logger.Info("Locker unlocked", map[string]any{
		"session_id": sessionID,
		"locker_id":  result.ID,
		"user_id":    userID,
		"method":     string(method),
	})

	s.publish(ctx, event.Event{
		Type:       event.LockerOpened,
		OccurredAt: *result.LastOpenedAt,
		UserID:     userID,
		SessionID:  sessionID,
		LockerID:   result.ID,
		Payload:    map[string]any{"method": string(method)},
	})

	return result, nil
}

// SettlePayment records the payment outcome of a finished or expired session
func (s *Service) SettlePayment(ctx context.Context, sessionID, userID uint64, payment entity.PaymentStatus) (result *entity.Session, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpSettlePayment, start, err) }()

	if _, err := entity.ParsePaymentStatus(string(payment)); err != nil {
		return nil, errs.NewLifecycleError(OpSettlePayment, sessionID, 0, userID, err)
	}

	release, err := s.lock(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, errs.NewLifecycleError(OpSettlePayment, sessionID, 0, userID, err)
	}
	defer release()

	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		sessionRepo := s.uow.GetSessionRepository(txCtx)

		session, err := sessionRepo.GetByID(txCtx, sessionID)
		if err != nil {
			return err
		}
		if session.UserID != userID {
			return errs.ErrSessionNotOwned
		}
		if err := session.SettlePayment(payment, s.timeProvider.Now()); err != nil {
			return err
		}
		if err := sessionRepo.Update(txCtx, session); err != nil {
			return err
		}

		result = session
		return nil
	})
	if err != nil {
		return nil, errs.NewLifecycleError(OpSettlePayment, sessionID, 0, userID, err)
	}

	s.publish(ctx, sessionEvent(event.PaymentSettled, result, result.UpdatedAt))
	return result, nil
}
