package session

import (
	"context"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
)

// StartSession reserves an available locker for the user.
//
// Preconditions are checked in this order and the first failure wins:
// the locker exists, it is available, the user has no active session,
// and the planned duration is in (0, MaxDurationHours].
func (s *Service) StartSession(ctx context.Context, req usecase.StartSessionRequest) (result *entity.Session, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpStartSession, start, err) }()

	if req.UserID == 0 {
		return nil, errs.NewLifecycleError(OpStartSession, 0, req.LockerID, 0, errs.ErrInvalidUserID)
	}

	release, err := s.lock(ctx, lockerKey(req.LockerID), userKey(req.UserID))
	if err != nil {
		return nil, errs.NewLifecycleError(OpStartSession, 0, req.LockerID, req.UserID, err)
	}
	defer release()

	var locker *entity.Locker
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		lockerRepo := s.uow.GetLockerRepository(txCtx)
		sessionRepo := s.uow.GetSessionRepository(txCtx)

		var err error
		locker, err = lockerRepo.GetByID(txCtx, req.LockerID)
		if err != nil {
			return err
		}
		if !locker.IsAvailable() {
			return errs.ErrLockerUnavailable
		}

		active, err := sessionRepo.FindActiveByUser(txCtx, req.UserID)
		if err != nil {
			return err
		}
		if active != nil {
			return errs.ErrSessionAlreadyActive
		}

		if err := entity.ValidateDuration(req.PlannedDurationHours, s.cfg.MaxDurationHours); err != nil {
			return err
		}

		now := s.timeProvider.Now()
		session, err := entity.NewSession(
			req.UserID,
			locker,
			req.PlannedDurationHours,
			s.cfg.MaxDurationHours,
			s.cfg.Currency,
			req.Items,
			now,
		)
		if err != nil {
			return err
		}

		if err := sessionRepo.Create(txCtx, session); err != nil {
			return err
		}

		locker.Occupy(session.ID, now)
		if err := lockerRepo.Update(txCtx, locker); err != nil {
			return err
		}

		result = session
		return nil
	})
	if err != nil {
		return nil, errs.NewLifecycleError(OpStartSession, 0, req.LockerID, req.UserID, err)
	}

	s.logger.Info("Session started", map[string]any{
		"session_id":     result.ID,
		"user_id":        result.UserID,
		"locker_id":      result.LockerID,
		"planned_end_at": result.PlannedEndAt,
		"amount_due":     entity.FormatMoney(result.AmountDue),
	})

	s.publish(ctx, sessionEvent(event.SessionStarted, result, result.StartedAt))
	s.publish(ctx, lockerStatusEvent(locker, result.ID, result.StartedAt))

	return result, nil
}
