package session

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
)

// Expiry reasons reported to metrics
const (
	reasonSweep   = "sweep"
	reasonReclaim = "reclaim"
)

type expireOutcome int

const (
	outcomeExpired expireOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// SweepExpired moves every active session with now >= PlannedEndAt to Expired,
// sets EndedAt to the planned end, keeps the amount and releases the locker.
// Running it again with the same now changes nothing.
func (s *Service) SweepExpired(ctx context.Context, now time.Time) (result *usecase.SweepResult, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpSweepExpired, start, err) }()

	active, err := s.uow.GetSessionRepository(ctx).ListActive(ctx)
	if err != nil {
		return nil, errs.NewLifecycleError(OpSweepExpired, 0, 0, 0, err)
	}

	result = &usecase.SweepResult{}
	remaining := 0
	for _, snapshot := range active {
		if !snapshot.IsOverdue(now) {
			remaining++
			continue
		}
		s.expireInto(ctx, result, snapshot, now, now)
	}

	if s.metrics != nil {
		s.metrics.SetActiveSessions(remaining + result.Failed)
		s.metrics.SessionsExpired(reasonSweep, len(result.Expired))
	}

	if len(result.Expired) > 0 || result.Failed > 0 {
		s.logger.Info("Expiry sweep completed", map[string]any{
			"expired": len(result.Expired),
			"failed":  result.Failed,
			"skipped": result.Skipped,
		})
	}

	return result, nil
}

// ReclaimAbandoned is the coarse secondary sweep. It expires sessions whose
// planned end is more than grace in the past and releases occupied lockers
// that no active session references.
func (s *Service) ReclaimAbandoned(ctx context.Context, now time.Time, grace time.Duration) (result *usecase.SweepResult, err error) {
	start := s.timeProvider.Now()
	defer func() { s.finish(OpReclaimAbandoned, start, err) }()

	if grace < 0 {
		grace = 0
	}
	cutoff := now.Add(-grace)

	abandoned, err := s.uow.GetSessionRepository(ctx).ListActiveEndedBefore(ctx, cutoff)
	if err != nil {
		return nil, errs.NewLifecycleError(OpReclaimAbandoned, 0, 0, 0, err)
	}

	result = &usecase.SweepResult{}
	for _, snapshot := range abandoned {
		s.expireInto(ctx, result, snapshot, now, cutoff)
	}

	lockers, err := s.uow.GetLockerRepository(ctx).ListAll(ctx)
	if err != nil {
		return result, errs.NewLifecycleError(OpReclaimAbandoned, 0, 0, 0, err)
	}
	for _, l := range lockers {
		if l.Status != entity.LockerOccupied {
			continue
		}
		released, err := s.reconcileLocker(ctx, l.ID, now)
		if err != nil {
			result.Failed++
			s.logger.Error("Failed to reconcile locker", map[string]any{
				"locker_id": l.ID,
				"error":     err.Error(),
			})
			continue
		}
		if released != nil {
			result.ReleasedLockers = append(result.ReleasedLockers, released.ID)
			s.publish(ctx, lockerStatusEvent(released, 0, now))
		}
	}

	if s.metrics != nil {
		s.metrics.SessionsExpired(reasonReclaim, len(result.Expired))
		s.metrics.LockersReconciled(len(result.ReleasedLockers))
	}

	s.logger.Info("Reclaim sweep completed", map[string]any{
		"expired":          len(result.Expired),
		"released_lockers": len(result.ReleasedLockers),
		"failed":           result.Failed,
		"cutoff":           cutoff,
	})

	return result, nil
}

func (s *Service) expireInto(ctx context.Context, result *usecase.SweepResult, snapshot *entity.Session, now, cutoff time.Time) {
	expired, locker, outcome, err := s.expireOne(ctx, snapshot, now, cutoff)
	switch outcome {
	case outcomeExpired:
		result.Expired = append(result.Expired, expired)
		s.publish(ctx, sessionEvent(event.SessionExpired, expired, now))
		if locker != nil {
			s.publish(ctx, lockerStatusEvent(locker, expired.ID, now))
		}
	case outcomeSkipped:
		result.Skipped++
	case outcomeFailed:
		result.Failed++
		s.logger.Error("Failed to expire session", map[string]any{
			"session_id": snapshot.ID,
			"locker_id":  snapshot.LockerID,
			"error":      err.Error(),
		})
	}
}

// expireOne expires a single session under its guard keys. The session is
// skipped when a concurrent EndSession already moved it out of Active or
// when it is no longer due at cutoff.
func (s *Service) expireOne(ctx context.Context, snapshot *entity.Session, now, cutoff time.Time) (*entity.Session, *entity.Locker, expireOutcome, error) {
	release, err := s.lock(ctx, sessionKey(snapshot.ID), lockerKey(snapshot.LockerID))
	if err != nil {
		return nil, nil, outcomeFailed, err
	}
	defer release()

	var (
		expired        *entity.Session
		releasedLocker *entity.Locker
		skipped        bool
	)
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		sessionRepo := s.uow.GetSessionRepository(txCtx)

		session, err := sessionRepo.GetByID(txCtx, snapshot.ID)
		if err != nil {
			return err
		}
		if !session.IsActive() || !session.IsOverdue(cutoff) {
			skipped = true
			return nil
		}

		session.Expire(now)
		if err := sessionRepo.Update(txCtx, session); err != nil {
			return err
		}

		locker, err := s.uow.GetLockerRepository(txCtx).GetByID(txCtx, session.LockerID)
		if err != nil {
			return err
		}
		released, err := s.releaseLocker(txCtx, locker, session.ID, now)
		if err != nil {
			return err
		}
		if released {
			releasedLocker = locker
		}

		expired = session
		return nil
	})
	switch {
	case err != nil:
		return nil, nil, outcomeFailed, err
	case skipped:
		return nil, nil, outcomeSkipped, nil
	default:
		return expired, releasedLocker, outcomeExpired, nil
	}
}

// reconcileLocker releases an occupied locker that no active session holds.
// A stale session reference is repointed at the actual active session.
func (s *Service) reconcileLocker(ctx context.Context, lockerID uint64, now time.Time) (*entity.Locker, error) {
	release, err := s.lock(ctx, lockerKey(lockerID))
	if err != nil {
		return nil, err
	}
	defer release()

	var released *entity.Locker
	err = s.inTransaction(ctx, func(txCtx context.Context) error {
		lockerRepo := s.uow.GetLockerRepository(txCtx)

		locker, err := lockerRepo.GetByID(txCtx, lockerID)
		if err != nil {
			return err
		}
		if locker.Status != entity.LockerOccupied {
			return nil
		}

		active, err := s.uow.GetSessionRepository(txCtx).FindActiveByLocker(txCtx, lockerID)
		if err != nil {
			return err
		}
		if active != nil {
			if locker.HeldBy(active.ID) {
				return nil
			}
			locker.Occupy(active.ID, now)
			return lockerRepo.Update(txCtx, locker)
		}

		locker.Release(now)
		if err := lockerRepo.Update(txCtx, locker); err != nil {
			return err
		}
		released = locker
		return nil
	})
	if err != nil {
		return nil, err
	}

	if released != nil {
		s.logger.Warn("Released occupied locker without an active session", map[string]any{
			"locker_id": lockerID,
		})
	}
	return released, nil
}
