package locker

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
)

// LockerUseCase handles the Locker Registry
type LockerUseCase struct {
	uow          persistence.UnitOfWork
	guard        coreport.Guard
	notifier     event.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTimeout  time.Duration
}

var _ usecase.LockerUseCase = (*LockerUseCase)(nil)

// NewLockerUseCase creates a new LockerUseCase
func NewLockerUseCase(
	uow persistence.UnitOfWork,
	guard coreport.Guard,
	notifier event.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTimeout time.Duration,
) *LockerUseCase {
	if lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
	}
	return &LockerUseCase{
		uow:          uow,
		guard:        guard,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		lockTimeout:  lockTimeout,
	}
}

// Get returns a locker by ID
func (u *LockerUseCase) Get(ctx context.Context, lockerID uint64) (*entity.Locker, error) {
	return u.uow.GetLockerRepository(ctx).GetByID(ctx, lockerID)
}

// ListAvailable returns lockers a new session can start on
func (u *LockerUseCase) ListAvailable(ctx context.Context) ([]*entity.Locker, error) {
	return u.uow.GetLockerRepository(ctx).ListAvailable(ctx)
}

// List returns every locker
func (u *LockerUseCase) List(ctx context.Context) ([]*entity.Locker, error) {
	return u.uow.GetLockerRepository(ctx).ListAll(ctx)
}

// SetStatus applies an administrative status change. Occupancy belongs to the
// lifecycle engine: an occupied locker can't be changed here and no locker can
// be set to occupied.
func (u *LockerUseCase) SetStatus(ctx context.Context, lockerID uint64, status entity.LockerStatus) (*entity.Locker, error) {
	if _, err := entity.ParseLockerStatus(string(status)); err != nil {
		return nil, err
	}
	if status == entity.LockerOccupied {
		return nil, fmt.Errorf("%w: occupied is set by starting a session", errs.ErrInvalidLockerStatus)
	}

	lockCtx, cancel := u.timeProvider.WithTimeout(ctx, coreport.Duration(u.lockTimeout))
	release, err := u.guard.Lock(lockCtx, "locker:"+strconv.FormatUint(lockerID, 10))
	cancel()
	if err != nil {
		if !errors.Is(err, errs.ErrEntityLocked) {
			err = errors.Join(errs.ErrEntityLocked, err)
		}
		return nil, err
	}
	defer release()

	txCtx, err := u.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	repo := u.uow.GetLockerRepository(txCtx)
	locker, err := repo.GetByID(txCtx, lockerID)
	if err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if locker.Status == entity.LockerOccupied {
		_ = u.uow.Rollback(txCtx)
		return nil, errs.ErrLockerOccupied
	}
	if locker.Status == status {
		_ = u.uow.Rollback(txCtx)
		return locker, nil
	}

	if err := repo.SetStatus(txCtx, lockerID, status); err != nil {
		_ = u.uow.Rollback(txCtx)
		return nil, err
	}
	if err := u.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	previous := locker.Status
	locker.Status = status
	locker.UpdatedAt = u.timeProvider.Now()

	u.logger.Info("Locker status changed", map[string]any{
		"locker_id": lockerID,
		"from":      string(previous),
		"to":        string(status),
	})

	if u.notifier != nil {
		evt := event.Event{
			Type:       event.LockerStatusChanged,
			OccurredAt: locker.UpdatedAt,
			LockerID:   lockerID,
			Payload:    map[string]any{"status": string(status), "previous": string(previous)},
		}
		if err := u.notifier.Publish(context.WithoutCancel(ctx), evt); err != nil {
			u.logger.Warn("Failed to publish event", map[string]any{
				"event_type": string(evt.Type),
				"locker_id":  lockerID,
				"error":      err.Error(),
			})
		}
	}

	return locker, nil
}

// Provision creates a locker unless one with the same name already exists
func (u *LockerUseCase) Provision(ctx context.Context, name string, pricePerHour string) (*entity.Locker, error) {
	repo := u.uow.GetLockerRepository(ctx)

	existing, err := repo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrLockerNotFound) {
		return nil, err
	}

	locker, err := entity.NewLocker(name, pricePerHour, u.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := repo.Create(ctx, locker); err != nil {
		return nil, err
	}

	u.logger.Info("Locker provisioned", map[string]any{
		"locker_id":      locker.ID,
		"name":           locker.Name,
		"price_per_hour": entity.FormatMoney(locker.PricePerHour),
	})
	return locker, nil
}
