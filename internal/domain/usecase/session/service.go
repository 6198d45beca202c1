package session

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
)

// Operation names used for logging and metrics
const (
	OpStartSession     = "start_session"
	OpEndSession       = "end_session"
	OpSweepExpired     = "sweep_expired"
	OpReclaimAbandoned = "reclaim_abandoned"
	OpUnlockLocker     = "unlock_locker"
	OpSettlePayment    = "settle_payment"
)

// Config holds the engine's tunables
type Config struct {
	MaxDurationHours float64
	Currency         string
	LockTimeout      time.Duration // how long an operation waits for its guard keys
}

// DefaultConfig returns the settings used when none are configured
func DefaultConfig() Config {
	return Config{
		MaxDurationHours: entity.MaxSessionHours,
		Currency:         "EUR",
		LockTimeout:      5 * time.Second,
	}
}

// Service is the Lifecycle Engine. Every mutating operation holds the guard
// keys of the entities it touches, re-reads them inside a database transaction
// and commits all changes at once.
type Service struct {
	uow          persistence.UnitOfWork
	guard        coreport.Guard
	notifier     event.Notifier
	metrics      coreport.Metrics
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

var _ usecase.SessionUseCase = (*Service)(nil)

// NewSessionService creates a new lifecycle engine
func NewSessionService(
	uow persistence.UnitOfWork,
	guard coreport.Guard,
	notifier event.Notifier,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Service {
	defaults := DefaultConfig()
	if cfg.MaxDurationHours <= 0 || cfg.MaxDurationHours > entity.MaxSessionHours {
		cfg.MaxDurationHours = defaults.MaxDurationHours
	}
	if cfg.Currency == "" {
		cfg.Currency = defaults.Currency
	}
	if cfg.LockTimeout <= 0 {
		cfg.LockTimeout = defaults.LockTimeout
	}

	return &Service{
		uow:          uow,
		guard:        guard,
		notifier:     notifier,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

func lockerKey(id uint64) string { return "locker:" + strconv.FormatUint(id, 10) }
func sessionKey(id uint64) string { return "session:" + strconv.FormatUint(id, 10) }
func userKey(id uint64) string { return "user:" + strconv.FormatUint(id, 10) }

// lock acquires the guard keys, waiting at most cfg.LockTimeout
func (s *Service) lock(ctx context.Context, keys ...string) (func(), error) {
	lockCtx, cancel := s.timeProvider.WithTimeout(ctx, coreport.Duration(s.cfg.LockTimeout))
	defer cancel()

	release, err := s.guard.Lock(lockCtx, keys...)
	if err != nil {
		if errors.Is(err, errs.ErrEntityLocked) {
			return nil, err
		}
		return nil, errors.Join(errs.ErrEntityLocked, err)
	}
	return release, nil
}

// inTransaction runs fn inside a unit of work, committing only when fn succeeds
func (s *Service) inTransaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = s.uow.Rollback(txCtx)
			panic(p)
		}
	}()

	if err = fn(txCtx); err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Warn("Rollback failed", map[string]any{
				"error":          rbErr.Error(),
				"original_error": err.Error(),
			})
		}
		return err
	}

	return s.uow.Commit(txCtx)
}

// publish sends an event and only logs delivery failures
func (s *Service) publish(ctx context.Context, evt event.Event) {
	if s.notifier == nil {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = s.timeProvider.Now()
	}
	if err := s.notifier.Publish(context.WithoutCancel(ctx), evt); err != nil {
		s.logger.Warn("Failed to publish event", map[string]any{
			"event_type": string(evt.Type),
			"session_id": evt.SessionID,
			"locker_id":  evt.LockerID,
			"error":      err.Error(),
		})
	}
}

// finish records metrics and logs a failed operation with its identifiers
func (s *Service) finish(op string, start time.Time, err error) {
	if s.metrics != nil {
		s.metrics.ObserveOperation(op, err, s.timeProvider.Since(start).Std())
	}
	if err == nil {
		return
	}

	fields := map[string]any{"operation": op, "error": err.Error()}
	var le *errs.LifecycleError
	if errors.As(err, &le) {
		fields = le.LogFields()
	}

	switch errs.KindOf(err) {
	case errs.KindStorageUnavailable, errs.KindInternal:
		s.logger.Error("Lifecycle operation failed", fields)
	default:
		s.logger.Info("Lifecycle operation rejected", fields)
	}
}

func lockerStatusEvent(locker *entity.Locker, sessionID uint64, now time.Time) event.Event {
	return event.Event{
		Type:       event.LockerStatusChanged,
		OccurredAt: now,
		LockerID:   locker.ID,
		SessionID:  sessionID,
		Payload:    map[string]any{"status": string(locker.Status)},
	}
}

func sessionEvent(t event.Type, session *entity.Session, now time.Time) event.Event {
	return event.Event{
		Type:       t,
		OccurredAt: now,
		UserID:     session.UserID,
		SessionID:  session.ID,
		LockerID:   session.LockerID,
		Payload: map[string]any{
			"status":         string(session.Status),
			"amount_due":     entity.FormatMoney(session.AmountDue),
			"currency":       session.Currency,
			"payment_status": string(session.PaymentStatus),
		},
	}
}
