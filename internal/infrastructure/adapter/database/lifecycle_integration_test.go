package database_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/notification"
	timeprovider "github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/time"
)

type clock struct {
	coreport.TimeProvider
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

type lifecycleEnv struct {
	db      *database.TestDBManager
	clock   *clock
	engine  *session.Service
	mu      sync.Mutex
	events  []event.Type
	started time.Time
}

func newLifecycleEnv(t *testing.T, useLeases bool) *lifecycleEnv {
	t.Helper()

	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	c := &clock{TimeProvider: timeprovider.NewRealTimeProvider(), now: started}
	log := logger.NewNoopLogger()
	tdb := database.NewTestDBManager(t, log, c)

	var guard coreport.Guard = lock.NewLocalGuard()
	if useLeases {
		cfg := lock.DefaultLeaseConfig()
		cfg.PollInterval = 5 * time.Millisecond
		guard = lock.NewLeaseGuard(tdb.Manager.EntityLockRepository(), c, log, cfg)
	}

	env := &lifecycleEnv{db: tdb, clock: c, started: started}

	dispatcher := notification.NewDispatcher(log)
	dispatcher.SubscribeAll(func(_ context.Context, evt event.Event) error {
		env.mu.Lock()
		defer env.mu.Unlock()
		env.events = append(env.events, evt.Type)
		return nil
	})

	env.engine = session.NewSessionService(
		tdb.Manager.CreateUnitOfWork(), guard, dispatcher, metrics.NewPrometheus(), c, log,
		session.Config{MaxDurationHours: 24, Currency: "EUR", LockTimeout: 2 * time.Second},
	)
	return env
}

func (e *lifecycleEnv) locker(t *testing.T, id uint64) *entity.Locker {
	t.Helper()
	ctx := context.Background()
	l, err := e.db.Manager.CreateUnitOfWork().GetLockerRepository(ctx).GetByID(ctx, id)
	require.NoError(t, err)
	return l
}

func (e *lifecycleEnv) eventTypes() []event.Type {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]event.Type(nil), e.events...)
}

func TestLifecycle(t *testing.T) {
	for _, tc := range []struct {
		name      string
		useLeases bool
	}{
		{"local guard", false},
		{"lease guard", true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("should bill early termination by elapsed time", func(t *testing.T) {
				env := newLifecycleEnv(t, tc.useLeases)
				lockerID := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)

				started, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{
					UserID: 1, LockerID: lockerID, PlannedDurationHours: 2, Items: []string{"jacket"},
				})
				require.NoError(t, err)
				assert.Equal(t, "5.00", entity.FormatMoney(started.AmountDue))
				assert.Equal(t, entity.LockerOccupied, env.locker(t, lockerID).Status)

				env.clock.Set(env.started.Add(30 * time.Minute))
				assert.Equal(t, 90*time.Minute, env.engine.GetRemainingTime(started, env.clock.Now()))

				ended, err := env.engine.EndSession(ctx, started.ID, entity.PaymentPaid)
				require.NoError(t, err)
				assert.Equal(t, entity.SessionFinished, ended.Status)
				assert.Equal(t, "1.25", entity.FormatMoney(ended.AmountDue))
				require.NotNil(t, ended.EndedAt)
				assert.True(t, ended.EndedAt.Equal(env.started.Add(30*time.Minute)))

				stored, err := env.engine.GetSession(ctx, started.ID)
				require.NoError(t, err)
				assert.Equal(t, "1.25", entity.FormatMoney(stored.AmountDue))
				assert.Equal(t, []string{"jacket"}, stored.Items)

				freed := env.locker(t, lockerID)
				assert.Equal(t, entity.LockerAvailable, freed.Status)
				assert.Nil(t, freed.CurrentSessionID)

				assert.Equal(t, []event.Type{
					event.SessionStarted, event.LockerStatusChanged,
					event.SessionEnded, event.LockerStatusChanged,
				}, env.eventTypes())
			})

			t.Run("should expire an overdue session at its planned end and keep the amount", func(t *testing.T) {
				env := newLifecycleEnv(t, tc.useLeases)
				lockerID := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)

				started, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{
					UserID: 1, LockerID: lockerID, PlannedDurationHours: 2,
				})
				require.NoError(t, err)

				now := env.started.Add(2*time.Hour + 5*time.Minute)
				env.clock.Set(now)

				first, err := env.engine.SweepExpired(ctx, now)
				require.NoError(t, err)
				require.Len(t, first.Expired, 1)

				expired, err := env.engine.GetSession(ctx, started.ID)
				require.NoError(t, err)
				assert.Equal(t, entity.SessionExpired, expired.Status)
				assert.Equal(t, "5.00", entity.FormatMoney(expired.AmountDue))
				require.NotNil(t, expired.EndedAt)
				assert.True(t, expired.EndedAt.Equal(started.PlannedEndAt))
				assert.Zero(t, env.engine.GetRemainingTime(expired, now))
				assert.Equal(t, entity.LockerAvailable, env.locker(t, lockerID).Status)

				second, err := env.engine.SweepExpired(ctx, now)
				require.NoError(t, err)
				assert.Empty(t, second.Expired)

				_, err = env.engine.EndSession(ctx, started.ID, entity.PaymentPaid)
				assert.ErrorIs(t, err, errs.ErrSessionNotActive)

				again, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{
					UserID: 1, LockerID: lockerID, PlannedDurationHours: 1,
				})
				require.NoError(t, err)
				assert.NotEqual(t, started.ID, again.ID)
			})

			t.Run("should reject a second active session for the same user", func(t *testing.T) {
				env := newLifecycleEnv(t, tc.useLeases)
				first := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)
				second := env.db.CreateTestLocker(t, "A-02", "2.50", entity.LockerAvailable)

				_, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: first, PlannedDurationHours: 2})
				require.NoError(t, err)

				_, err = env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: second, PlannedDurationHours: 1})

				assert.ErrorIs(t, err, errs.ErrSessionAlreadyActive)
				assert.True(t, errs.IsConflictError(err))
				assert.Equal(t, entity.LockerAvailable, env.locker(t, second).Status)
			})

			t.Run("should check preconditions in order", func(t *testing.T) {
				env := newLifecycleEnv(t, tc.useLeases)
				busy := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)
				maintenance := env.db.CreateTestLocker(t, "A-02", "2.50", entity.LockerMaintenance)
				free := env.db.CreateTestLocker(t, "A-03", "2.50", entity.LockerAvailable)

				_, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: busy, PlannedDurationHours: 2})
				require.NoError(t, err)

				_, err = env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: 999, PlannedDurationHours: 0})
				assert.ErrorIs(t, err, errs.ErrLockerNotFound)

				_, err = env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: maintenance, PlannedDurationHours: 0})
				assert.ErrorIs(t, err, errs.ErrLockerUnavailable)

				_, err = env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: free, PlannedDurationHours: 0})
				assert.ErrorIs(t, err, errs.ErrSessionAlreadyActive)

				_, err = env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 2, LockerID: free, PlannedDurationHours: 25})
				assert.ErrorIs(t, err, errs.ErrInvalidDuration)
				assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
			})

			t.Run("should reclaim a session abandoned past the grace period", func(t *testing.T) {
				env := newLifecycleEnv(t, tc.useLeases)
				lockerID := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)

				started, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{UserID: 1, LockerID: lockerID, PlannedDurationHours: 1})
				require.NoError(t, err)

				now := started.PlannedEndAt.Add(25 * time.Hour)
				env.clock.Set(now)

				result, err := env.engine.ReclaimAbandoned(ctx, now, 24*time.Hour)
				require.NoError(t, err)
				require.Len(t, result.Expired, 1)

				reclaimed, err := env.engine.GetSession(ctx, started.ID)
				require.NoError(t, err)
				assert.Equal(t, entity.SessionExpired, reclaimed.Status)
				assert.True(t, reclaimed.EndedAt.Equal(started.PlannedEndAt))
				assert.Equal(t, entity.LockerAvailable, env.locker(t, lockerID).Status)
			})
		})
	}
}

func TestConcurrentStarts(t *testing.T) {
	ctx := context.Background()

	t.Run("should let exactly one user win a locker", func(t *testing.T) {
		env := newLifecycleEnv(t, false)
		lockerID := env.db.CreateTestLocker(t, "A-01", "2.50", entity.LockerAvailable)

		const contenders = 8
		var wg sync.WaitGroup
		results := make(chan error, contenders)
		for i := 0; i < contenders; i++ {
			wg.Add(1)
			go func(userID uint64) {
				defer wg.Done()
				_, err := env.engine.StartSession(ctx, usecase.StartSessionRequest{
					UserID: userID, LockerID: lockerID, PlannedDurationHours: 1,
				})
				results <- err
			}(uint64(i + 1))
		}
		wg.Wait()
		close(results)

		wins, conflicts := 0, 0
		for err := range results {
			switch {
			case err == nil:
				wins++
			case errs.IsConflictError(err):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}

		assert.Equal(t, 1, wins)
		assert.Equal(t, contenders-1, conflicts)
		locker := env.locker(t, lockerID)
		assert.Equal(t, entity.LockerOccupied, locker.Status)
		require.NotNil(t, locker.CurrentSessionID)
	})
}
