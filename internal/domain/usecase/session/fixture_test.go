package session

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	mcore "github.com/amirhossein-jamali/locker-rental/mocks/port/core"
	mevent "github.com/amirhossein-jamali/locker-rental/mocks/port/event"
	mpers "github.com/amirhossein-jamali/locker-rental/mocks/port/persistence"
)

// txKey marks the context handed out by the mocked unit of work
type txKey struct{}

type fixture struct {
	uow          *mpers.MockUnitOfWork
	lockers      *mpers.MockLockerRepository
	sessions     *mpers.MockSessionRepository
	guard        *mcore.MockGuard
	notifier     *mevent.MockNotifier
	timeProvider *mcore.MockTimeProvider
	logger       *mcore.MockLogger
	service      *Service

	txCtx    context.Context
	events   []event.Event
	released int
}

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

func newFixture(t testingT, now time.Time) *fixture {
	f := &fixture{
		uow:          mpers.NewMockUnitOfWork(t),
		lockers:      mpers.NewMockLockerRepository(t),
		sessions:     mpers.NewMockSessionRepository(t),
		guard:        mcore.NewMockGuard(t),
		notifier:     mevent.NewMockNotifier(t),
		timeProvider: mcore.NewMockTimeProvider(t),
		logger:       new(mcore.MockLogger),
		txCtx:        context.WithValue(context.Background(), txKey{}, "tx"),
	}

	f.timeProvider.EXPECT().Now().Return(now).Maybe()
	f.timeProvider.EXPECT().Since(mock.Anything).Return(coreport.Millisecond).Maybe()
	f.timeProvider.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()

	f.uow.EXPECT().GetLockerRepository(mock.Anything).Return(f.lockers).Maybe()
	f.uow.EXPECT().GetSessionRepository(mock.Anything).Return(f.sessions).Maybe()

	f.notifier.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, evt event.Event) { f.events = append(f.events, evt) }).
		Return(nil).Maybe()

	f.logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Info", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	f.logger.On("Error", mock.Anything, mock.Anything).Maybe()

	f.service = NewSessionService(f.uow, f.guard, f.notifier, nil, f.timeProvider, f.logger, DefaultConfig())
	return f
}

// expectLock grants the guard keys exactly once, in the given order
func (f *fixture) expectLock(keys ...string) {
	args := make([]interface{}, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	f.guard.EXPECT().Lock(mock.Anything, args...).Return(func() { f.released++ }, nil).Once()
}

func (f *fixture) expectCommit(times int) {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Times(times)
	f.uow.EXPECT().Commit(f.txCtx).Return(nil).Times(times)
}

func (f *fixture) expectRollback() {
	f.uow.EXPECT().Begin(mock.Anything).Return(f.txCtx, nil).Once()
	f.uow.EXPECT().Rollback(f.txCtx).Return(nil).Once()
}

func (f *fixture) eventTypes() []event.Type {
	types := make([]event.Type, 0, len(f.events))
	for _, evt := range f.events {
		types = append(types, evt.Type)
	}
	return types
}

func testLocker(id uint64, status entity.LockerStatus, price string) *entity.Locker {
	return &entity.Locker{
		ID:           id,
		Name:         "A-01",
		Status:       status,
		PricePerHour: decimal.RequireFromString(price),
	}
}

func occupiedLocker(id, sessionID uint64, price string) *entity.Locker {
	l := testLocker(id, entity.LockerOccupied, price)
	l.CurrentSessionID = &sessionID
	return l
}

// activeSession returns a session on lockerID that started at startedAt
// and is billed hours × price
func activeSession(id, userID, lockerID uint64, startedAt time.Time, hours float64, price string) *entity.Session {
	return &entity.Session{
		ID:            id,
		UserID:        userID,
		LockerID:      lockerID,
		Status:        entity.SessionActive,
		StartedAt:     startedAt,
		PlannedEndAt:  startedAt.Add(entity.HoursToDuration(hours)),
		AmountDue:     entity.CostForHours(hours, decimal.RequireFromString(price)),
		Currency:      "EUR",
		PaymentStatus: entity.PaymentNone,
		CreatedAt:     startedAt,
		UpdatedAt:     startedAt,
	}
}

// fresh returns a loader handing out a new copy on every read, the way a
// repository does
func fresh[T any](build func() *T) func(context.Context, uint64) (*T, error) {
	return func(context.Context, uint64) (*T, error) {
		return build(), nil
	}
}
