package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	mcore "github.com/amirhossein-jamali/locker-rental/mocks/port/core"
)

func TestSweepExpired(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := startedAt.Add(2*time.Hour + time.Minute)

	overdue := func() *entity.Session { return activeSession(1, 10, 7, startedAt, 2, "2.50") }
	running := func() *entity.Session { return activeSession(2, 20, 8, now.Add(-time.Hour), 3, "2.50") }

	t.Run("should expire overdue sessions and keep the amount due", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectLock("session:1", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue(), running()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(overdue)).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.ID == 1 && s.Status == entity.SessionExpired
		})).Return(nil).Once()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 1, "2.50"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.Locker) bool {
			return l.ID == 7 && l.Status == entity.LockerAvailable
		})).Return(nil).Once()

		result, err := f.service.SweepExpired(ctx, now)

		require.NoError(t, err)
		require.Len(t, result.Expired, 1)
		expired := result.Expired[0]
		assert.Equal(t, entity.SessionExpired, expired.Status)
		assert.Equal(t, "5.00", entity.FormatMoney(expired.AmountDue))
		require.NotNil(t, expired.EndedAt)
		assert.Equal(t, startedAt.Add(2*time.Hour), *expired.EndedAt)
		assert.Equal(t, entity.PaymentNone, expired.PaymentStatus)
		assert.Zero(t, result.Failed)
		assert.Zero(t, result.Skipped)
		assert.Equal(t, []event.Type{event.SessionExpired, event.LockerStatusChanged}, f.eventTypes())
	})

	t.Run("should treat a session exactly at its planned end as overdue", func(t *testing.T) {
		atEnd := startedAt.Add(2 * time.Hour)
		f := newFixture(t, atEnd)
		f.expectLock("session:1", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(overdue)).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 1, "2.50"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.SweepExpired(ctx, atEnd)

		require.NoError(t, err)
		assert.Len(t, result.Expired, 1)
	})

	t.Run("should skip a session that ended concurrently", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectLock("session:1", "locker:7")
		f.expectCommit(1)

		finished := func() *entity.Session {
			s := overdue()
			s.Status = entity.SessionFinished
			return s
		}
		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(finished)).Once()

		result, err := f.service.SweepExpired(ctx, now)

		require.NoError(t, err)
		assert.Empty(t, result.Expired)
		assert.Equal(t, 1, result.Skipped)
		f.sessions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Empty(t, f.events)
	})

	t.Run("should change nothing when run again with the same time", func(t *testing.T) {
		f := newFixture(t, now)
		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{running()}, nil).Twice()

		first, err := f.service.SweepExpired(ctx, now)
		require.NoError(t, err)
		second, err := f.service.SweepExpired(ctx, now)
		require.NoError(t, err)

		assert.Empty(t, first.Expired)
		assert.Empty(t, second.Expired)
		f.guard.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("should keep sweeping after one session fails", func(t *testing.T) {
		other := func() *entity.Session { return activeSession(3, 30, 9, startedAt, 1, "4.00") }

		f := newFixture(t, now)
		f.guard.EXPECT().Lock(mock.Anything, "session:1", "locker:7").Return(nil, context.DeadlineExceeded).Once()
		f.expectLock("session:3", "locker:9")
		f.expectCommit(1)

		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue(), other()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(3)).RunAndReturn(fresh(other)).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(9)).Return(occupiedLocker(9, 3, "4.00"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.SweepExpired(ctx, now)

		require.NoError(t, err)
		require.Len(t, result.Expired, 1)
		assert.Equal(t, uint64(3), result.Expired[0].ID)
		assert.Equal(t, "4.00", entity.FormatMoney(result.Expired[0].AmountDue))
		assert.Equal(t, 1, result.Failed)
	})

	t.Run("should fail when active sessions can't be listed", func(t *testing.T) {
		f := newFixture(t, now)
		f.sessions.EXPECT().ListActive(mock.Anything).Return(nil, errors.New("connection refused")).Once()

		result, err := f.service.SweepExpired(ctx, now)

		assert.Nil(t, result)
		assert.Error(t, err)
	})

	t.Run("should report the sweep to metrics", func(t *testing.T) {
		f := newFixture(t, now)
		metrics := mcore.NewMockMetrics(t)
		f.service.metrics = metrics

		f.expectLock("session:1", "locker:7")
		f.expectCommit(1)
		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue(), running()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(overdue)).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 1, "2.50"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		metrics.EXPECT().SetActiveSessions(1).Return().Once()
		metrics.EXPECT().SessionsExpired("sweep", 1).Return().Once()
		metrics.EXPECT().ObserveOperation(OpSweepExpired, nil, time.Millisecond).Return().Once()

		_, err := f.service.SweepExpired(ctx, now)

		require.NoError(t, err)
	})

	t.Run("should not count a concurrently ended session as active", func(t *testing.T) {
		f := newFixture(t, now)
		metrics := mcore.NewMockMetrics(t)
		f.service.metrics = metrics

		finished := func() *entity.Session {
			s := overdue()
			s.Status = entity.SessionFinished
			return s
		}
		f.expectLock("session:1", "locker:7")
		f.expectCommit(1)
		f.sessions.EXPECT().ListActive(mock.Anything).Return([]*entity.Session{overdue(), running()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(finished)).Once()

		metrics.EXPECT().SetActiveSessions(1).Return().Once()
		metrics.EXPECT().SessionsExpired("sweep", 0).Return().Once()
		metrics.EXPECT().ObserveOperation(OpSweepExpired, nil, time.Millisecond).Return().Once()

		result, err := f.service.SweepExpired(ctx, now)

		require.NoError(t, err)
		assert.Equal(t, 1, result.Skipped)
	})
}

func TestReclaimAbandoned(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	now := startedAt.Add(30 * time.Hour)
	grace := 24 * time.Hour

	abandoned := func() *entity.Session { return activeSession(1, 10, 7, startedAt, 2, "2.50") }

	t.Run("should expire abandoned sessions and release orphaned lockers", func(t *testing.T) {
		f := newFixture(t, now)
		f.expectLock("session:1", "locker:7")
		f.expectLock("locker:9")
		f.expectLock("locker:11")
		f.expectCommit(3)

		f.sessions.EXPECT().ListActiveEndedBefore(mock.Anything, now.Add(-grace)).
			Return([]*entity.Session{abandoned()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(1)).RunAndReturn(fresh(abandoned)).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 1, "2.50"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.Locker) bool { return l.ID == 7 })).
			Return(nil).Once()

		// Locker 9 is occupied with no session at all; locker 11 points at a
		// finished session while session 51 actually holds it.
		f.lockers.EXPECT().ListAll(mock.Anything).Return([]*entity.Locker{
			testLocker(7, entity.LockerAvailable, "2.50"),
			occupiedLocker(9, 40, "2.50"),
			occupiedLocker(11, 50, "2.50"),
			testLocker(12, entity.LockerMaintenance, "2.50"),
		}, nil).Once()

		f.lockers.EXPECT().GetByID(mock.Anything, uint64(9)).Return(occupiedLocker(9, 40, "2.50"), nil).Once()
		f.sessions.EXPECT().FindActiveByLocker(mock.Anything, uint64(9)).Return(nil, nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.Locker) bool {
			return l.ID == 9 && l.Status == entity.LockerAvailable && l.CurrentSessionID == nil
		})).Return(nil).Once()

		f.lockers.EXPECT().GetByID(mock.Anything, uint64(11)).Return(occupiedLocker(11, 50, "2.50"), nil).Once()
		f.sessions.EXPECT().FindActiveByLocker(mock.Anything, uint64(11)).
			Return(activeSession(51, 30, 11, now.Add(-time.Hour), 2, "2.50"), nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.Locker) bool {
			return l.ID == 11 && l.Status == entity.LockerOccupied && l.HeldBy(51)
		})).Return(nil).Once()

		result, err := f.service.ReclaimAbandoned(ctx, now, grace)

		require.NoError(t, err)
		require.Len(t, result.Expired, 1)
		assert.Equal(t, "5.00", entity.FormatMoney(result.Expired[0].AmountDue))
		assert.Equal(t, startedAt.Add(2*time.Hour), *result.Expired[0].EndedAt)
		assert.Equal(t, []uint64{9}, result.ReleasedLockers)
		assert.Zero(t, result.Failed)
	})

	t.Run("should leave sessions inside the grace period to the regular sweep", func(t *testing.T) {
		recent := now.Add(-3 * time.Hour)
		f := newFixture(t, now)
		f.expectLock("session:2", "locker:8")
		f.expectCommit(1)

		inGrace := func() *entity.Session { return activeSession(2, 20, 8, recent, 1, "2.50") }
		f.sessions.EXPECT().ListActiveEndedBefore(mock.Anything, now.Add(-grace)).
			Return([]*entity.Session{inGrace()}, nil).Once()
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(2)).RunAndReturn(fresh(inGrace)).Once()
		f.lockers.EXPECT().ListAll(mock.Anything).Return(nil, nil).Once()

		result, err := f.service.ReclaimAbandoned(ctx, now, grace)

		require.NoError(t, err)
		assert.Empty(t, result.Expired)
		assert.Equal(t, 1, result.Skipped)
		f.sessions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
