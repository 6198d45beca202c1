package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

func TestEndSession(t *testing.T) {
	ctx := context.Background()
	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	build := func() *entity.Session { return activeSession(100, 1, 7, startedAt, 2, "2.50") }

	t.Run("should bill 1.25 when a 2 hour session ends after 30 minutes", func(t *testing.T) {
		now := startedAt.Add(30 * time.Minute)
		f := newFixture(t, now)
		f.expectLock("session:100", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().GetByID(mock.Anything, uint64(100)).RunAndReturn(fresh(build)).Twice()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 100, "2.50"), nil).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.MatchedBy(func(s *entity.Session) bool {
			return s.Status == entity.SessionFinished && entity.FormatMoney(s.AmountDue) == "1.25"
		})).Return(nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.MatchedBy(func(l *entity.Locker) bool {
			return l.Status == entity.LockerAvailable && l.CurrentSessionID == nil
		})).Return(nil).Once()

		session, err := f.service.EndSession(ctx, 100, entity.PaymentPaid)

		require.NoError(t, err)
		assert.Equal(t, entity.SessionFinished, session.Status)
		assert.Equal(t, "1.25", entity.FormatMoney(session.AmountDue))
		assert.Equal(t, entity.PaymentPaid, session.PaymentStatus)
		require.NotNil(t, session.EndedAt)
		assert.Equal(t, now, *session.EndedAt)
		assert.Equal(t, []event.Type{event.SessionEnded, event.LockerStatusChanged}, f.eventTypes())
		assert.Equal(t, 1, f.released)
	})

	t.Run("should keep the full amount when the session ends after its planned end", func(t *testing.T) {
		now := startedAt.Add(2*time.Hour + 10*time.Minute)
		f := newFixture(t, now)
		f.expectLock("session:100", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().GetByID(mock.Anything, uint64(100)).RunAndReturn(fresh(build)).Twice()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 100, "2.50"), nil).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		session, err := f.service.EndSession(ctx, 100, entity.PaymentNone)

		require.NoError(t, err)
		assert.Equal(t, "5.00", entity.FormatMoney(session.AmountDue))
	})

	t.Run("should never raise the amount when the price went up", func(t *testing.T) {
		now := startedAt.Add(90 * time.Minute)
		f := newFixture(t, now)
		f.expectLock("session:100", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().GetByID(mock.Anything, uint64(100)).RunAndReturn(fresh(build)).Twice()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 100, "10.00"), nil).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()
		f.lockers.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		session, err := f.service.EndSession(ctx, 100, entity.PaymentNone)

		require.NoError(t, err)
		assert.Equal(t, "5.00", entity.FormatMoney(session.AmountDue))
	})

	t.Run("should leave a locker held by another session alone", func(t *testing.T) {
		now := startedAt.Add(time.Hour)
		f := newFixture(t, now)
		f.expectLock("session:100", "locker:7")
		f.expectCommit(1)

		f.sessions.EXPECT().GetByID(mock.Anything, uint64(100)).RunAndReturn(fresh(build)).Twice()
		f.lockers.EXPECT().GetByID(mock.Anything, uint64(7)).Return(occupiedLocker(7, 999, "2.50"), nil).Once()
		f.sessions.EXPECT().Update(mock.Anything, mock.Anything).Return(nil).Once()

		session, err := f.service.EndSession(ctx, 100, entity.PaymentNone)

		require.NoError(t, err)
		assert.Equal(t, entity.SessionFinished, session.Status)
		f.lockers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		assert.Equal(t, []event.Type{event.SessionEnded}, f.eventTypes())
	})

	t.Run("should return not found for an unknown session", func(t *testing.T) {
		f := newFixture(t, startedAt)
		f.sessions.EXPECT().GetByID(mock.Anything, uint64(404)).Return(nil, errs.ErrSessionNotFound).Once()

		session, err := f.service.EndSession(ctx, 404, entity.PaymentNone)

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
		assert.True(t, errs.IsNotFoundError(err))
		f.guard.AssertNotCalled(t, "Lock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an invalid payment status before reading anything", func(t *testing.T) {
		f := newFixture(t, startedAt)

		session, err := f.service.EndSession(ctx, 100, entity.PaymentStatus("refunded"))

		assert.Nil(t, session)
		assert.ErrorIs(t, err, errs.ErrInvalidPaymentStatus)
		assert.Equal(t, errs.KindInvalidArgument, errs.KindOf(err))
		f.sessions.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	for _, status := range []entity.SessionStatus{entity.SessionFinished, entity.SessionExpired} {
		t.Run("should refuse to end a "+string(status)+" session without changing it", func(t *testing.T) {
			now := startedAt.Add(3 * time.Hour)
			f := newFixture(t, now)
			f.expectLock("session:100", "locker:7")
			f.expectRollback()

			ended := func() *entity.Session {
				s := build()
				endedAt := s.PlannedEndAt
				s.Status = status
				s.EndedAt = &endedAt
				return s
			}
			f.sessions.EXPECT().GetByID(mock.Anything, uint64(100)).RunAndReturn(fresh(ended)).Twice()

			session, err := f.service.EndSession(ctx, 100, entity.PaymentPaid)

			assert.Nil(t, session)
			assert.ErrorIs(t, err, errs.ErrSessionNotActive)
			assert.Equal(t, errs.KindPreconditionFailed, errs.KindOf(err))
			f.sessions.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.lockers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			assert.Empty(t, f.events)
		})
	}
}

func TestGetRemainingTime(t *testing.T) {
	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	session := activeSession(100, 1, 7, startedAt, 2, "2.50")
	f := newFixture(t, startedAt)

	tests := []struct {
		name     string
		now      time.Time
		expected time.Duration
	}{
		{"should return the full duration at start", startedAt, 2 * time.Hour},
		{"should return the time left mid session", startedAt.Add(45 * time.Minute), 75 * time.Minute},
		{"should return zero at the planned end", startedAt.Add(2 * time.Hour), 0},
		{"should never go negative", startedAt.Add(5 * time.Hour), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, f.service.GetRemainingTime(session, tt.now))
		})
	}
}
