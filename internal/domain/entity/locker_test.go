package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/locker-rental/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLocker(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid locker creation", func(t *testing.T) {
		locker, err := NewLocker("A-12", "2.50", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "A-12", locker.Name)
		assert.Equal(t, LockerAvailable, locker.Status)
		assert.Equal(t, "2.50", FormatMoney(locker.PricePerHour))
		assert.Nil(t, locker.CurrentSessionID)
		assert.Nil(t, locker.LastOpenedAt)
		assert.Equal(t, fixedTime, locker.CreatedAt)
	})

	t.Run("Empty name should return error", func(t *testing.T) {
		locker, err := NewLocker("  ", "2.50", mockTime)

		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
		assert.Nil(t, locker)
	})

	t.Run("Invalid price should return error", func(t *testing.T) {
		for _, price := range []string{"-1", "abc", "1.999"} {
			t.Run(price, func(t *testing.T) {
				locker, err := NewLocker("A-1", price, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidPrice)
				assert.Nil(t, locker)
			})
		}
	})
}

func TestLockerTransitions(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Occupy sets status and session reference", func(t *testing.T) {
		locker := &Locker{ID: 1, Status: LockerAvailable}

		locker.Occupy(42, now)

		assert.Equal(t, LockerOccupied, locker.Status)
		require.NotNil(t, locker.CurrentSessionID)
		assert.Equal(t, uint64(42), *locker.CurrentSessionID)
		assert.True(t, locker.HeldBy(42))
		assert.False(t, locker.HeldBy(43))
		assert.False(t, locker.IsAvailable())
	})

	t.Run("Release clears the session reference", func(t *testing.T) {
		sessionID := uint64(42)
		locker := &Locker{ID: 1, Status: LockerOccupied, CurrentSessionID: &sessionID}

		locker.Release(now)

		assert.Equal(t, LockerAvailable, locker.Status)
		assert.Nil(t, locker.CurrentSessionID)
		assert.True(t, locker.IsAvailable())
	})

	t.Run("MarkOpened records the unlock time", func(t *testing.T) {
		locker := &Locker{ID: 1}

		locker.MarkOpened(now)

		require.NotNil(t, locker.LastOpenedAt)
		assert.Equal(t, now, *locker.LastOpenedAt)
	})
}

func TestParseLockerStatus(t *testing.T) {
	for _, raw := range []string{"available", "Occupied", " maintenance ", "out_of_order"} {
		_, err := ParseLockerStatus(raw)
		assert.NoError(t, err, raw)
	}

	_, err := ParseLockerStatus("broken")
	assert.ErrorIs(t, err, errs.ErrInvalidLockerStatus)
}
