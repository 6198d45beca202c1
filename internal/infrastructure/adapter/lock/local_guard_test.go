package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalGuard(t *testing.T) {
	t.Run("should serialize holders of the same key", func(t *testing.T) {
		g := NewLocalGuard()
		var inside, maxInside int32
		var wg sync.WaitGroup

		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				release, err := g.Lock(context.Background(), "locker:1", "user:1")
				require.NoError(t, err)
				defer release()

				n := atomic.AddInt32(&inside, 1)
				for {
					m := atomic.LoadInt32(&maxInside)
					if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), maxInside)
		assert.Zero(t, g.size())
	})

	t.Run("should not deadlock on overlapping keys given in any order", func(t *testing.T) {
		g := NewLocalGuard()
		var wg sync.WaitGroup

		for i := 0; i < 50; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				release, err := g.Lock(context.Background(), "a", "b")
				require.NoError(t, err)
				release()
			}()
			go func() {
				defer wg.Done()
				release, err := g.Lock(context.Background(), "b", "a")
				require.NoError(t, err)
				release()
			}()
		}

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("guard deadlocked")
		}
	})

	t.Run("should let disjoint keys proceed in parallel", func(t *testing.T) {
		g := NewLocalGuard()
		release, err := g.Lock(context.Background(), "locker:1")
		require.NoError(t, err)
		defer release()

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()
		other, err := g.Lock(ctx, "locker:2")
		require.NoError(t, err)
		other()
	})

	t.Run("should give up when the context expires and keep nothing held", func(t *testing.T) {
		g := NewLocalGuard()
		release, err := g.Lock(context.Background(), "locker:2")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		_, err = g.Lock(ctx, "locker:1", "locker:2")
		assert.ErrorIs(t, err, context.DeadlineExceeded)

		// locker:1 was taken before the wait and must be free again
		quick, cancelQuick := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancelQuick()
		r1, err := g.Lock(quick, "locker:1")
		require.NoError(t, err)
		r1()

		release()
		assert.Zero(t, g.size())
	})

	t.Run("should tolerate duplicate keys and a double release", func(t *testing.T) {
		g := NewLocalGuard()
		release, err := g.Lock(context.Background(), "session:1", "session:1")
		require.NoError(t, err)

		release()
		assert.NotPanics(t, release)
		assert.Zero(t, g.size())
	})
}

func TestNormalizeKeys(t *testing.T) {
	keys := []string{"user:2", "locker:9", "user:2", "session:4"}

	assert.Equal(t, []string{"locker:9", "session:4", "user:2"}, normalizeKeys(keys))
	assert.Equal(t, "user:2", keys[0])
}
