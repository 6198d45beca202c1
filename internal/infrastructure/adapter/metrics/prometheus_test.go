package metrics

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
)

func TestObserveOperation(t *testing.T) {
	t.Run("should label results by error kind", func(t *testing.T) {
		m := NewPrometheus()

		m.ObserveOperation("start_session", nil, 3*time.Millisecond)
		m.ObserveOperation("start_session", fmt.Errorf("start: %w", errs.ErrSessionAlreadyActive), time.Millisecond)
		m.ObserveOperation("start_session", errors.New("boom"), time.Millisecond)

		assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationTotal.WithLabelValues("start_session", "ok")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationTotal.WithLabelValues("start_session", "conflict")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationTotal.WithLabelValues("start_session", "internal")))
		assert.Equal(t, 1, testutil.CollectAndCount(m.OperationLatencyMS))
	})
}

func TestSweepMetrics(t *testing.T) {
	t.Run("should count expirations by reason and skip empty passes", func(t *testing.T) {
		m := NewPrometheus()

		m.SessionsExpired("sweep", 2)
		m.SessionsExpired("sweep", 0)
		m.SessionsExpired("reclaim", 1)
		m.LockersReconciled(0)
		m.LockersReconciled(3)
		m.SetActiveSessions(7)

		assert.Equal(t, 2.0, testutil.ToFloat64(m.ExpiredTotal.WithLabelValues("sweep")))
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ExpiredTotal.WithLabelValues("reclaim")))
		assert.Equal(t, 3.0, testutil.ToFloat64(m.ReconciledTotal))
		assert.Equal(t, 7.0, testutil.ToFloat64(m.ActiveSessions))
	})
}

func TestObservePool(t *testing.T) {
	t.Run("should copy pool statistics into gauges", func(t *testing.T) {
		m := NewPrometheus()

		m.ObservePool(sql.DBStats{OpenConnections: 5, InUse: 2, Idle: 3, WaitCount: 4, WaitDuration: 1500 * time.Millisecond})

		assert.Equal(t, 5.0, testutil.ToFloat64(m.PoolOpen))
		assert.Equal(t, 2.0, testutil.ToFloat64(m.PoolInUse))
		assert.Equal(t, 3.0, testutil.ToFloat64(m.PoolIdle))
		assert.Equal(t, 4.0, testutil.ToFloat64(m.PoolWaits))
		assert.Equal(t, 1.5, testutil.ToFloat64(m.PoolWaitSec))
	})
}

func TestHandler(t *testing.T) {
	t.Run("should expose registered metrics", func(t *testing.T) {
		m := NewPrometheus()
		m.SetActiveSessions(1)

		rec := httptest.NewRecorder()
		m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "locker_rental_active_sessions 1")
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})
}
