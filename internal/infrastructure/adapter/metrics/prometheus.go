package metrics

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/database"
)

const namespace = "locker_rental"

// Prometheus records lifecycle, sweeper and connection pool metrics on its own registry
type Prometheus struct {
	registry *prometheus.Registry

	OperationTotal     *prometheus.CounterVec   // op, result=ok|<error kind>
	OperationLatencyMS *prometheus.HistogramVec // op
	ExpiredTotal       *prometheus.CounterVec   // reason=sweep|reclaim
	ReconciledTotal    prometheus.Counter
	ActiveSessions     prometheus.Gauge

	PoolOpen    prometheus.Gauge
	PoolInUse   prometheus.Gauge
	PoolIdle    prometheus.Gauge
	PoolWaits   prometheus.Gauge
	PoolWaitSec prometheus.Gauge
}

var (
	_ coreport.Metrics      = (*Prometheus)(nil)
	_ database.PoolObserver = (*Prometheus)(nil)
)

// NewPrometheus creates the collectors and registers them together with the
// Go runtime and process collectors
func NewPrometheus() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		OperationTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_total",
				Help:      "Total lifecycle operations by result",
			},
			[]string{"op", "result"},
		),
		OperationLatencyMS: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_latency_ms",
				Help:      "Latency of lifecycle operations (ms)",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1ms .. ~2048ms
			},
			[]string{"op"},
		),
		ExpiredTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sessions_expired_total",
				Help:      "Total sessions moved to expired",
			},
			[]string{"reason"},
		),
		ReconciledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lockers_reconciled_total",
			Help:      "Total occupied lockers released without an active session",
		}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Active sessions seen by the last expiry sweep",
		}),
		PoolOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "open_connections",
			Help:      "Open database connections",
		}),
		PoolInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "in_use_connections",
			Help:      "Database connections currently in use",
		}),
		PoolIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "idle_connections",
			Help:      "Idle database connections",
		}),
		PoolWaits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_count",
			Help:      "Total connections waited for",
		}),
		PoolWaitSec: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "db_pool",
			Name:      "wait_seconds",
			Help:      "Total time blocked waiting for a connection",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.OperationTotal,
		m.OperationLatencyMS,
		m.ExpiredTotal,
		m.ReconciledTotal,
		m.ActiveSessions,
		m.PoolOpen,
		m.PoolInUse,
		m.PoolIdle,
		m.PoolWaits,
		m.PoolWaitSec,
	)

	return m
}

// ObserveOperation records the latency and outcome of an engine operation
func (m *Prometheus) ObserveOperation(operation string, err error, elapsed time.Duration) {
	result := "ok"
	if err != nil {
		result = string(errs.KindOf(err))
	}
	m.OperationTotal.WithLabelValues(operation, result).Inc()
	m.OperationLatencyMS.WithLabelValues(operation).Observe(float64(elapsed.Microseconds()) / 1000)
}

func (m *Prometheus) SessionsExpired(reason string, count int) {
	if count > 0 {
		m.ExpiredTotal.WithLabelValues(reason).Add(float64(count))
	}
}

func (m *Prometheus) LockersReconciled(count int) {
	if count > 0 {
		m.ReconciledTotal.Add(float64(count))
	}
}

func (m *Prometheus) SetActiveSessions(count int) {
	m.ActiveSessions.Set(float64(count))
}

// ObservePool copies connection pool statistics into gauges
func (m *Prometheus) ObservePool(stats sql.DBStats) {
	m.PoolOpen.Set(float64(stats.OpenConnections))
	m.PoolInUse.Set(float64(stats.InUse))
	m.PoolIdle.Set(float64(stats.Idle))
	m.PoolWaits.Set(float64(stats.WaitCount))
	m.PoolWaitSec.Set(stats.WaitDuration.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (m *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Prometheus) Registry() *prometheus.Registry {
	return m.registry
}
