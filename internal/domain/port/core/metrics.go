package core

import "time"

// Metrics records lifecycle and sweeper measurements
type Metrics interface {
	// ObserveOperation records the latency and outcome of an engine operation
	ObserveOperation(operation string, err error, elapsed time.Duration)
	// SessionsExpired counts sessions moved to Expired; reason is "sweep" or "reclaim"
	SessionsExpired(reason string, count int)
	// LockersReconciled counts occupied lockers released without an active session
	LockersReconciled(count int)
	// SetActiveSessions reports the number of active sessions seen by the last sweep
	SetActiveSessions(count int)
}
