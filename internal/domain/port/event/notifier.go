package event

import (
	"context"
	"time"
)

// Type names a state change published to interested parties
type Type string

// Event types
const (
	SessionStarted      Type = "session.started"
	SessionEnded        Type = "session.ended"
	SessionExpired      Type = "session.expired"
	PaymentSettled      Type = "session.payment_settled"
	LockerStatusChanged Type = "locker.status_changed"
	LockerOpened        Type = "locker.opened"
)

// Event is a notification about a locker or session state change
type Event struct {
	ID         string         `json:"id"`
	Type       Type           `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	UserID     uint64         `json:"user_id,omitempty"`
	SessionID  uint64         `json:"session_id,omitempty"`
	LockerID   uint64         `json:"locker_id,omitempty"`
	Payload    map[string]any `json:"payload,omitempty"`
}

// Notifier delivers events. Publishing is fire-and-forget: a failed delivery
// never rolls back the state change that produced the event.
type Notifier interface {
	Publish(ctx context.Context, evt Event) error
}
