package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	"github.com/shopspring/decimal"
)

// SessionStatus represents the lifecycle state of a rental session
type SessionStatus string

// Session statuses
const (
	SessionActive   SessionStatus = "active"
	SessionFinished SessionStatus = "finished"
	SessionExpired  SessionStatus = "expired"
	// SessionCancelled is part of the data model but no operation produces it
	SessionCancelled SessionStatus = "cancelled"
)

// PaymentStatus records the payment outcome of a session
type PaymentStatus string

// Payment statuses
const (
	PaymentNone   PaymentStatus = "none"
	PaymentPaid   PaymentStatus = "paid"
	PaymentFailed PaymentStatus = "failed"
)

// AccessMethod is how the user opened the locker door
type AccessMethod string

// Access methods
const (
	AccessRemote      AccessMethod = "remote"
	AccessRFID        AccessMethod = "rfid"
	AccessFingerprint AccessMethod = "fingerprint"
)

// MaxSessionHours is the upper bound of a planned session duration
const MaxSessionHours = 24.0

// Session represents one user's rental of one locker
type Session struct {
	ID            uint64          // Assigned by the session store on creation
	UserID        uint64          // Renting user
	LockerID      uint64          // Rented locker
	Status        SessionStatus   // Lifecycle state
	StartedAt     time.Time       // When the session began
	PlannedEndAt  time.Time       // StartedAt plus the planned duration
	EndedAt       *time.Time      // Set when the session leaves Active (nullable)
	AmountDue     decimal.Decimal // Billed amount with 2 decimal places
	Currency      string          // ISO currency code of AmountDue
	PaymentStatus PaymentStatus   // Payment outcome
	Items         []string        // Declared stored items
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewSession builds an active session priced at plannedHours × price
// The duration must be within (0, maxHours]
func NewSession(
	userID uint64,
	locker *Locker,
	plannedHours float64,
	maxHours float64,
	currency string,
	items []string,
	now time.Time,
) (*Session, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidateDuration(plannedHours, maxHours); err != nil {
		return nil, err
	}

	return &Session{
		UserID:        userID,
		LockerID:      locker.ID,
		Status:        SessionActive,
		StartedAt:     now,
		PlannedEndAt:  now.Add(HoursToDuration(plannedHours)),
		AmountDue:     CostForHours(plannedHours, locker.PricePerHour),
		Currency:      currency,
		PaymentStatus: PaymentNone,
		Items:         normalizeItems(items),
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// ValidateDuration checks that hours is in (0, maxHours]
func ValidateDuration(hours float64, maxHours float64) error {
	if maxHours <= 0 || maxHours > MaxSessionHours {
		maxHours = MaxSessionHours
	}
	if !(hours > 0) || hours > maxHours {
		return fmt.Errorf("%w: got %v", errs.ErrInvalidDuration, hours)
	}
	return nil
}

// HoursToDuration converts fractional hours to a time.Duration
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// ParsePaymentStatus validates a raw payment status value
func ParsePaymentStatus(status string) (PaymentStatus, error) {
	switch s := PaymentStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case PaymentNone, PaymentPaid, PaymentFailed:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidPaymentStatus, status)
	}
}

// ParseAccessMethod validates a raw unlock method
func ParseAccessMethod(method string) (AccessMethod, error) {
	switch m := AccessMethod(strings.ToLower(strings.TrimSpace(method))); m {
	case AccessRemote, AccessRFID, AccessFingerprint:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidAccessMethod, method)
	}
}

// IsActive reports whether the session is still running
func (s *Session) IsActive() bool {
	return s.Status == SessionActive
}

// IsTerminal reports whether the session reached Finished, Expired or Cancelled
func (s *Session) IsTerminal() bool {
	return !s.IsActive()
}

// IsOverdue reports whether now is at or past the planned end
func (s *Session) IsOverdue(now time.Time) bool {
	return !now.Before(s.PlannedEndAt)
}

// PlannedHours is the planned duration in hours
func (s *Session) PlannedHours() float64 {
	return s.PlannedEndAt.Sub(s.StartedAt).Hours()
}

// UsedHours is the time the session actually lasted, or has lasted so far
func (s *Session) UsedHours(now time.Time) float64 {
	end := now
	if s.EndedAt != nil {
		end = *s.EndedAt
	}
	used := end.Sub(s.StartedAt).Hours()
	if used < 0 {
		return 0
	}
	return used
}

// RemainingTime returns max(0, PlannedEndAt - now)
func (s *Session) RemainingTime(now time.Time) time.Duration {
	remaining := s.PlannedEndAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Finish ends the session at now. When the session ends early the amount is
// recomputed from the used hours and never raised above the original amount.
func (s *Session) Finish(now time.Time, pricePerHour decimal.Decimal, payment PaymentStatus) {
	s.EndedAt = &now
	used := s.UsedHours(now)
	if now.Before(s.PlannedEndAt) && used < s.PlannedHours() {
		recomputed := CostForHours(used, pricePerHour)
		if recomputed.LessThan(s.AmountDue) {
			s.AmountDue = recomputed
		}
	}
	s.Status = SessionFinished
	s.PaymentStatus = payment
	s.UpdatedAt = now
}

// Expire moves an overdue session to Expired with EndedAt = PlannedEndAt
// The amount due is left unchanged.
func (s *Session) Expire(now time.Time) {
	endedAt := s.PlannedEndAt
	s.EndedAt = &endedAt
	s.Status = SessionExpired
	s.UpdatedAt = now
}

// SettlePayment records a payment outcome on a terminal session
func (s *Session) SettlePayment(payment PaymentStatus, now time.Time) error {
	if s.IsActive() {
		return errs.ErrSessionStillActive
	}
	if s.PaymentStatus == PaymentPaid {
		return errs.ErrPaymentAlreadySettled
	}
	s.PaymentStatus = payment
	s.UpdatedAt = now
	return nil
}

func normalizeItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
