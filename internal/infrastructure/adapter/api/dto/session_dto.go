package dto

import (
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// StartSessionRequest represents the API request for starting a session
type StartSessionRequest struct {
	LockerID             uint64   `json:"locker_id" binding:"required"`
	PlannedDurationHours float64  `json:"planned_duration_hours"`
	Items                []string `json:"items"`
}

// UpdateSessionRequest ends a session when status is "finished", otherwise
// settles the payment of a terminal session
type UpdateSessionRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

// UnlockRequest represents the API request for opening the locker door
type UnlockRequest struct {
	Method string `json:"method" binding:"required"`
}

// SessionResponse represents a session in API responses
type SessionResponse struct {
	ID               uint64     `json:"id"`
	UserID           uint64     `json:"user_id"`
	LockerID         uint64     `json:"locker_id"`
	Status           string     `json:"status"`
	StartedAt        time.Time  `json:"started_at"`
	PlannedEndAt     time.Time  `json:"planned_end_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
	AmountDue        string     `json:"amount_due"`
	Currency         string     `json:"currency"`
	PaymentStatus    string     `json:"payment_status"`
	Items            []string   `json:"items"`
	RemainingSeconds int64      `json:"remaining_seconds"`
}

// RemainingTimeResponse represents the time left in a session
type RemainingTimeResponse struct {
	SessionID        uint64    `json:"session_id"`
	PlannedEndAt     time.Time `json:"planned_end_at"`
	RemainingSeconds int64     `json:"remaining_seconds"`
}

// StatisticsResponse summarizes a user's history
type StatisticsResponse struct {
	UserID           uint64 `json:"user_id"`
	TotalSessions    int    `json:"total_sessions"`
	ActiveSessions   int    `json:"active_sessions"`
	FinishedSessions int    `json:"finished_sessions"`
	ExpiredSessions  int    `json:"expired_sessions"`
	TotalHours       string `json:"total_hours"`
	TotalAmountDue   string `json:"total_amount_due"`
	TotalAmountPaid  string `json:"total_amount_paid"`
}

// NewSessionResponse maps a session; remaining is the time left at the moment of the response
func NewSessionResponse(s *entity.Session, remaining time.Duration) SessionResponse {
	items := s.Items
	if items == nil {
		items = []string{}
	}
	return SessionResponse{
		ID:               s.ID,
		UserID:           s.UserID,
		LockerID:         s.LockerID,
		Status:           string(s.Status),
		StartedAt:        s.StartedAt,
		PlannedEndAt:     s.PlannedEndAt,
		EndedAt:          s.EndedAt,
		AmountDue:        entity.FormatMoney(s.AmountDue),
		Currency:         s.Currency,
		PaymentStatus:    string(s.PaymentStatus),
		Items:            items,
		RemainingSeconds: int64(remaining / time.Second),
	}
}

// NewStatisticsResponse maps user statistics
func NewStatisticsResponse(stats *entity.UserStatistics) StatisticsResponse {
	return StatisticsResponse{
		UserID:           stats.UserID,
		TotalSessions:    stats.TotalSessions,
		ActiveSessions:   stats.ActiveSessions,
		FinishedSessions: stats.FinishedSessions,
		ExpiredSessions:  stats.ExpiredSessions,
		TotalHours:       stats.TotalHours.String(),
		TotalAmountDue:   entity.FormatMoney(stats.TotalAmountDue),
		TotalAmountPaid:  entity.FormatMoney(stats.TotalAmountPaid),
	}
}
