package dto

import (
	"time"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// UpdateLockerRequest represents an administrative status change
type UpdateLockerRequest struct {
	Status string `json:"status" binding:"required"`
}

// LockerResponse represents a locker in API responses
type LockerResponse struct {
	ID               uint64     `json:"id"`
	Name             string     `json:"name"`
	Status           string     `json:"status"`
	PricePerHour     string     `json:"price_per_hour"`
	LastOpenedAt     *time.Time `json:"last_opened_at,omitempty"`
	CurrentSessionID *uint64    `json:"current_session_id,omitempty"`
}

func NewLockerResponse(l *entity.Locker) LockerResponse {
	return LockerResponse{
		ID:               l.ID,
		Name:             l.Name,
		Status:           string(l.Status),
		PricePerHour:     entity.FormatMoney(l.PricePerHour),
		LastOpenedAt:     l.LastOpenedAt,
		CurrentSessionID: l.CurrentSessionID,
	}
}

// NewLockerListResponse maps a list, never returning null
func NewLockerListResponse(lockers []*entity.Locker) []LockerResponse {
	out := make([]LockerResponse, 0, len(lockers))
	for _, l := range lockers {
		out = append(out, NewLockerResponse(l))
	}
	return out
}
