package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/shopspring/decimal"
)

// LockerStatus represents the availability of a locker
type LockerStatus string

// Locker statuses
const (
	LockerAvailable   LockerStatus = "available"
	LockerOccupied    LockerStatus = "occupied"
	LockerMaintenance LockerStatus = "maintenance"
	LockerOutOfOrder  LockerStatus = "out_of_order"
)

// Locker represents a physical locker that can be rented by the hour
type Locker struct {
	ID               uint64          // Unique identifier for the locker
	Name             string          // Display name, e.g. "A-12"
	Status           LockerStatus    // Current availability
	PricePerHour     decimal.Decimal // Hourly price with 2 decimal places
	LastOpenedAt     *time.Time      // Last time the door was unlocked (nullable)
	CurrentSessionID *uint64         // Active session occupying the locker (nullable)
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// NewLocker creates a new available locker with the given hourly price
func NewLocker(name string, pricePerHour string, timeProvider coreport.TimeProvider) (*Locker, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: locker name is required", errs.ErrInvalidRequest)
	}

	price, err := ParsePrice(pricePerHour)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &Locker{
		Name:         name,
		Status:       LockerAvailable,
		PricePerHour: price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// ParseLockerStatus validates a raw status value
func ParseLockerStatus(status string) (LockerStatus, error) {
	switch s := LockerStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case LockerAvailable, LockerOccupied, LockerMaintenance, LockerOutOfOrder:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %s", errs.ErrInvalidLockerStatus, status)
	}
}

// IsAvailable reports whether a new session may start on the locker
func (l *Locker) IsAvailable() bool {
	return l.Status == LockerAvailable
}

// Occupy marks the locker as held by the given session
func (l *Locker) Occupy(sessionID uint64, now time.Time) {
	l.Status = LockerOccupied
	l.CurrentSessionID = &sessionID
	l.UpdatedAt = now
}

// Release frees the locker and clears the session reference
func (l *Locker) Release(now time.Time) {
	l.Status = LockerAvailable
	l.CurrentSessionID = nil
	l.UpdatedAt = now
}

// MarkOpened records a door unlock
func (l *Locker) MarkOpened(now time.Time) {
	l.LastOpenedAt = &now
	l.UpdatedAt = now
}

// HeldBy reports whether the locker references the given session
func (l *Locker) HeldBy(sessionID uint64) bool {
	return l.CurrentSessionID != nil && *l.CurrentSessionID == sessionID
}
