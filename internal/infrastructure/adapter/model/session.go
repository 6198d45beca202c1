package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Session represents the database model for rental sessions
type Session struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	UserID        uint64          `gorm:"not null;index:idx_sessions_user_started,priority:1"`
	LockerID      uint64          `gorm:"not null;index:idx_sessions_locker"`
	Status        string          `gorm:"size:20;not null;index:idx_sessions_status_planned_end,priority:1"`
	StartedAt     time.Time       `gorm:"not null;index:idx_sessions_user_started,priority:2"`
	PlannedEndAt  time.Time       `gorm:"not null;index:idx_sessions_status_planned_end,priority:2"`
	EndedAt       *time.Time      // Set once the session leaves active
	AmountDue     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Currency      string          `gorm:"size:3;not null"`
	PaymentStatus string          `gorm:"size:20;not null;default:none"`
	Items         []string        `gorm:"type:text;serializer:json"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Session
func (Session) TableName() string {
	return "sessions"
}
