package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Locker represents the database model for lockers
type Locker struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	Name             string          `gorm:"size:64;not null;uniqueIndex:idx_lockers_name"`
	Status           string          `gorm:"size:20;not null;index:idx_lockers_status"`
	PricePerHour     decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	LastOpenedAt     *time.Time
	CurrentSessionID *uint64
	CreatedAt        time.Time `gorm:"not null"`
	UpdatedAt        time.Time `gorm:"not null"`
}

// TableName specifies the table name for Locker
func (Locker) TableName() string {
	return "lockers"
}
