package model

import (
	"time"
)

// EntityLock is a leased lock on a lifecycle key such as "locker:12"
type EntityLock struct {
	LockKey    string    `gorm:"primaryKey;size:128"`
	Owner      string    `gorm:"size:64;not null"`
	AcquiredAt time.Time `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index:idx_entity_locks_expires_at"`
}

// TableName specifies the table name for EntityLock
func (EntityLock) TableName() string {
	return "entity_locks"
}
