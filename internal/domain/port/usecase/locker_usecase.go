package usecase

import (
	"context"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// LockerUseCase is the Locker Registry
type LockerUseCase interface {
	// Get returns a locker by ID
	Get(ctx context.Context, lockerID uint64) (*entity.Locker, error)

	// ListAvailable returns lockers a new session can start on
	ListAvailable(ctx context.Context) ([]*entity.Locker, error)

	// List returns every locker
	List(ctx context.Context) ([]*entity.Locker, error)

	// SetStatus applies an administrative status change; occupied lockers are refused
	SetStatus(ctx context.Context, lockerID uint64, status entity.LockerStatus) (*entity.Locker, error)

	// Provision creates a locker unless one with the same name exists
	Provision(ctx context.Context, name string, pricePerHour string) (*entity.Locker, error)
}
