package persistence

import (
	"context"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
)

// LockerRepository defines the Locker Registry storage
type LockerRepository interface {
	// GetByID retrieves a locker by ID
	//
	// Possible errors:
	// - ErrLockerNotFound: If the locker doesn't exist
	// - ErrStorageUnavailable: If the database fails
	GetByID(ctx context.Context, id uint64) (*entity.Locker, error)

	// ListAvailable returns every locker whose status is available, order-insignificant
	ListAvailable(ctx context.Context) ([]*entity.Locker, error)

	// ListAll returns every locker ordered by ID
	ListAll(ctx context.Context) ([]*entity.Locker, error)

	// Create provisions a new locker and assigns its ID
	Create(ctx context.Context, locker *entity.Locker) error

	// Update overwrites status, session reference, price and last opened time
	//
	// Possible errors:
	// - ErrLockerNotFound: If the locker doesn't exist
	// - ErrStorageUnavailable: If the database fails
	Update(ctx context.Context, locker *entity.Locker) error

	// SetStatus changes the status without transition validation
	//
	// Possible errors:
	// - ErrLockerNotFound: If the locker doesn't exist
	// - ErrStorageUnavailable: If the database fails
	SetStatus(ctx context.Context, id uint64, status entity.LockerStatus) error

	// GetByName looks a locker up by its display name, used when provisioning
	GetByName(ctx context.Context, name string) (*entity.Locker, error)
}
