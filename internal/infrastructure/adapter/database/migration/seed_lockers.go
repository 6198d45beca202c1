package migration

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/locker-rental/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
)

// LockerProvisioner creates a locker unless one with the same name exists
type LockerProvisioner interface {
	Provision(ctx context.Context, name string, pricePerHour string) (*entity.Locker, error)
}

// LockerSeed is one locker to provision at startup
type LockerSeed struct {
	Name         string
	PricePerHour string
}

// SeedLockers provisions the configured lockers. Existing lockers keep their state.
func SeedLockers(ctx context.Context, provisioner LockerProvisioner, seeds []LockerSeed, logger coreport.Logger) error {
	for _, seed := range seeds {
		locker, err := provisioner.Provision(ctx, seed.Name, seed.PricePerHour)
		if err != nil {
			return fmt.Errorf("seed locker %q: %w", seed.Name, err)
		}
		logger.Debug("Locker seeded", map[string]any{
			"locker_id": locker.ID,
			"name":      locker.Name,
			"status":    string(locker.Status),
		})
	}

	if len(seeds) > 0 {
		logger.Info("Lockers provisioned", map[string]any{"count": len(seeds)})
	}
	return nil
}
