package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/locker-rental/internal/domain/error"
	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/repository"
)

// LeaseConfig tunes the database guard
type LeaseConfig struct {
	TTL            time.Duration // how long a crashed holder blocks the key
	PollInterval   time.Duration
	ReleaseTimeout time.Duration
	Retry          database.RetryConfig
}

// DefaultLeaseConfig returns the settings used when none are configured
func DefaultLeaseConfig() LeaseConfig {
	return LeaseConfig{
		TTL:            30 * time.Second,
		PollInterval:   25 * time.Millisecond,
		ReleaseTimeout: 2 * time.Second,
		Retry:          database.DefaultRetryConfig(),
	}
}

// CheckLeaseTTL reports whether ttl covers a holder that waited the full
// acquireTimeout for its last key and then ran for operationBudget, with a
// factor of two to spare. Leases are not renewed, so a holder that outlives
// its TTL silently loses exclusion.
func CheckLeaseTTL(ttl, acquireTimeout, operationBudget time.Duration) error {
	if minimum := 2 * (acquireTimeout + operationBudget); ttl < minimum {
		return fmt.Errorf("lease TTL %s is shorter than %s (twice the acquire timeout %s plus operation budget %s)",
			ttl, minimum, acquireTimeout, operationBudget)
	}
	return nil
}

// LeaseGuard serializes lifecycle operations across service instances with
// lease rows. A key is free when no row exists or the row has expired.
type LeaseGuard struct {
	repo         persistence.EntityLockRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	classifier   *repository.ErrorClassifier
	instanceID   string
	cfg          LeaseConfig
}

var _ coreport.Guard = (*LeaseGuard)(nil)

// NewLeaseGuard creates a database-backed guard
func NewLeaseGuard(repo persistence.EntityLockRepository, timeProvider coreport.TimeProvider, logger coreport.Logger, cfg LeaseConfig) *LeaseGuard {
	defaults := DefaultLeaseConfig()
	if cfg.TTL <= 0 {
		cfg.TTL = defaults.TTL
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaults.PollInterval
	}
	if cfg.ReleaseTimeout <= 0 {
		cfg.ReleaseTimeout = defaults.ReleaseTimeout
	}
	if cfg.Retry.MaxRetries <= 0 {
		cfg.Retry = defaults.Retry
	}

	return &LeaseGuard{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
		classifier:   repository.NewErrorClassifier(),
		instanceID:   uuid.NewString(),
		cfg:          cfg,
	}
}

// Lock takes a lease on every key in sorted order, polling until ctx is done.
// Each call uses its own owner token so two goroutines of one instance exclude each other.
func (g *LeaseGuard) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalizeKeys(keys)
	owner := g.instanceID + "/" + uuid.NewString()

	held := make([]string, 0, len(keys))
	var firstHeld time.Time
	for _, key := range keys {
		if err := g.acquire(ctx, key, owner); err != nil {
			g.releaseAll(held, owner)
			return nil, err
		}
		if len(held) == 0 {
			firstHeld = g.timeProvider.Now()
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			if elapsed := g.timeProvider.Now().Sub(firstHeld); len(held) > 0 && elapsed > g.cfg.TTL {
				g.logger.Warn("Lease held past its TTL, exclusion may have been lost", map[string]any{
					"lock_keys": held,
					"held_for":  elapsed.String(),
					"ttl":       g.cfg.TTL.String(),
				})
			}
			g.releaseAll(held, owner)
		})
	}, nil
}

func (g *LeaseGuard) acquire(ctx context.Context, key string, owner string) error {
	for {
		var acquired bool
		err := database.RetryOnTransientError(ctx, g.cfg.Retry, func() error {
			var err error
			acquired, err = g.repo.TryAcquire(ctx, key, owner, g.cfg.TTL)
			return err
		}, g.classifier, g.logger)
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return errors.Join(errs.ErrEntityLocked, err)
			}
			return err
		}
		if acquired {
			return nil
		}

		timer := time.NewTimer(g.cfg.PollInterval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			g.logger.Debug("Gave up waiting for lease", map[string]any{
				"lock_key": key,
				"error":    ctx.Err().Error(),
			})
			return errors.Join(errs.ErrEntityLocked, ctx.Err())
		}
	}
}

// releaseAll runs on a fresh context: the caller's may already be cancelled
func (g *LeaseGuard) releaseAll(keys []string, owner string) {
	if len(keys) == 0 {
		return
	}

	ctx, cancel := g.timeProvider.WithTimeout(context.Background(), coreport.Duration(g.cfg.ReleaseTimeout))
	defer cancel()

	for i := len(keys) - 1; i >= 0; i-- {
		if err := g.repo.Release(ctx, keys[i], owner); err != nil {
			g.logger.Warn("Lease release failed, it will expire after its TTL", map[string]any{
				"lock_key": keys[i],
				"ttl":      g.cfg.TTL.String(),
				"error":    err.Error(),
			})
		}
	}
}

// PurgeExpired removes stale lease rows left by crashed holders
func (g *LeaseGuard) PurgeExpired(ctx context.Context) (int64, error) {
	return g.repo.PurgeExpired(ctx, g.timeProvider.Now())
}
