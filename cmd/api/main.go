package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
	lockerUseCase "github.com/amirhossein-jamali/locker-rental/internal/domain/usecase/locker"
	sessionUseCase "github.com/amirhossein-jamali/locker-rental/internal/domain/usecase/session"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/usecase/sweeper"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/lock"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/notification"
	timeProvider "github.com/amirhossein-jamali/locker-rental/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/locker-rental/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		JSON:    cfg.Logger.Format == "json" || cfg.Environment == config.Production,
		Level:   logger.ParseLevel(cfg.Logger.Level),
		Caller:  cfg.Logger.CallerInfo,
		Service: "locker-rental",
	})
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Service stopped with an error", map[string]any{"error": err.Error()})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	promMetrics := metrics.NewPrometheus()

	// Database
	dbManager := database.NewManager(database.FromAppConfig(cfg), appLogger, tp).
		WithPoolObserver(promMetrics)
	if _, err := dbManager.Connect(ctx); err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			appLogger.Warn("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()

	// Guard
	guard, err := buildGuard(ctx, cfg, dbManager, tp, appLogger)
	if err != nil {
		return err
	}

	// Notifications
	dispatcher := notification.NewDispatcher(appLogger)
	dispatcher.SubscribeAll(func(_ context.Context, evt event.Event) error {
		appLogger.Debug("Lifecycle event", map[string]any{
			"event_id":   evt.ID,
			"event_type": string(evt.Type),
			"session_id": evt.SessionID,
			"locker_id":  evt.LockerID,
		})
		return nil
	})
	notifiers := []event.Notifier{dispatcher}

	var redisPublisher *notification.RedisPublisher
	if cfg.Redis.Enabled {
		redisPublisher = notification.NewRedisPublisher(ctx, notification.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Channel:  cfg.Redis.Channel,
		}, appLogger)
		defer redisPublisher.Close()
		notifiers = append(notifiers, redisPublisher)
	}
	notifier := notification.NewComposite(notifiers...)

	// Use cases
	lockTimeout := cfg.Locking.AcquireTimeout
	lockers := lockerUseCase.NewLockerUseCase(uow, guard, notifier, tp, appLogger, lockTimeout)
	sessions := sessionUseCase.NewSessionService(uow, guard, notifier, promMetrics, tp, appLogger, sessionUseCase.Config{
		MaxDurationHours: cfg.Session.MaxDurationHours,
		Currency:         cfg.Billing.Currency,
		LockTimeout:      lockTimeout,
	})

	seeds := make([]migration.LockerSeed, 0, len(cfg.Lockers.Seed))
	for _, s := range cfg.Lockers.Seed {
		seeds = append(seeds, migration.LockerSeed{Name: s.Name, PricePerHour: s.PricePerHour})
	}
	if err := migration.SeedLockers(ctx, lockers, seeds, appLogger); err != nil {
		appLogger.Error("Failed to provision lockers", map[string]any{"error": err.Error()})
	}

	// Expiry sweeper
	var expirySweeper *sweeper.ExpirySweeper
	if cfg.Sweeper.Enabled {
		expirySweeper = sweeper.NewExpirySweeper(sessions, tp, appLogger, sweeper.Config{
			Interval:        cfg.Sweeper.Interval,
			ReclaimInterval: cfg.Sweeper.ReclaimInterval,
			ReclaimGrace:    cfg.Sweeper.ReclaimGrace,
		})
		expirySweeper.Start(ctx)
	}

	// HTTP
	health := handler.NewHealthHandler(2*time.Second, appLogger).
		AddCheck("database", dbManager.Ping)
	if redisPublisher != nil {
		health.AddCheck("redis", redisPublisher.Ping)
	}

	opts := routes.Options{
		Identity:       identity(cfg, tp, appLogger),
		RateLimit:      rate.Limit(cfg.HTTP.RateLimitPerSec),
		RateBurst:      cfg.HTTP.RateBurst,
		LockerCache:    cache.New(cfg.HTTP.LockerCacheTTL, 2*cfg.HTTP.LockerCacheTTL),
		LockerCacheTTL: cfg.HTTP.LockerCacheTTL,
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, opts)
	routes.SetupRoutes(router, routes.Handlers{
		Sessions: handler.NewSessionHandler(sessions, tp, appLogger),
		Lockers:  handler.NewLockerHandler(lockers, appLogger),
		Health:   health,
		Metrics:  promMetrics.Handler(),
	}, opts)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":         server.Addr,
			"env":          cfg.Environment,
			"locking_mode": cfg.Locking.Mode,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	// in-flight requests are done; stop the sweeper before the database goes away
	if expirySweeper != nil {
		expirySweeper.Stop()
		stats := expirySweeper.Stats()
		appLogger.Info("Expiry sweeper stopped", map[string]any{
			"runs":    stats.Runs,
			"expired": stats.Expired,
			"failed":  stats.Failed,
		})
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}

// buildGuard picks the in-process guard for single instance deployments and
// database leases when several instances share one database
func buildGuard(
	ctx context.Context,
	cfg *config.Config,
	dbManager *database.Manager,
	tp coreport.TimeProvider,
	appLogger coreport.Logger,
) (coreport.Guard, error) {
	switch cfg.Locking.Mode {
	case "", config.LockingLocal:
		return lock.NewLocalGuard(), nil
	case config.LockingDatabase:
		leaseCfg := lock.DefaultLeaseConfig()
		leaseCfg.TTL = cfg.Locking.LeaseTTL
		leaseCfg.PollInterval = cfg.Locking.PollInterval
		guard := lock.NewLeaseGuard(dbManager.EntityLockRepository(), tp, appLogger, leaseCfg)

		purged, err := guard.PurgeExpired(ctx)
		if err != nil {
			appLogger.Warn("Failed to purge expired leases", map[string]any{"error": err.Error()})
		} else if purged > 0 {
			appLogger.Info("Purged expired leases", map[string]any{"count": purged})
		}
		return guard, nil
	default:
		return nil, fmt.Errorf("unknown locking mode %q", cfg.Locking.Mode)
	}
}

// identity authenticates API callers with JWTs, or with the X-User-ID header
// when auth is disabled outside production
func identity(cfg *config.Config, tp coreport.TimeProvider, appLogger coreport.Logger) gin.HandlerFunc {
	if !cfg.Auth.Enabled {
		appLogger.Warn("Authentication disabled; trusting the "+middleware.UserIDHeader+" header", nil)
		return middleware.HeaderIdentity()
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTLMinutes, tp)
	return middleware.Auth(tokens)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}
	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	switch cfg.Database.Driver {
	case database.DriverSQLite:
		if cfg.Database.SQLitePath == "" {
			missingConfigs = append(missingConfigs, "database.sqlitePath (or LR_DB_SQLITE_PATH environment variable)")
		}
	case database.DriverPostgres, "":
		required := map[string]string{
			"database.host":     cfg.Database.Host,
			"database.port":     cfg.Database.Port,
			"database.username": cfg.Database.Username,
			"database.password": cfg.Database.Password,
			"database.database": cfg.Database.Database,
		}
		for _, key := range []string{"database.host", "database.port", "database.username", "database.password", "database.database"} {
			if required[key] == "" {
				missingConfigs = append(missingConfigs, key)
			}
		}
	default:
		return fmt.Errorf("invalid database driver: %s, must be one of: %s, %s",
			cfg.Database.Driver, database.DriverPostgres, database.DriverSQLite)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}

	if cfg.Auth.Enabled && cfg.Auth.JWTSecret == "" {
		missingConfigs = append(missingConfigs, "auth.jwtSecret (or LR_AUTH_JWT_SECRET environment variable)")
	}
	if cfg.Redis.Enabled && cfg.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "redis.addr")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if cfg.Locking.Mode == config.LockingDatabase {
		if err := lock.CheckLeaseTTL(cfg.Locking.LeaseTTL, cfg.Locking.AcquireTimeout, cfg.Database.QueryTimeout); err != nil {
			return fmt.Errorf("invalid locking configuration: %w", err)
		}
	}

	if cfg.Environment == config.Production {
		if !cfg.Auth.Enabled {
			return errors.New("auth.enabled must be true in production")
		}

		var warnings []string
		if cfg.Database.Driver == database.DriverSQLite {
			warnings = append(warnings, "database.driver sqlite is meant for development and tests")
		}
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if cfg.Database.Driver != database.DriverSQLite && sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}
		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
