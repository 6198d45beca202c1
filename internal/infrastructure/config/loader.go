package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// Locking modes
const (
	LockingLocal    = "local"
	LockingDatabase = "database"
)

// EnvPrefix is the prefix of every environment variable read by the service
const EnvPrefix = "LR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
	"../../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	return LoadFromPaths(getEnvironment(), ConfigPaths)
}

// LoadFromPaths reads <env>.yaml from the first matching path and applies
// defaults and LR_* environment overrides
func LoadFromPaths(env string, paths []string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range paths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "locker-rental.db")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 10)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("session.maxDurationHours", 24)
	v.SetDefault("billing.currency", "EUR")

	v.SetDefault("sweeper.enabled", true)
	v.SetDefault("sweeper.interval", 60)        // seconds
	v.SetDefault("sweeper.reclaimInterval", 60) // minutes
	v.SetDefault("sweeper.reclaimGrace", 24)    // hours

	v.SetDefault("locking.mode", LockingLocal)
	v.SetDefault("locking.leaseTTL", 30)         // seconds
	v.SetDefault("locking.acquireTimeout", 5000) // milliseconds
	v.SetDefault("locking.pollInterval", 50)     // milliseconds

	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.issuer", "locker-rental")
	v.SetDefault("auth.tokenTTLMinutes", 60)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "locker-rental.events")

	v.SetDefault("http.rateLimitPerSec", 20)
	v.SetDefault("http.rateBurst", 40)
	v.SetDefault("http.lockerCacheTTL", 5) // seconds
}

// getEnvironment determines the environment to use based on LR_ENV environment variable
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"LR_DB_DRIVER":        "database.driver",
		"LR_DB_HOST":          "database.host",
		"LR_DB_PORT":          "database.port",
		"LR_DB_USERNAME":      "database.username",
		"LR_DB_PASSWORD":      "database.password",
		"LR_DB_NAME":          "database.database",
		"LR_DB_SSL_MODE":      "database.sslMode",
		"LR_DB_SQLITE_PATH":   "database.sqlitePath",
		"LR_SERVER_HOST":      "server.host",
		"LR_SERVER_PORT":      "server.port",
		"LR_LOGGER_LEVEL":     "logger.level",
		"LR_AUTH_JWT_SECRET":  "auth.jwtSecret",
		"LR_REDIS_ADDR":       "redis.addr",
		"LR_REDIS_PASSWORD":   "redis.password",
		"LR_LOCKING_MODE":     "locking.mode",
		"LR_BILLING_CURRENCY": "billing.currency",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if maxOpenConns := getEnvInt("LR_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("LR_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("LR_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if interval := getEnvInt("LR_SWEEPER_INTERVAL_SECONDS", 0); interval > 0 {
		v.Set("sweeper.interval", interval)
	}
	if grace := getEnvInt("LR_SWEEPER_RECLAIM_GRACE_HOURS", 0); grace > 0 {
		v.Set("sweeper.reclaimGrace", grace)
	}
	if enabled := os.Getenv("LR_REDIS_ENABLED"); enabled != "" {
		v.Set("redis.enabled", enabled == "true" || enabled == "1")
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = config.Server.ReadTimeout * time.Second
	config.Server.WriteTimeout = config.Server.WriteTimeout * time.Second
	config.Server.IdleTimeout = config.Server.IdleTimeout * time.Second
	config.Server.ReadHeaderTimeout = config.Server.ReadHeaderTimeout * time.Second
	config.Server.ShutdownTimeout = config.Server.ShutdownTimeout * time.Second

	config.Database.ConnMaxLifetime = config.Database.ConnMaxLifetime * time.Minute
	config.Database.ConnMaxIdleTime = config.Database.ConnMaxIdleTime * time.Minute
	config.Database.QueryTimeout = config.Database.QueryTimeout * time.Second
	config.Database.RetryDelay = config.Database.RetryDelay * time.Second

	config.Sweeper.Interval = config.Sweeper.Interval * time.Second
	config.Sweeper.ReclaimInterval = config.Sweeper.ReclaimInterval * time.Minute
	config.Sweeper.ReclaimGrace = config.Sweeper.ReclaimGrace * time.Hour

	config.Locking.LeaseTTL = config.Locking.LeaseTTL * time.Second
	config.Locking.AcquireTimeout = config.Locking.AcquireTimeout * time.Millisecond
	config.Locking.PollInterval = config.Locking.PollInterval * time.Millisecond

	config.HTTP.LockerCacheTTL = config.HTTP.LockerCacheTTL * time.Second
}
