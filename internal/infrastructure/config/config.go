package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Session     SessionConfig  `mapstructure:"session"`
	Billing     BillingConfig  `mapstructure:"billing"`
	Sweeper     SweeperConfig  `mapstructure:"sweeper"`
	Locking     LockingConfig  `mapstructure:"locking"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Redis       RedisConfig    `mapstructure:"redis"`
	HTTP        HTTPConfig     `mapstructure:"http"`
	Lockers     LockersConfig  `mapstructure:"lockers"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres | sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// SessionConfig bounds what a user may book
type SessionConfig struct {
	MaxDurationHours float64 `mapstructure:"maxDurationHours"`
}

// BillingConfig contains pricing settings
type BillingConfig struct {
	Currency string `mapstructure:"currency"`
}

// SweeperConfig controls the expiry sweeper
type SweeperConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Interval        time.Duration `mapstructure:"interval"`        // seconds
	ReclaimInterval time.Duration `mapstructure:"reclaimInterval"` // minutes
	ReclaimGrace    time.Duration `mapstructure:"reclaimGrace"`    // hours
}

// LockingConfig selects how lifecycle operations are serialized
type LockingConfig struct {
	Mode           string        `mapstructure:"mode"`           // local | database
	LeaseTTL       time.Duration `mapstructure:"leaseTTL"`       // seconds
	AcquireTimeout time.Duration `mapstructure:"acquireTimeout"` // milliseconds
	PollInterval   time.Duration `mapstructure:"pollInterval"`   // milliseconds
}

// AuthConfig contains JWT settings
type AuthConfig struct {
	Enabled         bool   `mapstructure:"enabled"`
	JWTSecret       string `mapstructure:"jwtSecret"`
	Issuer          string `mapstructure:"issuer"`
	TokenTTLMinutes int    `mapstructure:"tokenTTLMinutes"`
}

// RedisConfig contains the notification pub/sub connection
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Channel  string `mapstructure:"channel"`
}

// HTTPConfig contains API middleware settings
type HTTPConfig struct {
	RateLimitPerSec float64       `mapstructure:"rateLimitPerSec"`
	RateBurst       int           `mapstructure:"rateBurst"`
	LockerCacheTTL  time.Duration `mapstructure:"lockerCacheTTL"` // seconds
}

// LockersConfig lists the lockers provisioned at startup
type LockersConfig struct {
	Seed []LockerSeed `mapstructure:"seed"`
}

// LockerSeed describes one provisioned locker
type LockerSeed struct {
	Name         string `mapstructure:"name"`
	PricePerHour string `mapstructure:"pricePerHour"`
}
