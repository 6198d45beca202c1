package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqlitePragmas keep a single-file database usable under concurrent writers
const sqlitePragmas = "_busy_timeout=5000&_foreign_keys=on&_journal_mode=WAL"

// dialector returns the gorm dialector for the configured driver
func dialector(config *Config) (gorm.Dialector, error) {
	switch config.Driver {
	case DriverPostgres:
		return postgres.Open(config.DSN()), nil
	case DriverSQLite:
		return sqlite.Open(sqliteDSN(config.DSN())), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}

// sqliteDSN appends the pragmas unless the path already carries its own query string
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	if path == ":memory:" {
		return "file::memory:?_foreign_keys=on"
	}
	return "file:" + path + "?" + sqlitePragmas
}
