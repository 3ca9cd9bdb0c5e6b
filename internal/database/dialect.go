package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"vocab-builder/internal/config"

	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/reflectx"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	_ "github.com/sijms/go-ora/v2"  // Oracle driver
)

func init() {
	// go-ora registers itself as "oracle", which sqlx does not know about.
	sqlx.BindDriver(config.DriverOracle, sqlx.NAMED)
}

// Dialect captures what differs between the supported databases.
type Dialect interface {
	// DriverName returns the driver name for sqlx.Open
	DriverName() string

	// Configure applies pool limits, session settings and column mapping
	Configure(db *sqlx.DB) error

	// MigrationsSubdir returns the directory under migrations/ holding this dialect's files
	MigrationsSubdir() string
}

// DialectFor returns the dialect registered under driver.
func DialectFor(driver string) (Dialect, error) {
	switch driver {
	case config.DriverSQLite, "sqlite", "":
		return sqliteDialect{}, nil
	case config.DriverPostgres, "postgresql":
		return postgresDialect{}, nil
	case config.DriverOracle:
		return oracleDialect{}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func configurePool(db *sql.DB, maxOpen, maxIdle int) {
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)
}

type sqliteDialect struct{}

func (sqliteDialect) DriverName() string       { return config.DriverSQLite }
func (sqliteDialect) MigrationsSubdir() string { return "sqlite" }

func (sqliteDialect) Configure(db *sqlx.DB) error {
	configurePool(db.DB, 10, 5)
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}
	_, err := db.Exec("PRAGMA foreign_keys=ON;")
	return err
}

type postgresDialect struct{}

func (postgresDialect) DriverName() string       { return config.DriverPostgres }
func (postgresDialect) MigrationsSubdir() string { return "postgres" }

func (postgresDialect) Configure(db *sqlx.DB) error {
	configurePool(db.DB, 25, 5)
	return nil
}

type oracleDialect struct{}

func (oracleDialect) DriverName() string       { return config.DriverOracle }
func (oracleDialect) MigrationsSubdir() string { return "oracle" }

// Configure upper-cases db tags because Oracle reports unquoted column names
// in upper case.
func (oracleDialect) Configure(db *sqlx.DB) error {
	configurePool(db.DB, 25, 5)
	db.Mapper = reflectx.NewMapperTagFunc("db", strings.ToUpper, strings.ToUpper)
	return nil
}
