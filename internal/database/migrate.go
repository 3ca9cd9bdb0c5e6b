package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"vocab-builder/internal/config"
	"vocab-builder/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationFS embed.FS

// Direction selects which way migrations run.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// RunMigrations applies (or reverts) every migration for the connection's driver.
//
// SQLite and PostgreSQL go through golang-migrate. golang-migrate has no
// go-ora driver, so Oracle files are executed statement by statement and
// tracked in schema_migrations by file name; Oracle only migrates up.
func RunMigrations(ctx context.Context, db *sqlx.DB, direction Direction) error {
	dialect, err := DialectFor(db.DriverName())
	if err != nil {
		return err
	}
	dir := "migrations/" + dialect.MigrationsSubdir()

	if dialect.DriverName() == config.DriverOracle {
		if direction != Up {
			return fmt.Errorf("oracle migrations only support %q", Up)
		}
		return runOracleMigrations(ctx, db, dir)
	}

	src, err := iofs.New(migrationFS, dir)
	if err != nil {
		return fmt.Errorf("could not open embedded migrations: %w", err)
	}

	var driver database.Driver
	switch dialect.DriverName() {
	case config.DriverPostgres:
		driver, err = postgres.WithInstance(db.DB, &postgres.Config{})
	default:
		driver, err = sqlite3.WithInstance(db.DB, &sqlite3.Config{})
	}
	if err != nil {
		return fmt.Errorf("could not create migrate driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, dialect.DriverName(), driver)
	if err != nil {
		return fmt.Errorf("could not create migrator: %w", err)
	}

	switch direction {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", direction, err)
	}

	version, dirty, verr := m.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("could not read migration version: %w", verr)
	}
	logger.Get().Info("Migrations completed",
		zap.String("driver", dialect.DriverName()),
		zap.String("direction", string(direction)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}

const oracleMigrationsTable = `CREATE TABLE schema_migrations (
	filename VARCHAR2(255) PRIMARY KEY,
	executed_at TIMESTAMP WITH TIME ZONE NOT NULL
)`

func runOracleMigrations(ctx context.Context, db *sqlx.DB, dir string) error {
	var tableCount int
	if err := db.GetContext(ctx, &tableCount,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`); err != nil {
		return fmt.Errorf("could not inspect schema: %w", err)
	}
	if tableCount == 0 {
		if _, err := db.ExecContext(ctx, oracleMigrationsTable); err != nil {
			return fmt.Errorf("could not create schema_migrations: %w", err)
		}
	}

	files, err := fs.Glob(migrationFS, dir+"/*.up.sql")
	if err != nil {
		return fmt.Errorf("could not read migrations directory: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		name := file[strings.LastIndex(file, "/")+1:]

		var applied int
		if err := db.GetContext(ctx, &applied,
			db.Rebind(`SELECT COUNT(*) FROM schema_migrations WHERE filename = ?`), name); err != nil {
			return fmt.Errorf("could not check migration %s: %w", name, err)
		}
		if applied > 0 {
			continue
		}

		content, err := migrationFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", name, err)
			}
		}
		if _, err := db.ExecContext(ctx,
			db.Rebind(`INSERT INTO schema_migrations (filename, executed_at) VALUES (?, ?)`), name, time.Now()); err != nil {
			return fmt.Errorf("could not record migration %s: %w", name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", name))
	}
	return nil
}

// splitStatements splits a script on ';' at line ends. go-ora executes one
// statement per call and rejects a trailing semicolon.
func splitStatements(script string) []string {
	var stmts []string
	var current strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(current.String()), ";")
			stmts = append(stmts, stmt)
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		stmts = append(stmts, rest)
	}
	return stmts
}
