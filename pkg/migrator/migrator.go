// Package migrator applies goose SQL migrations from an embedded or on-disk
// filesystem. Both the migration binary and integration tests go through
// RunMigrations so schema setup is identical everywhere.
package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations opens a short-lived connection to dbURL and applies every
// pending migration found at the root of files. Already-applied versions are
// skipped; goose tracks them in its own table.
func RunMigrations(dbURL string, files fs.FS) error {
	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("migrator: open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrator: set dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migrator: up: %w", err)
	}
	return nil
}
