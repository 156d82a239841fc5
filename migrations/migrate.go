package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite3/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialectDirs maps a goose dialect to the embedded directory holding the
// migrations written for that backend. The two directories carry the same
// schema; only identity and timestamp DDL differ.
var dialectDirs = map[string]string{
	"sqlite3":  "sqlite3",
	"postgres": "postgres",
}

// Migrate applies all pending schema migrations to db. The dialect selects
// both the goose dialect and the migration set ("sqlite3" or "postgres").
func Migrate(db *sql.DB, dialect string) error {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
