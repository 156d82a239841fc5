package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/migrations"
)

// DB wraps *sql.DB with the dialect-aware pieces the repositories need:
// a squirrel statement builder configured with the right placeholder format
// and the goose dialect for migrations.
type DB struct {
	*sql.DB

	builder sq.StatementBuilderType
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for this connection's
// dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
