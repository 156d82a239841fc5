package store

import (
	"context"
	"database/sql"
	"testing"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/models"
)

// newSQLiteDB returns a migrated *DB backed by an in-memory sqlite engine,
// so repository queries run against real SQL instead of sqlmock.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	// Every pooled connection to :memory: sees its own database, so keep
	// the pool at one connection to share the migrated schema.
	conn.SetMaxOpenConns(1)

	db := &DB{
		DB:      conn,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
		dialect: "sqlite3",
		logger:  logger.Nop(),
	}
	require.NoError(t, db.Migrate())

	return db
}

func TestTaskRepository_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	users := NewUserRepository(db, logger.Nop())
	tasks := NewTaskRepository(db, logger.Nop())

	owner, err := users.CreateUser(ctx, models.User{
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)

	created, err := tasks.CreateTask(ctx, models.Task{
		UserID:      owner.UserID,
		Title:       "Prepare Quarterly Report",
		Description: "collect the sales numbers",
		Status:      false,
		Category:    models.CategoryWork,
		FilePath:    "report.pdf",
	})
	require.NoError(t, err)
	require.NotZero(t, created.TaskID)

	// Reading the task back returns exactly what was stored.
	got, err := tasks.GetTask(ctx, created.TaskID)
	require.NoError(t, err)
	assert.Equal(t, created.TaskID, got.TaskID)
	assert.Equal(t, owner.UserID, got.UserID)
	assert.Equal(t, "Prepare Quarterly Report", got.Title)
	assert.Equal(t, "collect the sales numbers", got.Description)
	assert.False(t, got.Status)
	assert.Equal(t, models.CategoryWork, got.Category)
	assert.Equal(t, "report.pdf", got.FilePath)
	assert.False(t, got.CreatedAt.IsZero())

	listed, err := tasks.ListTasks(ctx, owner.UserID, models.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, got, listed[0])

	// The title search is a case-insensitive substring match.
	listed, err = tasks.ListTasks(ctx, owner.UserID, models.TaskFilter{Search: "quarterly"})
	require.NoError(t, err)
	require.Len(t, listed, 1)

	listed, err = tasks.ListTasks(ctx, owner.UserID, models.TaskFilter{Search: "groceries"})
	require.NoError(t, err)
	assert.Empty(t, listed)

	listed, err = tasks.ListTasks(ctx, owner.UserID, models.TaskFilter{Category: models.CategoryHealth})
	require.NoError(t, err)
	assert.Empty(t, listed)

	created.Title = "Prepare Annual Report"
	created.Status = true
	updated, err := tasks.UpdateTask(ctx, created)
	require.NoError(t, err)
	assert.Equal(t, "Prepare Annual Report", updated.Title)
	assert.True(t, updated.Status)

	require.NoError(t, tasks.DeleteTask(ctx, owner.UserID, created.TaskID))

	_, err = tasks.GetTask(ctx, created.TaskID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskRepository_SQLite_ScopedToOwner(t *testing.T) {
	ctx := context.Background()
	db := newSQLiteDB(t)

	users := NewUserRepository(db, logger.Nop())
	tasks := NewTaskRepository(db, logger.Nop())

	alice, err := users.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)
	bob, err := users.CreateUser(ctx, models.User{Username: "bob", PasswordHash: "h2"})
	require.NoError(t, err)

	mine, err := tasks.CreateTask(ctx, models.Task{
		UserID:   alice.UserID,
		Title:    "Water the plants",
		Category: models.CategoryHousehold,
	})
	require.NoError(t, err)

	listed, err := tasks.ListTasks(ctx, bob.UserID, models.TaskFilter{})
	require.NoError(t, err)
	assert.Empty(t, listed)

	// Deleting under the wrong owner leaves the task in place.
	err = tasks.DeleteTask(ctx, bob.UserID, mine.TaskID)
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = tasks.GetTask(ctx, mine.TaskID)
	assert.NoError(t, err)
}
