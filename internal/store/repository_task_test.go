package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/models"
)

func taskRows() *sqlmock.Rows {
	return sqlmock.NewRows(taskColumns)
}

func TestTaskRepository_CreateTask(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO tasks").
		WithArgs(int64(7), "Buy groceries", "milk and bread", false, models.CategoryHousehold, "").
		WillReturnRows(taskRows().AddRow(
			int64(1), int64(7), "Buy groceries", "milk and bread",
			false, models.CategoryHousehold, "", now, now,
		))

	created, err := repo.CreateTask(context.Background(), models.Task{
		UserID:      7,
		Title:       "Buy groceries",
		Description: "milk and bread",
		Category:    models.CategoryHousehold,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.TaskID)
	assert.Equal(t, models.CategoryHousehold, created.Category)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_GetTask_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetTask(context.Background(), 99)

	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListTasks_Filtered(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	now := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(7), "%report%", models.CategoryWork).
		WillReturnRows(taskRows().AddRow(
			int64(3), int64(7), "Quarterly report", "",
			false, models.CategoryWork, "", now, now,
		))

	tasks, err := repo.ListTasks(context.Background(), 7, models.TaskFilter{
		Search:   "Report",
		Category: models.CategoryWork,
	})
	require.NoError(t, err)

	require.Len(t, tasks, 1)
	assert.Equal(t, "Quarterly report", tasks[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_ListTasks_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM tasks").
		WithArgs(int64(7)).
		WillReturnRows(taskRows())

	tasks, err := repo.ListTasks(context.Background(), 7, models.TaskFilter{})
	require.NoError(t, err)

	assert.Empty(t, tasks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_UpdateTask_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectQuery("UPDATE tasks").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateTask(context.Background(), models.Task{
		TaskID: 5,
		UserID: 7,
		Title:  "renamed",
	})

	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DeleteTask(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteTask(context.Background(), 7, 5)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTaskRepository_DeleteTask_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTaskRepository(db, logger.Nop())

	mock.ExpectExec("DELETE FROM tasks").
		WithArgs(int64(5), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTask(context.Background(), 7, 5)

	assert.ErrorIs(t, err, ErrTaskNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
