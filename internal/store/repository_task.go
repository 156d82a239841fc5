package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/models"
)

// taskColumns is the canonical column order used by every task query and
// scanned by scanTask.
var taskColumns = []string{
	"task_id", "user_id", "title", "description",
	"status", "category", "file_path", "created_at", "updated_at",
}

// taskRepository is the SQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations against the "tasks" table using the
// embedded [*DB] connection's dialect-aware statement builder.
type taskRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		db:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields
// (TaskID, CreatedAt, UpdatedAt) populated via a RETURNING clause.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(task.TableName()).
		Columns("user_id", "title", "description", "status", "category", "file_path").
		Values(task.UserID, task.Title, task.Description, task.Status, task.Category, task.FilePath).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.CreateTask").Msg("failed to build insert query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Msg("error creating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// GetTask retrieves a single task by its id, regardless of owner.
// Ownership is the service layer's concern.
//
// Returns [ErrTaskNotFound] when no such task exists.
func (r *taskRepository) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where("task_id = ?", taskID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.GetTask").Msg("failed to build select query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.GetTask").
			Int64("task_id", taskID).
			Msg("error getting task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}

// ListTasks returns every task owned by userID in insertion order.
//
// The filter narrows the result: Search applies a case-insensitive substring
// match on the title, Category an exact match. Both are optional.
func (r *taskRepository) ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select(taskColumns...).
		From(models.Task{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("task_id")

	if filter.Search != "" {
		builder = builder.Where(
			sq.Like{"LOWER(title)": "%" + strings.ToLower(filter.Search) + "%"},
		)
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.ListTasks").Msg("failed to build list query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.ListTasks").
			Int64("user_id", userID).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 20)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.TaskID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.Category,
			&task.FilePath,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*taskRepository.ListTasks").
				Int64("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*taskRepository.ListTasks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// UpdateTask overwrites the mutable columns of the task identified by
// task.TaskID and task.UserID and bumps updated_at. The updated row is
// returned via RETURNING.
//
// Returns [ErrTaskNotFound] when the task does not exist or is owned by a
// different user.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Update(task.TableName()).
		Set("title", task.Title).
		Set("description", task.Description).
		Set("status", task.Status).
		Set("category", task.Category).
		Set("file_path", task.FilePath).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"task_id": task.TaskID, "user_id": task.UserID}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.UpdateTask").Msg("failed to build update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "*taskRepository.UpdateTask").
			Int64("task_id", task.TaskID).
			Int64("user_id", task.UserID).
			Msg("error updating task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteTask removes the task row identified by taskID and owned by userID.
// Only the database row is removed: an attachment referenced by file_path
// stays on disk.
//
// Returns [ErrTaskNotFound] when nothing was deleted.
func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Task{}.TableName()).
		Where(sq.Eq{"task_id": taskID, "user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*taskRepository.DeleteTask").Msg("failed to build delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("error deleting task")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTask reads one task row from a QueryRow result in taskColumns order.
func scanTask(row *sql.Row) (models.Task, error) {
	var task models.Task

	err := row.Scan(
		&task.TaskID,
		&task.UserID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Category,
		&task.FilePath,
		&task.CreatedAt,
		&task.UpdatedAt,
	)

	return task, err
}
